package config

import "github.com/aoraion/crypto-monthly-performance/internal/model"

// DefaultAssets returns the built-in asset registry in generation order.
// Order matters: the shared noise sequence advances asset by asset, so a
// reordered registry changes every downstream sample.
func DefaultAssets() []model.Asset {
	return []model.Asset{
		{Key: "BTC", Name: "Bitcoin", StartYear: 2011, BaseVolatility: 0.12, BaseReturn: 0.025, Class: model.ClassBase, HalvingDriven: true},
		{Key: "ETH", Name: "Ethereum", StartYear: 2016, BaseVolatility: 0.18, BaseReturn: 0.03, Class: model.ClassLargeAlt},
		{Key: "TOTAL2", Name: "Total Market Cap (ex-BTC)", StartYear: 2017, BaseVolatility: 0.20, BaseReturn: 0.028, Class: model.ClassLargeAlt},
		{Key: "TOTAL3", Name: "Total Market Cap (ex-BTC & ETH)", StartYear: 2017, BaseVolatility: 0.22, BaseReturn: 0.03, Class: model.ClassSmallCap},
		{Key: "OTHERS", Name: "Altcoins", StartYear: 2017, BaseVolatility: 0.25, BaseReturn: 0.032, Class: model.ClassLargeAlt},
		{Key: "TOTALES", Name: "Total Ecosystem (S)", StartYear: 2021, BaseVolatility: 0.23, BaseReturn: 0.028, Class: model.ClassSmallCap},
		{Key: "TOTALE50", Name: "Total Ecosystem (Top 50)", StartYear: 2021, BaseVolatility: 0.21, BaseReturn: 0.026, Class: model.ClassSmallCap},
		{Key: "TOTALE100", Name: "Total Ecosystem (Top 100)", StartYear: 2021, BaseVolatility: 0.22, BaseReturn: 0.027, Class: model.ClassSmallCap},
	}
}

// DefaultHalvings returns the known benchmark-asset halving schedule.
func DefaultHalvings() []model.HalvingEvent {
	return []model.HalvingEvent{
		{Year: 2012, Month: 11, Label: "Halving #1", Block: 210000},
		{Year: 2016, Month: 7, Label: "Halving #2", Block: 420000},
		{Year: 2020, Month: 5, Label: "Halving #3", Block: 630000},
		{Year: 2024, Month: 4, Label: "Halving #4", Block: 840000},
	}
}

// DefaultSeasonalBias returns the per-month additive return bias. The table
// encodes recurring calendar effects: the May sell-off, the September
// slump, the October and November run.
func DefaultSeasonalBias() map[int]float64 {
	return map[int]float64{
		1:  0.05,
		2:  0.12,
		3:  -0.02,
		4:  0.08,
		5:  -0.05,
		6:  -0.08,
		7:  0.02,
		8:  -0.03,
		9:  -0.10,
		10: 0.15,
		11: 0.18,
		12: 0.10,
	}
}
