// Package stats derives per-calendar-month summary statistics from a
// generated return series.
package stats

import (
	"math"
	"sort"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

// Aggregate pools each calendar month's non-absent values across all years
// of the series and summarizes them. Months with no data points map to nil.
func Aggregate(series model.ReturnSeries) model.MonthlyStatistics {
	result := make(model.MonthlyStatistics, model.MonthsPerYear)
	years := series.Years()

	for month := 1; month <= model.MonthsPerYear; month++ {
		values := make([]float64, 0, len(years))
		var green, red int

		for _, year := range years {
			value := series[year].Value(month)
			if value == nil {
				continue
			}
			values = append(values, *value)
			if *value > 0 {
				green++
			} else if *value < 0 {
				red++
			}
		}

		if len(values) == 0 {
			result[month] = nil
			continue
		}

		result[month] = summarize(values, green, red)
	}

	return result
}

func summarize(values []float64, green, red int) *model.MonthStats {
	average := mean(values)

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	winRate := 0.0
	if green+red > 0 {
		winRate = round1(float64(green) / float64(green+red) * 100)
	}

	return &model.MonthStats{
		Average: round2(average),
		// Upper-middle element for even-sized samples, not the
		// conventional average of the two middles. The historical data
		// files were produced this way and the viewer compares against
		// them, so the definition is load-bearing.
		Median:      round2(sorted[len(sorted)/2]),
		Volatility:  round2(populationStdDev(values, average)),
		Max:         round1(sorted[len(sorted)-1]),
		Min:         round1(sorted[0]),
		GreenMonths: green,
		RedMonths:   red,
		WinRate:     winRate,
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, value := range values {
		sum += value
	}
	return sum / float64(len(values))
}

// populationStdDev divides by N, not N-1: each month's pooled years are
// treated as the full population, matching the historical data files.
func populationStdDev(values []float64, mean float64) float64 {
	variance := 0.0
	for _, value := range values {
		variance += (value - mean) * (value - mean)
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

func round1(value float64) float64 { return math.Round(value*10) / 10 }

func round2(value float64) float64 { return math.Round(value*100) / 100 }
