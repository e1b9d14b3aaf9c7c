package model

import "sort"

// HalvingEvent is one supply-halving record for the benchmark asset.
type HalvingEvent struct {
	Year  int    `json:"year" mapstructure:"year"`
	Month int    `json:"month" mapstructure:"month"`
	Label string `json:"label" mapstructure:"label"`
	Block int    `json:"block" mapstructure:"block"`
}

// MonthNames are the fixed short month labels carried in the document for
// the visualization layer.
var MonthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// AssetReport bundles an asset's generated series with its statistics.
type AssetReport struct {
	Name       string            `json:"name"`
	StartYear  int               `json:"start_year"`
	Data       ReturnSeries      `json:"data"`
	Statistics MonthlyStatistics `json:"statistics"`
}

// Document is the single output record consumed by the visualization layer.
type Document struct {
	GeneratedAt string                  `json:"generated_at"`
	Halvings    []HalvingEvent          `json:"halvings"`
	Months      []string                `json:"months"`
	Assets      map[string]*AssetReport `json:"assets"`
}

// AssetKeys lists the document's asset keys in ascending order.
func (d *Document) AssetKeys() []string {
	keys := make([]string, 0, len(d.Assets))
	for key := range d.Assets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
