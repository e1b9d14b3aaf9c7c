package generate

import "github.com/aoraion/crypto-monthly-performance/internal/model"

// Horizon is the last (year, month) for which data may be fabricated.
type Horizon struct {
	Year  int
	Month int
}

// After reports whether (year, month) lies strictly past the horizon.
func (h Horizon) After(year, month int) bool {
	if year != h.Year {
		return year > h.Year
	}
	return month > h.Month
}

// Rule excludes (asset, year, month) cells from generation. Rules run in
// slice order and the first match wins, which keeps precedence auditable.
type Rule struct {
	Name     string
	Excludes func(asset model.Asset, year, month int) bool
}

// DefaultRules orders the exclusion predicates: months past the data
// horizon first, then months before the asset's first valid year.
func DefaultRules(horizon Horizon) []Rule {
	return []Rule{
		{
			Name: "past-horizon",
			Excludes: func(_ model.Asset, year, month int) bool {
				return horizon.After(year, month)
			},
		},
		{
			Name: "before-listing",
			Excludes: func(asset model.Asset, year, _ int) bool {
				return asset.StartYear > year
			},
		},
	}
}

// Excluded reports whether any rule excludes the cell, and which rule fired.
func Excluded(rules []Rule, asset model.Asset, year, month int) (string, bool) {
	for _, rule := range rules {
		if rule.Excludes(asset, year, month) {
			return rule.Name, true
		}
	}
	return "", false
}
