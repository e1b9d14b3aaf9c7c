package model

// AssetClass buckets assets by how much their volatility runs above the
// benchmark asset.
type AssetClass string

const (
	ClassBase     AssetClass = "base"
	ClassLargeAlt AssetClass = "large_alt"
	ClassSmallCap AssetClass = "small_cap"
)

// VolatilityScale returns the per-class volatility multiplier. Unknown
// classes fall back to the benchmark scale.
func (c AssetClass) VolatilityScale() float64 {
	switch c {
	case ClassLargeAlt:
		return 1.3
	case ClassSmallCap:
		return 1.5
	default:
		return 1.0
	}
}

// Asset describes one tracked market asset. Registry entries are immutable
// configuration data; the generator never mutates them.
type Asset struct {
	Key            string     `mapstructure:"key"`
	Name           string     `mapstructure:"name"`
	StartYear      int        `mapstructure:"start_year"`
	BaseVolatility float64    `mapstructure:"base_volatility"`
	BaseReturn     float64    `mapstructure:"base_return"`
	Class          AssetClass `mapstructure:"class"`
	HalvingDriven  bool       `mapstructure:"halving_driven"`
}
