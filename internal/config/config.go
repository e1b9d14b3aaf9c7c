package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

// GenerateConfig holds configuration for the generate command. The asset
// registry, halving schedule, and seasonal bias table ship as built-in
// defaults and may be replaced wholesale from a config file.
type GenerateConfig struct {
	Out          string
	Seed         int64
	HorizonYear  int
	HorizonMonth int
	Timestamp    string
	LogLevel     string
	Assets       []model.Asset
	Halvings     []model.HalvingEvent
	SeasonalBias map[int]float64
}

// LoadGenerate merges config file, environment variables, and flags into
// GenerateConfig.
func LoadGenerate(cfgFile string, flags *pflag.FlagSet) (GenerateConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return GenerateConfig{}, err
	}

	v.SetDefault("out", "./data/monthly_performance.json")
	v.SetDefault("seed", int64(42))
	v.SetDefault("horizon-year", 2026)
	v.SetDefault("horizon-month", 1)

	cfg := GenerateConfig{
		Out:          v.GetString("out"),
		Seed:         v.GetInt64("seed"),
		HorizonYear:  v.GetInt("horizon-year"),
		HorizonMonth: v.GetInt("horizon-month"),
		Timestamp:    v.GetString("timestamp"),
		LogLevel:     v.GetString("log-level"),
		Assets:       DefaultAssets(),
		Halvings:     DefaultHalvings(),
		SeasonalBias: DefaultSeasonalBias(),
	}

	if v.IsSet("assets") {
		var assets []model.Asset
		if err := v.UnmarshalKey("assets", &assets); err != nil {
			return GenerateConfig{}, fmt.Errorf("parse assets: %w", err)
		}
		if len(assets) > 0 {
			cfg.Assets = assets
		}
	}

	if v.IsSet("halvings") {
		var halvings []model.HalvingEvent
		if err := v.UnmarshalKey("halvings", &halvings); err != nil {
			return GenerateConfig{}, fmt.Errorf("parse halvings: %w", err)
		}
		if len(halvings) > 0 {
			cfg.Halvings = halvings
		}
	}

	if v.IsSet("seasonal-bias") {
		var bias []float64
		if err := v.UnmarshalKey("seasonal-bias", &bias); err != nil {
			return GenerateConfig{}, fmt.Errorf("parse seasonal bias: %w", err)
		}
		if len(bias) != model.MonthsPerYear {
			return GenerateConfig{}, fmt.Errorf("seasonal bias needs %d entries, got %d", model.MonthsPerYear, len(bias))
		}
		table := make(map[int]float64, model.MonthsPerYear)
		for i, value := range bias {
			table[i+1] = value
		}
		cfg.SeasonalBias = table
	}

	return cfg, nil
}

// ReportConfig holds configuration shared by the commands that consume a
// previously generated document (stats, export, render).
type ReportConfig struct {
	Input    string
	Output   string
	Asset    string
	LogLevel string
}

// LoadReport merges config file, environment variables, and flags into
// ReportConfig.
func LoadReport(cfgFile string, flags *pflag.FlagSet) (ReportConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ReportConfig{}, err
	}

	v.SetDefault("in", "./data/monthly_performance.json")

	return ReportConfig{
		Input:    v.GetString("in"),
		Output:   v.GetString("out"),
		Asset:    v.GetString("asset"),
		LogLevel: v.GetString("log-level"),
	}, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("MONTHLYPERF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}
