package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aoraion/crypto-monthly-performance/internal/config"
	"github.com/aoraion/crypto-monthly-performance/internal/generate"
	"github.com/aoraion/crypto-monthly-performance/internal/model"
	"github.com/aoraion/crypto-monthly-performance/internal/storage"
)

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadGenerate(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.HorizonMonth < 1 || cfg.HorizonMonth > model.MonthsPerYear {
		return fmt.Errorf("horizon month must be in 1..12")
	}
	if len(cfg.Assets) == 0 {
		return fmt.Errorf("asset registry is empty")
	}
	seen := make(map[string]struct{}, len(cfg.Assets))
	for _, asset := range cfg.Assets {
		if asset.Key == "" {
			return fmt.Errorf("asset key must not be empty")
		}
		if _, ok := seen[asset.Key]; ok {
			return fmt.Errorf("duplicate asset key: %s", asset.Key)
		}
		seen[asset.Key] = struct{}{}
		if asset.StartYear > cfg.HorizonYear {
			return fmt.Errorf("asset %s starts past the horizon year", asset.Key)
		}
		if asset.BaseVolatility <= 0 {
			return fmt.Errorf("asset %s base volatility must be positive", asset.Key)
		}
	}

	generatedAt := time.Now().Format(time.RFC3339)
	if cfg.Timestamp != "" {
		if _, err := time.Parse(time.RFC3339, cfg.Timestamp); err != nil {
			return fmt.Errorf("parse timestamp: %w", err)
		}
		generatedAt = cfg.Timestamp
	}

	logger.Info("generate start",
		zap.String("out", cfg.Out),
		zap.Int64("seed", cfg.Seed),
		zap.Int("horizon_year", cfg.HorizonYear),
		zap.Int("horizon_month", cfg.HorizonMonth),
		zap.Int("assets", len(cfg.Assets)),
	)

	doc := generate.BuildDocument(cfg.Assets, generate.Config{
		Halvings:     cfg.Halvings,
		SeasonalBias: cfg.SeasonalBias,
		Horizon:      generate.Horizon{Year: cfg.HorizonYear, Month: cfg.HorizonMonth},
	}, cfg.Seed, generatedAt, logger)

	var sink storage.DocumentStore = storage.NewJSONStore(cfg.Out)
	if err := sink.Write(doc); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	logger.Info("generate complete",
		zap.String("out", cfg.Out),
		zap.Int("assets", len(doc.Assets)),
	)

	return nil
}
