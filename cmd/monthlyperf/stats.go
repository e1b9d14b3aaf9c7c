package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aoraion/crypto-monthly-performance/internal/config"
	"github.com/aoraion/crypto-monthly-performance/internal/report"
	"github.com/aoraion/crypto-monthly-performance/internal/storage"
)

func runStats(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadReport(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Input == "" {
		return fmt.Errorf("input path is required")
	}

	doc, err := storage.Load(cfg.Input)
	if err != nil {
		return err
	}

	keys := doc.AssetKeys()
	if cfg.Asset != "" {
		if _, ok := doc.Assets[cfg.Asset]; !ok {
			return fmt.Errorf("unknown asset: %s", cfg.Asset)
		}
		keys = []string{cfg.Asset}
	}

	logger.Debug("stats loaded",
		zap.String("in", cfg.Input),
		zap.String("generated_at", doc.GeneratedAt),
		zap.Int("assets", len(keys)),
	)

	for _, key := range keys {
		report.WriteStatsTable(os.Stdout, key, doc.Assets[key], doc.Months)
		fmt.Println()
	}

	return nil
}
