package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aoraion/crypto-monthly-performance/internal/config"
	"github.com/aoraion/crypto-monthly-performance/internal/report"
	"github.com/aoraion/crypto-monthly-performance/internal/storage"
)

func runRender(cmd *cobra.Command, _ []string) error {
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
	if cfg.Asset == "" {
		return fmt.Errorf("asset key is required")
	}

	doc, err := storage.Load(cfg.Input)
	if err != nil {
		return err
	}

	asset, ok := doc.Assets[cfg.Asset]
	if !ok {
		return fmt.Errorf("unknown asset: %s", cfg.Asset)
	}

	out := cfg.Output
	if out == "" {
		out = filepath.Join("data", strings.ToLower(cfg.Asset)+"_seasonality.png")
	}

	img, err := report.RenderSeasonality(cfg.Asset, asset, doc.Months)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(out, img, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	logger.Info("render complete",
		zap.String("asset", cfg.Asset),
		zap.String("out", out),
	)

	return nil
}
