package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aoraion/crypto-monthly-performance/internal/config"
	"github.com/aoraion/crypto-monthly-performance/internal/report"
	"github.com/aoraion/crypto-monthly-performance/internal/storage"
)

func runExport(cmd *cobra.Command, _ []string) error {
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
	if cfg.Output == "" {
		return fmt.Errorf("output path is required")
	}

	doc, err := storage.Load(cfg.Input)
	if err != nil {
		return err
	}

	if err := report.NewExcelReporter().WriteWorkbook(doc, cfg.Output); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}

	logger.Info("export complete",
		zap.String("in", cfg.Input),
		zap.String("out", cfg.Output),
		zap.Int("assets", len(doc.Assets)),
	)

	return nil
}
