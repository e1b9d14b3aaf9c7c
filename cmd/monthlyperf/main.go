package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Best-effort .env load so local runs can set MONTHLYPERF_* overrides.
	_ = godotenv.Load()

	root := &cobra.Command{
		Use:          "monthlyperf",
		Short:        "Synthetic crypto monthly performance generator",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the monthly performance document",
		RunE:  runGenerate,
	}

	generateCmd.Flags().String("out", "./data/monthly_performance.json", "output JSON path")
	generateCmd.Flags().Int64("seed", 42, "noise source seed")
	generateCmd.Flags().Int("horizon-year", 2026, "last year to populate")
	generateCmd.Flags().Int("horizon-month", 1, "last month of the horizon year to populate")
	generateCmd.Flags().String("timestamp", "", "override generated_at (RFC3339), defaults to now")
	generateCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(generateCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print per-month statistics from a generated document",
		RunE:  runStats,
	}

	statsCmd.Flags().String("in", "./data/monthly_performance.json", "input document path")
	statsCmd.Flags().String("asset", "", "asset key (default: all assets)")
	statsCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(statsCmd)

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export a generated document as an xlsx workbook",
		RunE:  runExport,
	}

	exportCmd.Flags().String("in", "./data/monthly_performance.json", "input document path")
	exportCmd.Flags().String("out", "./data/monthly_performance.xlsx", "output xlsx path")
	exportCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(exportCmd)

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render an asset's seasonality chart as PNG",
		RunE:  runRender,
	}

	renderCmd.Flags().String("in", "./data/monthly_performance.json", "input document path")
	renderCmd.Flags().String("asset", "BTC", "asset key to chart")
	renderCmd.Flags().String("out", "", "output PNG path (default: ./data/<asset>_seasonality.png)")
	renderCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(renderCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
