package generate

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
	"github.com/aoraion/crypto-monthly-performance/internal/stats"
)

// BuildDocument runs the full generation pass for every registry asset and
// assembles the output document. Assets must arrive as an ordered slice:
// the shared noise sequence advances per asset, so registry order is part
// of the reproducibility contract.
func BuildDocument(assets []model.Asset, cfg Config, seed int64, generatedAt string, logger *zap.Logger) *model.Document {
	if logger == nil {
		logger = zap.NewNop()
	}

	rng := rand.New(rand.NewSource(seed))
	generator := New(cfg, rng, logger)

	doc := &model.Document{
		GeneratedAt: generatedAt,
		Halvings:    cfg.Halvings,
		Months:      model.MonthNames,
		Assets:      make(map[string]*model.AssetReport, len(assets)),
	}

	for _, asset := range assets {
		series := generator.Generate(asset, asset.StartYear, cfg.Horizon.Year)
		doc.Assets[asset.Key] = &model.AssetReport{
			Name:       asset.Name,
			StartYear:  asset.StartYear,
			Data:       series,
			Statistics: stats.Aggregate(series),
		}

		logger.Info("asset generated",
			zap.String("asset", asset.Key),
			zap.Int("start_year", asset.StartYear),
			zap.Int("end_year", cfg.Horizon.Year),
		)
	}

	return doc
}
