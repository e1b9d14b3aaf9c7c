package generate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoraion/crypto-monthly-performance/internal/config"
	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

func TestBuildDocumentDeterministic(t *testing.T) {
	assets := config.DefaultAssets()
	cfg := testGenConfig()
	const timestamp = "2026-01-15T00:00:00Z"

	first, err := json.Marshal(BuildDocument(assets, cfg, 42, timestamp, nil))
	require.NoError(t, err)
	second, err := json.Marshal(BuildDocument(assets, cfg, 42, timestamp, nil))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuildDocumentRegistryCoverage(t *testing.T) {
	assets := config.DefaultAssets()
	doc := BuildDocument(assets, testGenConfig(), 42, "2026-01-15T00:00:00Z", nil)

	require.Len(t, doc.Assets, len(assets))
	for _, asset := range assets {
		report, ok := doc.Assets[asset.Key]
		require.True(t, ok, "asset %s", asset.Key)
		assert.Equal(t, asset.Name, report.Name)
		assert.Equal(t, asset.StartYear, report.StartYear)

		// Every year from listing through the horizon, each with all
		// twelve months addressable.
		for year := asset.StartYear; year <= 2026; year++ {
			require.NotNil(t, report.Data[year], "%s year %d", asset.Key, year)
		}
		assert.Len(t, report.Data, 2026-asset.StartYear+1, "asset %s", asset.Key)
		assert.Len(t, report.Statistics, model.MonthsPerYear, "asset %s", asset.Key)
	}
}

func TestBuildDocumentMetadata(t *testing.T) {
	cfg := testGenConfig()
	doc := BuildDocument(config.DefaultAssets(), cfg, 42, "2026-01-15T00:00:00Z", nil)

	assert.Equal(t, "2026-01-15T00:00:00Z", doc.GeneratedAt)
	assert.Equal(t, cfg.Halvings, doc.Halvings)
	assert.Equal(t, model.MonthNames, doc.Months)
}
