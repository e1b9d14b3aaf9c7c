package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

func sampleReport() *model.AssetReport {
	jan := &model.YearRecord{}
	jan.SetValue(1, 12.5)
	jan.SetValue(2, -4.2)
	halvingMonth := 11
	jan.HalvingMonth = &halvingMonth

	return &model.AssetReport{
		Name:      "Bitcoin",
		StartYear: 2011,
		Data:      model.ReturnSeries{2012: jan},
		Statistics: model.MonthlyStatistics{
			1: {Average: 12.5, Median: 12.5, Max: 12.5, Min: 12.5, GreenMonths: 1, WinRate: 100.0},
			2: {Average: -4.2, Median: -4.2, Max: -4.2, Min: -4.2, RedMonths: 1},
		},
	}
}

func TestWriteStatsTable(t *testing.T) {
	var buf bytes.Buffer
	WriteStatsTable(&buf, "BTC", sampleReport(), model.MonthNames)

	out := buf.String()
	assert.Contains(t, out, "Bitcoin (BTC) since 2011")
	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "12.50")
	assert.Contains(t, out, "100.0")
	// Months without data render as dashes.
	assert.Contains(t, out, "Dec")
}

func TestWriteWorkbook(t *testing.T) {
	doc := &model.Document{
		GeneratedAt: "2026-01-15T00:00:00Z",
		Halvings:    []model.HalvingEvent{{Year: 2012, Month: 11, Label: "Halving #1", Block: 210000}},
		Months:      model.MonthNames,
		Assets: map[string]*model.AssetReport{
			"BTC": sampleReport(),
			"ETH": sampleReport(),
		},
	}

	path := filepath.Join(t.TempDir(), "report", "monthly.xlsx")
	require.NoError(t, NewExcelReporter().WriteWorkbook(doc, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestRenderSeasonality(t *testing.T) {
	img, err := RenderSeasonality("BTC", sampleReport(), model.MonthNames)
	require.NoError(t, err)
	require.NotEmpty(t, img)
	// PNG signature.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, img[:4])
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Jan", monthName(model.MonthNames, 1))
	assert.Equal(t, "Dec", monthName(model.MonthNames, 12))
	// Falls back to time.Month when the label table is short.
	assert.Equal(t, "Mar", monthName(nil, 3))
}
