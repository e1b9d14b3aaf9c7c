package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aoraion/crypto-monthly-performance/internal/model"
)

func sampleDocument() *model.Document {
	record := &model.YearRecord{}
	record.SetValue(1, 12.5)
	halvingMonth := 11
	record.HalvingMonth = &halvingMonth

	return &model.Document{
		GeneratedAt: "2026-01-15T00:00:00Z",
		Halvings:    []model.HalvingEvent{{Year: 2012, Month: 11, Label: "Halving #1", Block: 210000}},
		Months:      model.MonthNames,
		Assets: map[string]*model.AssetReport{
			"BTC": {
				Name:      "Bitcoin",
				StartYear: 2011,
				Data:      model.ReturnSeries{2012: record},
				Statistics: model.MonthlyStatistics{
					1: {Average: 12.5, Median: 12.5, Max: 12.5, Min: 12.5, GreenMonths: 1, WinRate: 100.0},
				},
			},
		},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "data.json")

	require.NoError(t, NewJSONStore(path).Write(sampleDocument()))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-15T00:00:00Z", doc.GeneratedAt)
	require.Contains(t, doc.Assets, "BTC")

	btc := doc.Assets["BTC"]
	require.NotNil(t, btc.Data[2012])
	require.NotNil(t, btc.Data[2012].Value(1))
	assert.Equal(t, 12.5, *btc.Data[2012].Value(1))
	require.NotNil(t, btc.Data[2012].HalvingMonth)
	assert.Equal(t, 11, *btc.Data[2012].HalvingMonth)
	require.NotNil(t, btc.Statistics[1])
	assert.Equal(t, 100.0, btc.Statistics[1].WinRate)
	assert.Nil(t, btc.Statistics[2])
}

func TestJSONStoreLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	require.NoError(t, NewJSONStore(path).Write(sampleDocument()))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestJSONStoreWriteIsStable(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.json")
	second := filepath.Join(dir, "b.json")

	doc := sampleDocument()
	require.NoError(t, NewJSONStore(first).Write(doc))
	require.NoError(t, NewJSONStore(second).Write(doc))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
