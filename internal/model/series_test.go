package model

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearRecordJSONShape(t *testing.T) {
	record := &YearRecord{}
	record.SetValue(1, 5.3)
	record.SetValue(12, -2.0)
	halvingMonth := 11
	record.HalvingMonth = &halvingMonth

	data, err := json.Marshal(record)
	require.NoError(t, err)

	want := `{"1":5.3,"2":null,"3":null,"4":null,"5":null,"6":null,"7":null,"8":null,"9":null,"10":null,"11":null,"12":-2,"halving_month":11}`
	assert.Equal(t, want, string(data))
}

func TestYearRecordRoundTrip(t *testing.T) {
	record := &YearRecord{}
	record.SetValue(3, 14.7)
	record.SetValue(9, -33.1)
	halvingMonth := 4
	record.HalvingMonth = &halvingMonth

	data, err := json.Marshal(record)
	require.NoError(t, err)

	var decoded YearRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *record, decoded)
}

func TestYearRecordUnmarshalRejectsBadKeys(t *testing.T) {
	var record YearRecord
	assert.Error(t, json.Unmarshal([]byte(`{"13":1.0}`), &record))
	assert.Error(t, json.Unmarshal([]byte(`{"zero":1.0}`), &record))
}

func TestReturnSeriesYearsSorted(t *testing.T) {
	series := ReturnSeries{2020: {}, 2011: {}, 2016: {}}
	assert.Equal(t, []int{2011, 2016, 2020}, series.Years())
}

func TestReturnSeriesJSONKeyOrder(t *testing.T) {
	series := ReturnSeries{2012: {}, 2011: {}}
	data, err := json.Marshal(series)
	require.NoError(t, err)
	assert.Less(t,
		strings.Index(string(data), `"2011"`),
		strings.Index(string(data), `"2012"`),
	)
}

func TestMonthlyStatisticsJSONShape(t *testing.T) {
	stats := MonthlyStatistics{
		2: {Average: 1.25, Median: 1.1, Volatility: 0.5, Max: 3.4, Min: -1.2, GreenMonths: 3, RedMonths: 1, WinRate: 75.0},
	}

	data, err := json.Marshal(stats)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Len(t, raw, MonthsPerYear)
	assert.Equal(t, "null", string(raw["1"]))
	assert.Contains(t, string(raw["2"]), `"win_rate":75`)

	var decoded MonthlyStatistics
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded[2])
	assert.Equal(t, *stats[2], *decoded[2])
	assert.Nil(t, decoded[7])
}
