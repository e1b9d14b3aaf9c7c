package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MonthStats summarizes one calendar month's returns pooled across years.
// Average, median, and volatility are rounded to 2 decimals, max/min and
// the win rate to 1 decimal.
type MonthStats struct {
	Average     float64 `json:"average"`
	Median      float64 `json:"median"`
	Volatility  float64 `json:"volatility"`
	Max         float64 `json:"max"`
	Min         float64 `json:"min"`
	GreenMonths int     `json:"green_months"`
	RedMonths   int     `json:"red_months"`
	WinRate     float64 `json:"win_rate"`
}

// MonthlyStatistics holds statistics per calendar month (1..12). A nil
// entry means no data points existed for that month in any year.
type MonthlyStatistics map[int]*MonthStats

// MarshalJSON emits all twelve months in calendar order, with null for
// months that carry no statistics.
func (m MonthlyStatistics) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for month := 1; month <= MonthsPerYear; month++ {
		if month > 1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(month))
		buf.WriteString(`":`)
		stats := m[month]
		if stats == nil {
			buf.WriteString("null")
			continue
		}
		value, err := json.Marshal(stats)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a statistics object produced by MarshalJSON.
func (m *MonthlyStatistics) UnmarshalJSON(data []byte) error {
	raw := make(map[string]*MonthStats, MonthsPerYear)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(MonthlyStatistics, MonthsPerYear)
	for key, stats := range raw {
		month, err := strconv.Atoi(key)
		if err != nil || month < 1 || month > MonthsPerYear {
			return fmt.Errorf("invalid month key: %s", key)
		}
		out[month] = stats
	}

	*m = out
	return nil
}
