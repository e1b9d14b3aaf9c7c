package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// MonthsPerYear is the number of calendar months in a year record.
const MonthsPerYear = 12

// YearRecord holds one calendar year of monthly percentage returns. A nil
// entry is the absence marker: the asset did not exist yet, or the month
// lies past the data horizon. Index 0 is unused so months address as 1..12.
type YearRecord struct {
	Returns      [MonthsPerYear + 1]*float64
	HalvingMonth *int
}

// Value returns the stored return for month (1..12), or nil.
func (r *YearRecord) Value(month int) *float64 {
	if r == nil || month < 1 || month > MonthsPerYear {
		return nil
	}
	return r.Returns[month]
}

// SetValue stores a return for month (1..12).
func (r *YearRecord) SetValue(month int, value float64) {
	if month < 1 || month > MonthsPerYear {
		return
	}
	r.Returns[month] = &value
}

// MarshalJSON emits months "1".."12" in calendar order with explicit null
// absence markers, followed by "halving_month" when the year had one.
func (r YearRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for month := 1; month <= MonthsPerYear; month++ {
		if month > 1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strconv.Itoa(month))
		buf.WriteString(`":`)
		if r.Returns[month] == nil {
			buf.WriteString("null")
			continue
		}
		value, err := json.Marshal(*r.Returns[month])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	if r.HalvingMonth != nil {
		buf.WriteString(`,"halving_month":`)
		buf.WriteString(strconv.Itoa(*r.HalvingMonth))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a year object produced by MarshalJSON.
func (r *YearRecord) UnmarshalJSON(data []byte) error {
	raw := make(map[string]*float64, MonthsPerYear+1)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var record YearRecord
	for key, value := range raw {
		if key == "halving_month" {
			if value != nil {
				month := int(*value)
				record.HalvingMonth = &month
			}
			continue
		}
		month, err := strconv.Atoi(key)
		if err != nil || month < 1 || month > MonthsPerYear {
			return fmt.Errorf("invalid month key: %s", key)
		}
		record.Returns[month] = value
	}

	*r = record
	return nil
}

// ReturnSeries maps a year to its monthly record. encoding/json writes int
// map keys as strings; four-digit years keep lexical and numeric ordering
// in agreement, so serialized output stays in chronological order.
type ReturnSeries map[int]*YearRecord

// Years lists the covered years in ascending order.
func (s ReturnSeries) Years() []int {
	years := make([]int, 0, len(s))
	for year := range s {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
