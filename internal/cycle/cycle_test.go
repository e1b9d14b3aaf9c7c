package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var halvings = []int{2012, 2016, 2020, 2024}

func TestMultiplierHalvingYear(t *testing.T) {
	for _, year := range halvings {
		assert.Equal(t, 1.2, Multiplier(year, halvings), "year %d", year)
	}
	assert.Equal(t, 1.2, Multiplier(2030, []int{2030}))
}

func TestMultiplierBetweenHalvings(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{2013, 2.5}, // one year into the 2012 cycle
		{2014, 1.5},
		{2015, 0.7},
		{2017, 2.5},
		{2019, 0.7},
		{2021, 2.5},
		{2023, 0.7},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Multiplier(tc.year, halvings), "year %d", tc.year)
	}
}

func TestMultiplierAfterLastHalving(t *testing.T) {
	short := []int{2012, 2016, 2020}

	tests := []struct {
		year int
		want float64
	}{
		{2021, 2.0},
		{2022, 1.2},
		{2023, 0.6}, // three years past the 2020 halving
		{2030, 0.6},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Multiplier(tc.year, short), "year %d", tc.year)
	}
}

func TestMultiplierBeforeFirstHalving(t *testing.T) {
	// Nothing precedes 2012, so the genesis anchor applies.
	assert.Equal(t, 2.5, Multiplier(2010, halvings))
	assert.Equal(t, 1.5, Multiplier(2011, halvings))
}

func TestMultiplierEmptySet(t *testing.T) {
	assert.Equal(t, 2.5, Multiplier(2010, nil))
	assert.Equal(t, 1.5, Multiplier(2011, nil))
	assert.Equal(t, 0.7, Multiplier(2020, nil))
}

func TestMultiplierUnsortedInput(t *testing.T) {
	unsorted := []int{2024, 2012, 2020, 2016}
	assert.Equal(t, Multiplier(2013, halvings), Multiplier(2013, unsorted))
	assert.Equal(t, Multiplier(2025, halvings), Multiplier(2025, unsorted))
}
