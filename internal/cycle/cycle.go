// Package cycle models an asset's position within the four-year halving
// cycle as a scalar multiplier on expected return and volatility.
package cycle

import "sort"

// anchorYear is the genesis anchor used when no halving precedes a year.
const anchorYear = 2009

// halvingYearMultiplier applies when the query year is itself a halving year.
const halvingYearMultiplier = 1.2

// Multiplier returns the cycle multiplier for year given the known halving
// years. The set may arrive unsorted or empty; an empty set falls back to
// the genesis anchor with the pre-halving ladder.
func Multiplier(year int, halvingYears []int) float64 {
	halvings := append([]int(nil), halvingYears...)
	sort.Ints(halvings)

	for i, halvingYear := range halvings {
		if year < halvingYear {
			previous := anchorYear
			if i > 0 {
				previous = halvings[i-1]
			}
			return preHalvingLadder(year - previous)
		}
		if year == halvingYear {
			return halvingYearMultiplier
		}
	}

	if len(halvings) == 0 {
		return preHalvingLadder(year - anchorYear)
	}
	return postHalvingLadder(year - halvings[len(halvings)-1])
}

// preHalvingLadder covers years between two known halvings: post-halving
// euphoria, mid-cycle, then pre-halving accumulation.
func preHalvingLadder(yearsSince int) float64 {
	switch {
	case yearsSince <= 1:
		return 2.5
	case yearsSince <= 2:
		return 1.5
	default:
		return 0.7
	}
}

// postHalvingLadder covers years past the last known halving, where the
// rest of the schedule is unknown and the curve flattens out.
func postHalvingLadder(yearsSince int) float64 {
	switch {
	case yearsSince <= 1:
		return 2.0
	case yearsSince <= 2:
		return 1.2
	default:
		return 0.6
	}
}
