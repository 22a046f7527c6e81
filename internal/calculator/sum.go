package calculator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Total sums the values, returning 0 for an empty slice.
func Total(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}

// MinRatioIndex returns the index of the smallest ratio, preferring the earliest
// index among ties. NaN ratios rank as +Inf; if no ratio is finite the first
// index is returned. Returns -1 for an empty slice.
func MinRatioIndex(ratios []float64) int {
	if len(ratios) == 0 {
		return -1
	}
	ranked := make([]float64, len(ratios))
	for i, r := range ratios {
		if math.IsNaN(r) {
			r = math.Inf(1)
		}
		ranked[i] = r
	}
	return floats.MinIdx(ranked)
}
