package shared

import "math"

// Finite coerces NaN and infinite values to zero so that aggregate
// totals stay well-defined even when individual inputs are malformed.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// RoundToInt rounds to the nearest integer, guarding non-finite input.
func RoundToInt(v float64) int64 {
	return int64(math.Round(Finite(v)))
}
