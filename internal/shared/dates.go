package shared

import (
	"math"
	"time"
)

// InclusiveDays returns the number of calendar days covered by the range,
// counting both endpoints. A two-day booking spanning midnight once yields 2.
// Inverted or zero ranges still count their endpoints, matching the
// absolute-difference semantics of the pricing rules.
func InclusiveDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	diff := end.Sub(start).Hours() / 24
	return int(math.Ceil(math.Abs(diff))) + 1
}

// RangesOverlap reports whether the inclusive ranges [aStart,aEnd] and
// [bStart,bEnd] share at least one instant.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// RangeContains reports whether [outerStart,outerEnd] fully contains
// [innerStart,innerEnd].
func RangeContains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !innerStart.Before(outerStart) && !innerEnd.After(outerEnd)
}
