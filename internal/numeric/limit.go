// Package numeric holds small helpers shared by the color and font tables.
package numeric

import "cmp"

// Limit clamps v into the closed range [low, high].
//
// An inverted range (low > high) always yields high.
func Limit[T cmp.Ordered](v, low, high T) T {
	if low > high {
		return high
	}
	if v > high {
		return high
	}
	if v < low {
		return low
	}
	return v
}
