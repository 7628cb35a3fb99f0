package util

import "math"

// RoundHalfUp rounds x to the nearest integer, rounding halves towards positive infinity.
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}
