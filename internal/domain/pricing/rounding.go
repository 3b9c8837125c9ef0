package pricing

import "math"

// RoundCurrency rounds to the nearest integer minor unit, halves away from
// zero. Every monetary value the engine produces passes through here exactly
// once, at the point of computation.
func RoundCurrency(value float64) int64 {
	if value < 0 {
		return int64(math.Ceil(value - 0.5))
	}
	return int64(math.Floor(value + 0.5))
}
