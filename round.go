package jsmath

import "math"

var negativeZero = math.Copysign(0, -1)

// Round returns v rounded to the nearest integer, with halfway cases rounded
// toward +Inf: Round(2.5) = 3 but Round(-2.5) = -2.
//
// Special cases are:
//	Round(±Inf) = ±Inf
//	Round(NaN) = NaN
//	Round(x) = x for integral x, including ±0
//	Round(x) = +0 for 0 < x < 0.5
//	Round(x) = -0 for -0.5 <= x < 0
func Round(v float64) float64 {
	if !isFinite(v) || isInteger(v) {
		return v
	}
	if v > 0 && v < 0.5 {
		return 0
	}
	if v < 0 && v >= -0.5 {
		return negativeZero
	}

	floor := math.Floor(v)
	if v-floor >= 0.5 {
		return math.Ceil(v)
	}
	return floor
}

// Trunc returns the integer part of v, rounding toward zero.
func Trunc(v float64) float64 {
	if v < 0 {
		return math.Ceil(v)
	}
	return math.Floor(v)
}
