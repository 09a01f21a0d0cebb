package jsmath

import "math"

// Hypot returns the square root of the sum of squares of its arguments,
// avoiding intermediate overflow and underflow.
//
// Special cases are:
//	Hypot() = +0
//	Hypot(x) = |x|
//	Hypot(..., ±Inf, ...) = +Inf, even if another argument is NaN
//	Hypot(..., NaN, ...) = NaN
func Hypot(values ...float64) float64 {
	for _, v := range values {
		if math.IsInf(v, 0) {
			return math.Inf(1)
		}
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return math.NaN()
		}
	}

	// sum holds the sum of squares scaled by 1/max².
	var max, sum float64
	for _, v := range values {
		v = math.Abs(v)
		switch {
		case max < v:
			r := max / v
			sum = float64(sum*r*r) + 1
			max = v
		case v > 0:
			r := v / max
			sum += float64(r * r)
		}
	}

	if sum == 0 {
		return max
	}
	return max * math.Sqrt(sum)
}
