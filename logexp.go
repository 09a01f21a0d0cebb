package jsmath

import "math"

// log1pThreshold bounds the magnitudes for which Log1p uses its Taylor
// expansion instead of log(1+x).
const log1pThreshold = 1e-8

// Log1p returns the natural logarithm of 1 plus x. Near zero it uses
// x - x²/2, since 1+x would discard most of x's significant bits.
func Log1p(x float64) float64 {
	if x > -log1pThreshold && x < log1pThreshold {
		return x - x*x/2
	}
	return math.Log(1 + x)
}

// Expm1 returns e**x - 1.
//
// Unlike Log1p there is no near-zero branch, so for tiny x the result carries
// the cancellation error of exp(x)-1.
func Expm1(x float64) float64 {
	return math.Exp(x) - 1
}

// Cbrt returns the real cube root of x. The sign of x is carried onto the
// result, so Cbrt(-8) = -2 and Cbrt(-0) = -0. Perfect cubes are exact.
func Cbrt(x float64) float64 {
	if x == 0 || !isFinite(x) {
		return x
	}
	return math.Copysign(math.Cbrt(math.Abs(x)), x)
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float64) float64 {
	return math.Log2(x)
}
