package jsmath

import "math"

// Fround returns the double that exactly represents v rounded to the nearest
// single-precision value, ties to even. The rounding is carried out with
// double arithmetic only; no float32 value is ever produced.
//
// Special cases are:
//	Fround(±0) = ±0
//	Fround(±Inf) = ±Inf
//	Fround(NaN) = NaN
//	Fround(x) = ±Inf for |x| that rounds above the largest float32
func Fround(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}

	a := math.Abs(v)
	if a < minFloat32 {
		return math.Copysign(roundSubnormal32(a), v)
	}

	r := roundMantissa32(a)
	if r > maxFloat32 || math.IsNaN(r) {
		return math.Copysign(math.Inf(1), v)
	}
	return math.Copysign(r, v)
}

// roundTiesToEven rounds a non-negative v below 2^52 to an integer using the
// current (ties-to-even) rounding of double addition.
func roundTiesToEven(v float64) float64 {
	return v + 1/Epsilon - 1/Epsilon
}

// roundSubnormal32 rounds a magnitude below minFloat32 onto the float32
// subnormal grid, whose spacing is minFloat32*epsilon32 (2^-149).
func roundSubnormal32(a float64) float64 {
	return roundTiesToEven(a/minFloat32/epsilon32) * minFloat32 * epsilon32
}

// roundMantissa32 rounds a normal magnitude to 24 significant bits by
// splitting it with the constant 1+2^29. The product overflows for very
// large magnitudes, which surfaces as a NaN result.
//
// The float64 conversions force each product to be rounded on its own;
// without them the compiler may fuse p-a into an FMA and break the split.
func roundMantissa32(a float64) float64 {
	p := float64((1 + epsilon32/Epsilon) * a)
	return p - float64(p-a)
}
