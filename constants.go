package jsmath

import "math"

// The Math namespace constants. They are computed from the host's
// transcendental functions when the package is initialized and must not be
// assigned to afterwards.
var (
	E       = math.Exp(1)
	Ln2     = math.Log(2)
	Ln10    = math.Log(10)
	Log2E   = 1 / Ln2
	Log10E  = 1 / Ln10
	Pi      = math.Pi
	Sqrt1_2 = math.Sqrt(0.5)
	Sqrt2   = math.Sqrt(2)
)

const (
	// Epsilon is the difference between 1 and the next larger double.
	Epsilon = 0x1p-52

	// MaxSafeInteger is the largest integer n such that n and n+1 are both
	// exactly representable as doubles.
	MaxSafeInteger = 1<<53 - 1

	// MinSafeInteger is the negation of MaxSafeInteger.
	MinSafeInteger = -MaxSafeInteger

	// epsilon32 is the single-precision counterpart of Epsilon.
	epsilon32 = 0x1p-23

	// minFloat32 is the smallest normal single-precision magnitude.
	minFloat32 = 0x1p-126

	// maxFloat32 is the largest finite single-precision magnitude.
	maxFloat32 = 0x1p127 * (2 - epsilon32)
)
