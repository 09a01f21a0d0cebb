package jsmath

import "math"

// asFloat reports whether v is of the numeric type and returns its value.
// Only float64 and Number qualify; Go integer types are not numbers here.
func asFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case Number:
		return float64(v), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func isInteger(f float64) bool {
	return isFinite(f) && math.Floor(f) == f
}

// IsFinite reports whether v is a number other than NaN and ±Inf.
func IsFinite(v interface{}) bool {
	f, ok := asFloat(v)
	return ok && isFinite(f)
}

// IsNaN reports whether v is the number NaN. Non-numbers are not NaN.
func IsNaN(v interface{}) bool {
	f, ok := asFloat(v)
	return ok && math.IsNaN(f)
}

// IsInteger reports whether v is a finite number with no fractional part.
func IsInteger(v interface{}) bool {
	f, ok := asFloat(v)
	return ok && isInteger(f)
}

// IsSafeInteger reports whether v is an integer in
// [MinSafeInteger, MaxSafeInteger].
func IsSafeInteger(v interface{}) bool {
	f, ok := asFloat(v)
	return ok && isInteger(f) && math.Abs(f) <= MaxSafeInteger
}
