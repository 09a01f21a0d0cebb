package jsmath

import (
	"math"
	"math/bits"
)

const twoTo32 = 1 << 32

// ToUint32 converts v to an unsigned 32-bit integer: NaN and infinities map
// to 0; everything else is truncated toward zero and reduced modulo 2^32.
func ToUint32(v float64) uint32 {
	if !isFinite(v) {
		return 0
	}
	m := math.Mod(math.Trunc(v), twoTo32)
	if m < 0 {
		m += twoTo32
	}
	return uint32(m)
}

// Clz32 returns the number of leading zero bits in the 32-bit unsigned
// representation of v. The result is in [0, 32].
func Clz32(v float64) int {
	return bits.LeadingZeros32(ToUint32(v))
}
