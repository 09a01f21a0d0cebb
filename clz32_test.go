package jsmath

import (
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUint32(t *testing.T) {
	cases := []struct {
		v        float64
		expected uint32
	}{
		{0, 0},
		{negativeZero, 0},
		{1, 1},
		{1.9, 1},
		{-1, 0xFFFFFFFF},
		{-1.9, 0xFFFFFFFF},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{1 << 32, 0},
		{1<<32 + 5, 5},
		{-(1 << 32), 0},
		{-(1<<32 + 1), 0xFFFFFFFF},
		{1e20, 1661992960},
		{math.MaxFloat64, 0},
		{math.NaN(), 0},
		{math.Inf(1), 0},
		{math.Inf(-1), 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, ToUint32(c.v), "ToUint32(%v)", c.v)
	}
}

func TestClz32(t *testing.T) {
	cases := []struct {
		v        float64
		expected int
	}{
		{1, 31},
		{0, 32},
		{0xFFFFFFFF, 0},
		{0x80000000, 0},
		{0x7FFFFFFF, 1},
		{0.5, 32},
		{-1, 0},
		{1 << 32, 32},
		{math.NaN(), 32},
		{math.Inf(1), 32},
		{1000, 22},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, Clz32(c.v), "Clz32(%v)", c.v)
	}
}

func TestClz32MatchesBits(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		u := r.Uint32()
		if !assert.Equal(t, bits.LeadingZeros32(u), Clz32(float64(u))) {
			return
		}
	}
}
