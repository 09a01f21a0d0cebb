package jsmath

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	cases := []struct {
		v, expected float64
	}{
		{0.5, 1},
		{-0.5, negativeZero},
		{1.5, 2},
		{2.5, 3},
		{-2.5, -2},
		{-1.5, -1},
		{-0.7, -1},
		{0.7, 1},
		{2.4, 2},
		{-2.6, -3},
		{0.49999999999999994, 0},
		{-0.49999999999999994, negativeZero},
		{0.5000000000000001, 1},
		{4503599627370495.5, 4503599627370496},
		{-4503599627370495.5, -4503599627370495},
		{1e300, 1e300},
		{42, 42},
		{0, 0},
		{negativeZero, negativeZero},
		{math.Inf(1), math.Inf(1)},
		{math.Inf(-1), math.Inf(-1)},
	}
	for _, c := range cases {
		assertSame(t, c.expected, Round(c.v), "Round(%v)", c.v)
	}

	if v := Round(math.NaN()); !math.IsNaN(v) {
		t.Errorf("Round(NaN) = %v", v)
	}
}

func TestTrunc(t *testing.T) {
	cases := []struct {
		v, expected float64
	}{
		{1.7, 1},
		{-1.7, -1},
		{-0.5, negativeZero},
		{0.5, 0},
		{negativeZero, negativeZero},
		{math.Inf(-1), math.Inf(-1)},
	}
	for _, c := range cases {
		assertSame(t, c.expected, Trunc(c.v), "Trunc(%v)", c.v)
	}
}
