package jsmath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	cases := []struct {
		name     string
		v        interface{}
		expected float64
	}{
		{"float", 1.5, 1.5},
		{"number", Number(-2), -2},
		{"true", Boolean(true), 1},
		{"false", false, 0},
		{"empty", "", 0},
		{"blank", String("  \t"), 0},
		{"decimal", " 12.5 ", 12.5},
		{"exponent", "1e3", 1000},
		{"leading-dot", ".5", 0.5},
		{"infinity", "Infinity", math.Inf(1)},
		{"negative-infinity", "-Infinity", math.Inf(-1)},
		{"hex", "0xFF", 255},
		{"octal", "0o17", 15},
		{"binary", "0b101", 5},
		{"bad-hex", "0xZZ", math.NaN()},
		{"overflow", "1e400", math.Inf(1)},
		{"underflow", "1e-400", 0},
		{"inf", "inf", math.NaN()},
		{"nan", "NaN", math.NaN()},
		{"word", "abc", math.NaN()},
		{"trailing", "12px", math.NaN()},
		{"nil", nil, math.NaN()},
		{"undefined", Undefined, math.NaN()},
		{"int", 3, math.NaN()},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if diff := cmp.Diff(c.expected, ToNumber(c.v), cmpopts.EquateNaNs()); diff != "" {
				t.Errorf("ToNumber(%#v) mismatch (-want +got):\n%s", c.v, diff)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		v        float64
		expected string
	}{
		{0, "0"},
		{negativeZero, "0"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{1, "1"},
		{-42, "-42"},
		{123.456, "123.456"},
		{0.1, "0.1"},
		{5.050000190734863, "5.050000190734863"},
		{1e-6, "0.000001"},
		{1.5e-7, "1.5e-7"},
		{1e-7, "1e-7"},
		{1e20, "100000000000000000000"},
		{1e21, "1e+21"},
		{-1.25e22, "-1.25e+22"},
		{MaxSafeInteger, "9007199254740991"},
		{math.MaxFloat64, "1.7976931348623157e+308"},
		{5e-324, "5e-324"},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, FormatNumber(c.v), "FormatNumber(%v)", c.v)
	}
}

func TestToExponential(t *testing.T) {
	cases := []struct {
		name     string
		v        interface{}
		digits   []int
		expected string
	}{
		{"shortest", 123456.0, nil, "1.23456e+5"},
		{"shortest-one-digit", 1.0, nil, "1e+0"},
		{"shortest-small", 0.00015, nil, "1.5e-4"},
		{"shortest-zero", 0.0, nil, "0e+0"},
		{"shortest-negative-zero", negativeZero, nil, "0e+0"},
		{"shortest-negative", Number(-0.5), nil, "-5e-1"},
		{"fixed", 123456.0, []int{2}, "1.23e+5"},
		{"exact-tie", 1.25, []int{1}, "1.3e+0"},
		{"above-tie", 1.35, []int{1}, "1.4e+0"},
		{"below-tie", 1.45, []int{1}, "1.4e+0"},
		{"negative-tie", -1.25, []int{1}, "-1.3e+0"},
		{"carry", 99.5, []int{0}, "1e+2"},
		{"carry-digits", 9.9999, []int{2}, "1.00e+1"},
		{"below-carry", 9.995, []int{2}, "9.99e+0"},
		{"small", 0.000123, []int{1}, "1.2e-4"},
		{"subnormal", 5e-324, []int{2}, "4.94e-324"},
		{"max", math.MaxFloat64, []int{3}, "1.798e+308"},
		{"padded", 3.0, []int{3}, "3.000e+0"},
		{"zero-digits", 0.0, []int{2}, "0.00e+0"},
		{"string", "77.1234", []int{2}, "7.71e+1"},
		{"string-value", String("1e3"), nil, "1e+3"},
		{"nan", math.NaN(), []int{2}, "NaN"},
		{"inf", math.Inf(-1), nil, "-Infinity"},
		{"inf-out-of-range", math.Inf(1), []int{200}, "Infinity"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, ok := ToExponential(c.v, c.digits...)
			if assert.True(t, ok) {
				assert.Equal(t, c.expected, s)
			}
		})
	}
}

func TestToExponentialFailures(t *testing.T) {
	_, ok := ToExponential(1.0, -1)
	assert.False(t, ok)
	_, ok = ToExponential(1.0, 101)
	assert.False(t, ok)
	_, ok = ToExponential(Boolean(true))
	assert.False(t, ok)
	_, ok = ToExponential(Undefined, 2)
	assert.False(t, ok)
}

func TestToExponentialNonFiniteIgnoresDigits(t *testing.T) {
	s, ok := ToExponential(math.NaN(), 200)
	assert.True(t, ok)
	assert.Equal(t, "NaN", s)

	s, ok = ToExponential(math.Inf(-1), -1)
	assert.True(t, ok)
	assert.Equal(t, "-Infinity", s)
}
