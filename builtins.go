package jsmath

import "math"

// The Math and Number builtins. Math functions coerce their arguments with
// ToNumber and treat a missing argument as NaN; the Number predicates never
// coerce.

func numberArg(args Vector, i int) float64 {
	if i >= len(args) {
		return math.NaN()
	}
	return ToNumber(args[i])
}

func unary(f func(float64) float64) ProcedureFunc {
	return func(args Vector) Value {
		return Number(f(numberArg(args, 0)))
	}
}

func predicate(f func(interface{}) bool) ProcedureFunc {
	return func(args Vector) Value {
		return Boolean(len(args) > 0 && f(args[0]))
	}
}

var (
	MathFround = unary(Fround)
	MathLog1p  = unary(Log1p)
	MathExpm1  = unary(Expm1)
	MathCbrt   = unary(Cbrt)
	MathRound  = unary(Round)
	MathLog2   = unary(Log2)
	MathTrunc  = unary(Trunc)

	NumberIsFinite      = predicate(IsFinite)
	NumberIsInteger     = predicate(IsInteger)
	NumberIsNaN         = predicate(IsNaN)
	NumberIsSafeInteger = predicate(IsSafeInteger)
)

func MathHypot(args Vector) Value {
	values := make([]float64, len(args))
	for i := range args {
		values[i] = ToNumber(args[i])
	}
	return Number(Hypot(values...))
}

func MathClz32(args Vector) Value {
	return Number(Clz32(numberArg(args, 0)))
}

// NumberConstructor implements Number(value). With no argument it returns 0.
func NumberConstructor(args Vector) Value {
	if len(args) == 0 {
		return Number(0)
	}
	return Number(ToNumber(args[0]))
}

// NumberToExponential implements Number.toExponential(value, fractionDigits).
// It returns undefined where ToExponential reports failure.
func NumberToExponential(args Vector) Value {
	if len(args) == 0 {
		return Undefined
	}

	var digits []int
	if len(args) > 1 && args[1] != Undefined {
		f := ToNumber(args[1])
		if math.IsNaN(f) {
			f = 0
		}
		// Out-of-range counts are clamped just outside [0, 100] so that
		// ToExponential still formats non-finite values before rejecting them.
		f = math.Max(-1, math.Min(Trunc(f), maxFractionDigits+1))
		digits = append(digits, int(f))
	}

	s, ok := ToExponential(args[0], digits...)
	if !ok {
		return Undefined
	}
	return String(s)
}
