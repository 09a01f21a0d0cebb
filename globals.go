package jsmath

import "math"

var globalScope = &scope{env: map[Symbol]Value{
	// equality predicates
	"eqv?":      ProcedureFunc(Eqv),
	"equal?":    ProcedureFunc(Equal),
	"Object.is": ProcedureFunc(ObjectIs),

	// host arithmetic
	"number?": ProcedureFunc(NumberPred),
	"=":       ProcedureFunc(NumberEq),
	"<":       ProcedureFunc(NumberLt),
	">":       ProcedureFunc(NumberGt),
	"<=":      ProcedureFunc(NumberLte),
	">=":      ProcedureFunc(NumberGte),
	"+":       ProcedureFunc(NumberAdd),
	"*":       ProcedureFunc(NumberMul),
	"-":       ProcedureFunc(NumberSub),
	"/":       ProcedureFunc(NumberDiv),

	// booleans
	"boolean?": ProcedureFunc(BooleanPred),
	"not":      ProcedureFunc(BooleanNot),

	// control
	"procedure?": ProcedureFunc(ProcedurePred),
	"apply":      ProcedureFunc(ProcedureApply),

	// global values
	"undefined": Undefined,
	"Infinity":  Number(math.Inf(1)),
	"NaN":       Number(NaN),

	// Math
	"Math.E":       Number(E),
	"Math.LN2":     Number(Ln2),
	"Math.LN10":    Number(Ln10),
	"Math.LOG2E":   Number(Log2E),
	"Math.LOG10E":  Number(Log10E),
	"Math.PI":      Number(Pi),
	"Math.SQRT1_2": Number(Sqrt1_2),
	"Math.SQRT2":   Number(Sqrt2),
	"Math.fround":  MathFround,
	"Math.hypot":   ProcedureFunc(MathHypot),
	"Math.log1p":   MathLog1p,
	"Math.expm1":   MathExpm1,
	"Math.cbrt":    MathCbrt,
	"Math.clz32":   ProcedureFunc(MathClz32),
	"Math.round":   MathRound,
	"Math.log2":    MathLog2,
	"Math.trunc":   MathTrunc,

	// Number
	"Number":                  ProcedureFunc(NumberConstructor),
	"Number.MAX_SAFE_INTEGER": Number(MaxSafeInteger),
	"Number.MIN_SAFE_INTEGER": Number(MinSafeInteger),
	"Number.EPSILON":          Number(Epsilon),
	"Number.NaN":              Number(NaN),
	"Number.isFinite":         NumberIsFinite,
	"Number.isInteger":        NumberIsInteger,
	"Number.isNaN":            NumberIsNaN,
	"Number.isSafeInteger":    NumberIsSafeInteger,
	"Number.toExponential":    ProcedureFunc(NumberToExponential),
}}
