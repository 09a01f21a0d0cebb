package jsmath

func ProcedurePred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Procedure)
	return Boolean(ok)
}

// ProcedureApply calls its first argument with the remaining arguments, the
// last of which is spread if it is a list or vector. (apply Math.hypot 1 '(2 3))
// is (Math.hypot 1 2 3).
func ProcedureApply(args Vector) Value {
	if len(args) < 1 {
		panic("apply expects at least one argument")
	}
	proc, ok := args[0].(Procedure)
	if !ok {
		panic("the first argument to apply must be a procedure")
	}

	if len(args) == 1 {
		return proc.Apply(nil)
	}

	actuals := append(Vector{}, args[1:len(args)-1]...)
	switch last := args[len(args)-1].(type) {
	case *Pair:
		actuals = append(actuals, last.ToVector()...)
	case Vector:
		actuals = append(actuals, last...)
	default:
		if last != nil {
			panic("the last argument to apply must be a list")
		}
	}
	return proc.Apply(actuals)
}
