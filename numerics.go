package jsmath

import "fmt"

// The host arithmetic primitives. They operate on the host's doubles with
// plain IEEE-754 semantics and no coercion.

func NumberPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Number)
	return Boolean(ok)
}

func numberCompare(args Vector, cmp func(x, y float64) bool) Value {
	if len(args) == 0 {
		return Boolean(true)
	}

	n, ok := args[0].(Number)
	if !ok {
		return Boolean(false)
	}

	for _, v := range args[1:] {
		x, ok := v.(Number)
		if !ok || !cmp(float64(n), float64(x)) {
			return Boolean(false)
		}
		n = x
	}

	return Boolean(true)
}

func NumberEq(args Vector) Value {
	return numberCompare(args, func(x, y float64) bool { return x == y })
}

func NumberLt(args Vector) Value {
	return numberCompare(args, func(x, y float64) bool { return x < y })
}

func NumberGt(args Vector) Value {
	return numberCompare(args, func(x, y float64) bool { return x > y })
}

func NumberLte(args Vector) Value {
	return numberCompare(args, func(x, y float64) bool { return x <= y })
}

func NumberGte(args Vector) Value {
	return numberCompare(args, func(x, y float64) bool { return x >= y })
}

func numberOperands(name string, args Vector) []float64 {
	operands := make([]float64, len(args))
	for i, v := range args {
		n, ok := v.(Number)
		if !ok {
			panic(fmt.Sprintf("the arguments to %v must be numbers", name))
		}
		operands[i] = float64(n)
	}
	return operands
}

func NumberAdd(args Vector) Value {
	sum := 0.0
	for _, x := range numberOperands("+", args) {
		sum += x
	}
	return Number(sum)
}

func NumberMul(args Vector) Value {
	product := 1.0
	for _, x := range numberOperands("*", args) {
		product *= x
	}
	return Number(product)
}

func NumberSub(args Vector) Value {
	operands := numberOperands("-", args)
	switch len(operands) {
	case 0:
		panic("- expects at least 1 argument")
	case 1:
		return Number(-operands[0])
	}

	diff := operands[0]
	for _, x := range operands[1:] {
		diff -= x
	}
	return Number(diff)
}

func NumberDiv(args Vector) Value {
	operands := numberOperands("/", args)
	switch len(operands) {
	case 0:
		panic("/ expects at least 1 argument")
	case 1:
		return Number(1 / operands[0])
	}

	quo := operands[0]
	for _, x := range operands[1:] {
		quo /= x
	}
	return Number(quo)
}
