package jsmath

import (
	"math"
	"reflect"
)

// SameValue reports whether a and b are the same value in the sense of
// Object.is. Numbers compare by value, except that NaN is the same as NaN and
// +0 differs from -0. Other values compare by identity.
func SameValue(a, b interface{}) bool {
	x, xok := asFloat(a)
	y, yok := asFloat(b)
	if xok || yok {
		if !xok || !yok {
			return false
		}
		if math.IsNaN(x) {
			return math.IsNaN(y)
		}
		return x == y && math.Signbit(x) == math.Signbit(y)
	}
	return identical(a, b)
}

// identical compares values that may not be comparable with ==. Functions
// and slices are identical if they share code or backing storage.
func identical(a, b interface{}) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil || ta.Comparable() {
		return a == b
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ta.Kind() {
	case reflect.Func:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	default:
		return false
	}
}

// ObjectIs implements Object.is.
func ObjectIs(args Vector) Value {
	if len(args) != 2 {
		panic("Object.is expects 2 arguments")
	}
	return Boolean(SameValue(args[0], args[1]))
}

// Eqv defines a useful equivalence relation on objects. Numbers are
// equivalent under SameValue; everything else by identity.
func Eqv(args Vector) Value {
	if len(args) != 2 {
		panic("eqv? expects 2 arguments")
	}

	return Boolean(SameValue(args[0], args[1]))
}

func Equal(args Vector) Value {
	if len(args) != 2 {
		panic("equal? expects 2 arguments")
	}

	return Boolean(equal(args[0], args[1], map[*Pair]struct{}{}))
}

func equal(obj1, obj2 Value, stack map[*Pair]struct{}) bool {
	if SameValue(obj1, obj2) {
		return true
	}

	switch obj1 := obj1.(type) {
	case *Pair:
		obj2, ok := obj2.(*Pair)
		if !ok {
			return false
		}

		if _, ok := stack[obj1]; ok {
			return false
		}
		if _, ok := stack[obj2]; ok {
			return false
		}
		stack[obj1], stack[obj2] = struct{}{}, struct{}{}
		defer delete(stack, obj1)
		defer delete(stack, obj2)

		return equal(obj1.car, obj2.car, stack) && equal(obj1.cdr, obj2.cdr, stack)
	case Vector:
		obj2, ok := obj2.(Vector)
		if !ok {
			return false
		}

		if len(obj1) != len(obj2) {
			return false
		}

		for i, e := range obj1 {
			if !equal(e, obj2[i], stack) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func BooleanPred(args Vector) Value {
	if len(args) != 1 {
		return Boolean(false)
	}
	_, ok := args[0].(Boolean)
	return Boolean(ok)
}

// BooleanNot returns #t if its argument is #f and #f otherwise.
func BooleanNot(args Vector) Value {
	if len(args) != 1 {
		panic("not expects 1 argument")
	}
	return Boolean(!Truthy(args[0]))
}
