package jsmath

import (
	"io"
	"strings"
)

// Value
type Value interface {
	MarshalSExp() SExpression
}

// SExpressions
type SExpression interface {
	Value

	write(w io.Writer) error
}

// Encode writes a textual representation of v to w.
func Encode(w io.Writer, v Value) error {
	if p, ok := v.(SExpression); ok {
		return p.write(w)
	}
	if v == nil {
		_, err := w.Write([]byte("()"))
		return err
	}
	return v.MarshalSExp().write(w)
}

// Encode returns the textual representation of v.
func EncodeToString(v Value) string {
	var b strings.Builder
	Encode(&b, v)
	return b.String()
}

// Number is the host's only numeric type: an IEEE-754 double.
type Number float64

func (n Number) write(w io.Writer) error {
	_, err := w.Write([]byte(FormatNumber(float64(n))))
	return err
}

func (n Number) MarshalSExp() SExpression {
	return n
}

// Boolean
type Boolean bool

func (b Boolean) MarshalSExp() SExpression {
	return b
}

func (b Boolean) write(w io.Writer) error {
	text := "#t"
	if !b {
		text = "#f"
	}
	_, err := w.Write([]byte(text))
	return err
}

// Truthy returns the truth value of v. Any value besides false is considered true.
func Truthy(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// Undefined is the value of a missing argument or an absent result.
var Undefined Value = undefined{}

type undefined struct{}

func (undefined) MarshalSExp() SExpression {
	return undefined{}
}

func (undefined) write(w io.Writer) error {
	_, err := w.Write([]byte("undefined"))
	return err
}

// Pair
type Pair struct {
	car Value
	cdr Value
}

func Cons(car, cdr Value) *Pair {
	return &Pair{car: car, cdr: cdr}
}

func (p *Pair) MarshalSExp() SExpression {
	return p
}

func (p *Pair) write(w io.Writer) error {
	if _, err := w.Write([]byte("(")); err != nil {
		return err
	}
	first := true
	for p != nil {
		if !first {
			if _, err := w.Write([]byte(" ")); err != nil {
				return err
			}
		}
		first = false

		if err := Encode(w, p.car); err != nil {
			return err
		}
		if p.cdr == nil {
			break
		}
		tail, ok := p.cdr.(*Pair)
		if !ok {
			if _, err := w.Write([]byte(" . ")); err != nil {
				return err
			}
			if err := Encode(w, p.cdr); err != nil {
				return err
			}
			break
		}
		p = tail
	}
	_, err := w.Write([]byte(")"))
	return err
}

// Car returns the car field of the pair.
func (p *Pair) Car() Value {
	return p.car
}

// Cdr returns the cdr field of the pair.
func (p *Pair) Cdr() Value {
	return p.cdr
}

// ToVector converts the list to a vector.
func (p *Pair) ToVector() Vector {
	var vec Vector
	for p != nil {
		vec = append(vec, p.car)
		if p.cdr == nil {
			return vec
		}
		tail, ok := p.cdr.(*Pair)
		if !ok {
			vec = append(vec, p.cdr)
			return vec
		}
		p = tail
	}
	return vec
}

func (p *Pair) next() (*Pair, bool) {
	next, ok := p.cdr.(*Pair)
	return next, ok
}

func (p *Pair) len() int {
	if p == nil {
		return 0
	}

	l := 1
	for {
		next, ok := p.cdr.(*Pair)
		if !ok {
			if p.cdr == nil {
				return l
			}
			return l + 1
		}
		p, l = next, l+1
	}
}

// Symbol
type Symbol string

func (s Symbol) MarshalSExp() SExpression {
	return s
}

func (s Symbol) write(w io.Writer) error {
	_, err := w.Write([]byte(s))
	return err
}

// String
type String string

func (s String) MarshalSExp() SExpression {
	return s
}

func (s String) write(w io.Writer) error {
	_, err := w.Write([]byte(s))
	return err
}

// Vector
type Vector []Value

func (v Vector) MarshalSExp() SExpression {
	return v
}

func (v Vector) write(w io.Writer) error {
	if _, err := w.Write([]byte("(vector")); err != nil {
		return err
	}
	for _, e := range v {
		if _, err := w.Write([]byte(" ")); err != nil {
			return err
		}
		if err := Encode(w, e); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte(")"))
	return err
}

// ToList converts the vector to a list.
func (v Vector) ToList() SExpression {
	var head SExpression
	for i := len(v) - 1; i >= 0; i-- {
		head = &Pair{car: v[i], cdr: head}
	}
	return head
}

// Procedure
type Procedure interface {
	Value

	Apply(args Vector) Value
}

type ProcedureFunc func(args Vector) Value

func (f ProcedureFunc) MarshalSExp() SExpression {
	return Symbol("<builtin procedure>")
}

func (f ProcedureFunc) Apply(args Vector) Value {
	return f(args)
}
