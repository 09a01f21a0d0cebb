package jsmath

import (
	"fmt"
)

// scope
type scope struct {
	env   map[Symbol]Value
	outer *scope
}

func (s *scope) bound(name Symbol) bool {
	_, ok := s.lookup(name)
	return ok
}

func (s *scope) set(name Symbol, v Value) {
	s.env[name] = v
}

func (s *scope) lookup(name Symbol) (Value, bool) {
	for s != nil {
		if v, ok := s.env[name]; ok {
			return v, true
		}
		s = s.outer
	}
	return nil, false
}

func (s *scope) push() *scope {
	return &scope{env: map[Symbol]Value{}, outer: s}
}

// Env evaluates expressions against the builtin table plus its own
// definitions. Definitions never leak into the builtin table, so separate
// Envs do not observe each other.
type Env struct {
	globals *scope
}

func NewEnv() *Env {
	return &Env{globals: globalScope.push()}
}

func (e *Env) With(bindings map[Symbol]Value) *Env {
	if bindings == nil {
		bindings = map[Symbol]Value{}
	}

	return &Env{globals: &scope{env: bindings, outer: e.globals}}
}

func (e *Env) Bound(name Symbol) bool {
	return e.globals.bound(name)
}

func (e *Env) Set(name Symbol, v Value) {
	e.globals.set(name, v)
}

// Eval evaluates expression. Evaluation errors panic.
func (e *Env) Eval(expression Value) Value {
	return eval(expression, e.globals)
}

// Run evaluates expression, converting evaluation panics into an error.
func (e *Env) Run(expression Value) (v Value, err error) {
	defer func() {
		if x := recover(); x != nil {
			if xerr, ok := x.(error); ok {
				err = fmt.Errorf("evaluating %v: %w", EncodeToString(expression), xerr)
			} else {
				err = fmt.Errorf("evaluating %v: %v", EncodeToString(expression), x)
			}
		}
	}()
	return e.Eval(expression), nil
}

// ⟨variable⟩
//
// The value of the variable reference is the value stored in the location to
// which the variable is bound. It is an error to reference an unbound variable.
func evalVariable(e Symbol, scope *scope) Value {
	value, ok := scope.lookup(e)
	if !ok {
		panic(fmt.Sprintf("%v is not bound", string(e)))
	}
	return value
}

// (quote ⟨datum⟩)
// ’⟨datum⟩
func evalQuote(e *Pair) Value {
	if e.len() != 2 {
		panic("quote must be of the form (quote ⟨datum⟩)")
	}
	return e.cdr.(*Pair).car
}

// (if ⟨test⟩ ⟨consequent⟩ ⟨alternate⟩)
// (if ⟨test⟩ ⟨consequent⟩)
//
// If ⟨test⟩ yields a false value and no ⟨alternate⟩ is specified, the result
// is undefined.
func evalIf(e *Pair, scope *scope) Value {
	args := e.ToVector()
	if len(args) < 3 || len(args) > 4 {
		panic("if must be of the form (if ⟨test⟩ ⟨consequent⟩) or (if ⟨test⟩ ⟨consequent⟩ ⟨alternate⟩)")
	}
	if Truthy(eval(args[1], scope)) {
		return eval(args[2], scope)
	}
	if len(args) == 3 {
		return Undefined
	}
	return eval(args[3], scope)
}

// (and ⟨test1⟩ ...)
func evalAnd(e *Pair, scope *scope) Value {
	var result Value = Boolean(true)
	for e, ok := e.next(); ok && e != nil; e, ok = e.next() {
		if result = eval(e.car, scope); !Truthy(result) {
			return result
		}
	}
	return result
}

// (or ⟨test1⟩ ...)
func evalOr(e *Pair, scope *scope) Value {
	var result Value = Boolean(false)
	for e, ok := e.next(); ok && e != nil; e, ok = e.next() {
		if result = eval(e.car, scope); Truthy(result) {
			return result
		}
	}
	return result
}

// (begin ⟨expression1⟩ ⟨expression2⟩ ...)
func evalBegin(e *Pair, scope *scope) Value {
	var result Value = Undefined
	for e, ok := e.next(); ok && e != nil; e, ok = e.next() {
		result = eval(e.car, scope)
	}
	return result
}

// (define ⟨variable⟩ ⟨expression⟩)
func evalDefine(e *Pair, scope *scope) Value {
	const invalidDefine = "define must be of the form (define ⟨variable⟩ ⟨expression⟩)"

	args := e.ToVector()
	if len(args) != 3 {
		panic(invalidDefine)
	}
	sym, ok := args[1].(Symbol)
	if !ok {
		panic(invalidDefine)
	}
	scope.set(sym, eval(args[2], scope))
	return Undefined
}

func eval(expression Value, scope *scope) Value {
	if expression == nil {
		return nil
	}

	switch e := expression.(type) {
	case Number, Boolean, String, undefined:
		return e
	case Symbol:
		return evalVariable(e, scope)
	case Vector:
		result := make(Vector, len(e))
		for i, v := range e {
			result[i] = eval(v, scope)
		}
		return result
	case *Pair:
		switch sym, _ := e.car.(Symbol); sym {
		case "quote":
			return evalQuote(e)
		case "if":
			return evalIf(e, scope)
		case "and":
			return evalAnd(e, scope)
		case "or":
			return evalOr(e, scope)
		case "begin":
			return evalBegin(e, scope)
		case "define":
			return evalDefine(e, scope)
		default:
			p, ok := eval(e.car, scope).(Procedure)
			if !ok {
				panic(fmt.Sprintf("%v is not a procedure", EncodeToString(e.car)))
			}
			args := e.ToVector()
			actuals := make(Vector, len(args)-1)
			for i, arg := range args[1:] {
				actuals[i] = eval(arg, scope)
			}
			return p.Apply(actuals)
		}
	default:
		panic(fmt.Sprintf("unknown expression type %T", e))
	}
}
