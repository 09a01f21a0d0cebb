package jsmath

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

func ParseString(s string) (SExpression, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a single expression from r.
func Parse(r io.Reader) (SExpression, error) {
	p := &parser{l: &lexer{r: bufio.NewReader(r)}}
	return p.parseExpression()
}

// ParseAll reads expressions from r until it is exhausted.
func ParseAll(r io.Reader) ([]SExpression, error) {
	p := &parser{l: &lexer{r: bufio.NewReader(r)}}

	var exprs []SExpression
	for {
		if err := p.skipDatumComments(); err != nil {
			return nil, err
		}
		if p.peek() == nil {
			if p.err != nil && !errors.Is(p.err, io.EOF) {
				return nil, p.err
			}
			return exprs, nil
		}
		x, err := p.parseExpression()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		exprs = append(exprs, x)
	}
}

type parser struct {
	l   *lexer
	t   interface{}
	err error
}

func (p *parser) peek() interface{} {
	if p.t == nil && p.err == nil {
		p.t, p.err = p.l.next()
	}
	return p.t
}

func (p *parser) next() (interface{}, error) {
	if p.t != nil {
		v := p.t
		p.t = nil
		return v, nil
	}
	if p.err != nil {
		err := p.err
		p.err = nil
		return nil, err
	}
	return p.l.next()
}

// unexpectedEnd returns the error for input that ends inside a list or vector.
func (p *parser) unexpectedEnd() error {
	if _, err := p.next(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return io.ErrUnexpectedEOF
}

// skipDatumComments discards any #; comments and the datums they apply to.
func (p *parser) skipDatumComments() error {
	for p.peek() == '#' {
		p.next()
		if _, err := p.parseExpression(); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) parseExpression() (SExpression, error) {
	if err := p.skipDatumComments(); err != nil {
		return nil, err
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case SExpression:
		return tok, nil
	case rune:
		switch tok {
		case '(':
			if err := p.skipDatumComments(); err != nil {
				return nil, err
			}
			if p.peek() == ')' {
				p.next()
				return nil, nil
			}

			first, err := p.parseExpression()
			if err != nil {
				return nil, err
			}

			head := &Pair{car: first}
			tail := head
			for {
				if err := p.skipDatumComments(); err != nil {
					return nil, err
				}
				switch p.peek() {
				case ')':
					p.next()
					return head, nil
				case Symbol("."):
					p.next()
					last, err := p.parseExpression()
					if err != nil {
						return nil, err
					}
					if err := p.skipDatumComments(); err != nil {
						return nil, err
					}
					if tok, _ := p.next(); tok != ')' {
						return nil, fmt.Errorf("unexpected token %v", tok)
					}
					tail.cdr = last
					return head, nil
				case nil:
					return nil, p.unexpectedEnd()
				}

				next, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				pair := &Pair{car: next}
				tail.cdr, tail = pair, pair
			}
		case '[':
			var vec Vector
			for {
				if err := p.skipDatumComments(); err != nil {
					return nil, err
				}
				switch p.peek() {
				case ')':
					p.next()
					return vec, nil
				case nil:
					return nil, p.unexpectedEnd()
				}

				el, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				vec = append(vec, el)
			}
		case '\'':
			el, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			return Vector{Symbol("quote"), el}.ToList(), nil
		default:
			return nil, fmt.Errorf("unexpected token %q", tok)
		}
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}
