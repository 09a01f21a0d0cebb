package jsmath

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// eof is returned by read once the input is exhausted or has failed.
const eof rune = -1

type lexer struct {
	r   *bufio.Reader
	err error
}

func (l *lexer) read() rune {
	if l.err != nil {
		return eof
	}
	c, _, err := l.r.ReadRune()
	if err != nil {
		l.err = err
		return eof
	}
	return c
}

func (l *lexer) unread() {
	if l.err == nil {
		l.r.UnreadRune()
	}
}

func (l *lexer) peek() rune {
	c := l.read()
	l.unread()
	return c
}

// unexpectedEOF returns the error for input that ends inside a token or
// comment.
func (l *lexer) unexpectedEOF() error {
	if l.err != nil && !errors.Is(l.err, io.EOF) {
		return l.err
	}
	return io.ErrUnexpectedEOF
}

// next returns the next token: a rune for punctuation or an SExpression for
// atoms. It returns io.EOF at the end of the input.
//
// Punctuation tokens are '(', ')', '\'', '`', ',', '@' (for ",@"), '[' (for
// "#(") and '#' (for the "#;" datum comment).
func (l *lexer) next() (interface{}, error) {
	for {
		c := l.read()
		switch {
		case c == eof:
			if l.err != nil && !errors.Is(l.err, io.EOF) {
				return nil, l.err
			}
			return nil, io.EOF
		case isSpace(c):
			continue
		}

		switch c {
		case '(', ')', '\'', '`':
			return c, nil
		case ',':
			if l.peek() == '@' {
				l.read()
				return '@', nil
			}
			return ',', nil
		case '"':
			return l.string()
		case ';':
			l.lineComment()
		case '#':
			tok, err := l.hash()
			if tok != nil || err != nil {
				return tok, err
			}
		case '-', '+', '.':
			return l.number(l.word(c), true)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return l.number(l.word(c), false)
		default:
			return Symbol(l.word(c)), nil
		}
	}
}

// word reads the run of non-delimiter runes that starts with first.
func (l *lexer) word(first rune) string {
	var b strings.Builder
	b.WriteRune(first)
	for {
		c := l.read()
		if c == eof || isDelimiter(c) {
			l.unread()
			return b.String()
		}
		b.WriteRune(c)
	}
}

func (l *lexer) lineComment() {
	for c := l.read(); c != '\n' && c != eof; c = l.read() {
	}
}

// blockComment skips a #| ... |# comment, which may nest. The opening #| has
// already been read.
func (l *lexer) blockComment() error {
	for depth := 1; depth > 0; {
		switch l.read() {
		case eof:
			return l.unexpectedEOF()
		case '#':
			if l.peek() == '|' {
				l.read()
				depth++
			}
		case '|':
			if l.peek() == '#' {
				l.read()
				depth--
			}
		}
	}
	return nil
}

// hash lexes the syntax that follows a '#'. It returns a nil token and nil
// error after skipping a block comment.
func (l *lexer) hash() (interface{}, error) {
	switch l.peek() {
	case eof:
		return nil, l.unexpectedEOF()
	case '(':
		l.read()
		return '[', nil
	case ';':
		l.read()
		return '#', nil
	case '|':
		l.read()
		return nil, l.blockComment()
	}

	w := l.word(l.read())
	switch w {
	case "t", "true":
		return Boolean(true), nil
	case "f", "false":
		return Boolean(false), nil
	}

	radix := 0
	switch w[0] {
	case 'b':
		radix = 2
	case 'o':
		radix = 8
	case 'd':
		radix = 10
	case 'x':
		radix = 16
	}
	if radix == 0 || len(w) == 1 {
		return nil, fmt.Errorf("unexpected token #%v", w)
	}
	if radix == 10 {
		return l.number(w[1:], false)
	}

	u, err := strconv.ParseUint(w[1:], radix, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number literal '#%v'", w)
	}
	return Number(u), nil
}

// number converts a decimal literal. Words that are not numbers become
// symbols if maybeSymbol is set, so "-", "..." and "+x" remain identifiers.
func (l *lexer) number(w string, maybeSymbol bool) (interface{}, error) {
	switch w {
	case "+Infinity":
		return Number(math.Inf(1)), nil
	case "-Infinity":
		return Number(math.Inf(-1)), nil
	}

	if isDecimalLiteral(w) {
		f, err := strconv.ParseFloat(w, 64)
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return Number(f), nil
		}
	}
	if maybeSymbol {
		return Symbol(w), nil
	}
	return nil, fmt.Errorf("invalid number literal '%v'", w)
}

func isDecimalLiteral(w string) bool {
	for _, c := range w {
		if !(c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-') {
			return false
		}
	}
	return true
}

func (l *lexer) string() (interface{}, error) {
	var s strings.Builder
	for {
		c := l.read()
		switch c {
		case eof:
			return nil, l.unexpectedEOF()
		case '"':
			return String(s.String()), nil
		case '\\':
			r, err := l.escape()
			if err != nil {
				return nil, err
			}
			if r == eof {
				continue
			}
			c = r
		}
		s.WriteRune(c)
	}
}

// escape reads the escape sequence following a backslash in a string. A line
// continuation produces no rune and is reported as eof.
func (l *lexer) escape() (rune, error) {
	k := l.read()
	switch k {
	case eof:
		return 0, l.unexpectedEOF()
	case '\\', '"':
		return k, nil
	case 'a':
		return '\a', nil
	case 'b':
		return '\b', nil
	case 't':
		return '\t', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'x':
		var c rune
		for {
			k = l.read()
			switch {
			case k == eof:
				return 0, l.unexpectedEOF()
			case k == ';':
				return c, nil
			}
			d, ok := hexDigit(k)
			if !ok {
				return 0, fmt.Errorf("invalid hex digit %q", k)
			}
			c = c*16 + d
		}
	case ' ', '\t', '\n':
		// \<intraline whitespace>*<newline><intraline whitespace>*
		for k != '\n' {
			switch k = l.read(); k {
			case eof:
				return 0, l.unexpectedEOF()
			case ' ', '\t', '\n':
			default:
				return 0, fmt.Errorf("unterminated line continuation")
			}
		}
		for k = l.peek(); k == ' ' || k == '\t'; k = l.peek() {
			l.read()
		}
		return eof, nil
	default:
		return 0, fmt.Errorf("invalid escape sequence '\\%c'", k)
	}
}

func hexDigit(c rune) (rune, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	default:
		return 0, false
	}
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDelimiter(c rune) bool {
	switch c {
	case '(', ')', '"', ';', '\'', '`', ',':
		return true
	default:
		return isSpace(c)
	}
}
