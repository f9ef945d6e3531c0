// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for Lisp forms.
package parser

import (
	"errors"
	"strings"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/struct/loc"
	"github.com/lispcore/lisp/internal/common/struct/token"
	"github.com/lispcore/lisp/internal/common/type/list"
	"github.com/lispcore/lisp/internal/common/type/num"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/str"
	"github.com/lispcore/lisp/internal/common/type/sym"
)

// Names that the quote-family prefixes expand to.
const (
	Quasi  = "QUASI-QUOTE"
	Quote  = "QUOTE"
	Splice = "SPLICE-UN-QUOTE"
	Unq    = "UN-QUOTE"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	last  *loc.T          // Source of the most recently consumed token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that pulls tokens from item.
// The item function returns nil when there are no more tokens.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse reads forms and passes each to emit until there are no more tokens.
// Parsing stops at the first error returned by emit or by the parser.
func (p *T) Parse(emit func(cell.I) error) error {
	for {
		c, err := p.Read()
		if errors.Is(err, fault.ErrEndOfInput) {
			return nil
		} else if err != nil {
			return err
		}

		err = emit(c)
		if err != nil {
			return err
		}
	}
}

// Read returns the next complete form. When no tokens remain the error
// is fault.ErrEndOfInput rather than fault.ErrSyntax.
func (p *T) Read() (c cell.I, err error) {
	if p.peek() == nil {
		return nil, fault.New(fault.ErrEndOfInput, "no more forms")
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		c = nil

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = fault.At(p.last, fault.ErrSyntax, "%s", r)
		default:
			panic(r)
		}
	}()

	return p.form(), nil
}

func (p *T) consume() *token.T {
	t := p.peek()

	p.ahead = 0
	p.token = nil

	if t != nil {
		p.last = t.Source()
	}

	return t
}

func (p *T) fail(t *token.T, format string, args ...interface{}) {
	source := p.last
	if t != nil {
		source = t.Source()
	}

	panic(fault.At(source, fault.ErrSyntax, format, args...))
}

func (p *T) peek() *token.T {
	// A nil lookahead is not cached so that more text can be scanned.
	if p.ahead > 0 && p.token != nil {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <form> ::= <atom> | '(' <list> | <prefix> <form> .
func (p *T) form() cell.I {
	t := p.consume()
	if t == nil {
		p.fail(t, "unexpected end of input")
	}

	switch t.Class() {
	case '(':
		return p.list()
	case ')':
		p.fail(t, "unexpected ')'")
	case '\'':
		return p.prefixed(Quote)
	case '`':
		return p.prefixed(Quasi)
	case ',':
		return p.prefixed(Unq)
	case token.Splice:
		return p.prefixed(Splice)
	case token.Error:
		p.fail(t, "%s", t.Value())
	case token.Number:
		return num.New(t.Value())
	case token.String:
		return str.New(t.Value())
	case token.Symbol:
		return sym.New(strings.ToUpper(t.Value()))
	}

	p.fail(t, "unexpected %v", t)

	return nil
}

// <list> ::= <form>* ( '.' <form> )? ')' .
func (p *T) list() cell.I {
	elements := []cell.I{}

	for {
		t := p.peek()

		switch {
		case t == nil:
			p.fail(t, "missing ')'")
		case t.Is(')'):
			p.consume()

			return list.New(elements...)
		case t.Is(token.Symbol) && t.Value() == "." && len(elements) > 0:
			p.consume()

			tail := p.form()

			if !p.peek().Is(')') {
				p.fail(p.peek(), "expected ')' after dotted tail")
			}

			p.consume()

			c := list.New(elements...)
			pair.SetCdr(list.Last(c), tail)

			return c
		default:
			elements = append(elements, p.form())
		}
	}
}

// <prefix> <form> ::= '(' <name> <form> ')' .
func (p *T) prefixed(name string) cell.I {
	return list.New(sym.New(name), p.form())
}
