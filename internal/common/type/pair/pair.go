// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type.
package pair

import (
	"strings"

	"github.com/lispcore/lisp/internal/common"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/type/sym"
)

const name = "cons"

//nolint:gochecknoglobals
var (
	// Null is the empty list, the symbol NIL. It also marks the end of a list.
	Null = sym.Nil
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true only if c is the same pair as p. Two separately
// constructed pairs are never equal, even when their contents are.
func (p *pair) Equal(c cell.I) bool {
	o, ok := c.(*pair)

	return ok && o == p
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	var b strings.Builder

	b.WriteByte('(')
	b.WriteString(literal.String(p.car))

	tail := p.cdr
	for Is(tail) {
		b.WriteByte(' ')
		b.WriteString(literal.String(Car(tail)))

		tail = Cdr(tail)
	}

	if !sym.IsNil(tail) {
		b.WriteString(" . ")
		b.WriteString(literal.String(tail))
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)
}
