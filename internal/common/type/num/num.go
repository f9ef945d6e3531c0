// Released under an MIT license. See LICENSE.

// Package num provides the number type.
package num

import (
	"strconv"

	"github.com/lispcore/lisp/internal/common"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/number"
)

const name = "number"

// T (num) wraps Go's float64 type.
type T float64

type num = T

// New creates a new num cell from a string.
// The string must be a valid floating point number.
func New(s string) cell.I {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic("'" + s + "' is not a valid number")
	}

	return Float(f)
}

// Float creates a num from the float64 f.
func Float(f float64) cell.I {
	n := num(f)

	return &n
}

// Int creates a num from the integer i.
func Int(i int) cell.I {
	return Float(float64(i))
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Float() == To(c).Float()
}

// Float returns the value of the num n as a float64.
func (n *num) Float() float64 {
	return float64(*n)
}

// Literal returns the literal representation of the num n.
func (n *num) Literal() string {
	return n.String()
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return name
}

// String returns the shortest text that reads back as the num n.
func (n *num) String() string {
	return strconv.FormatFloat(n.Float(), 'g', -1, 64)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)

	// The num type has a literal representation.
	_ = literal.I(&t)

	// The num type is a number.
	_ = number.I(&t)

	// The num type is a stringer.
	_ = common.Stringer(&t)
}
