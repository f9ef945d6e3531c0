// Released under an MIT license. See LICENSE.

// Package literal defines the interface for types that can be rendered as text.
package literal

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell.
// It is total: cells without a literal form render as #<name>.
func String(c cell.I) string {
	if c == nil {
		return "#<nil>"
	}

	l, ok := c.(I)
	if !ok {
		return "#<" + c.Name() + ">"
	}

	return l.Literal()
}
