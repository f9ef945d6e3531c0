// Released under an MIT license. See LICENSE.

// Package truth defines the interface for types that have a truth value.
package truth

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
)

// I (truth) is anything that evaluates to a true or false value.
type I interface {
	Bool() bool
}

// Value returns the truth value for a cell.
// Only types that say otherwise are false; everything else is true.
func Value(c cell.I) bool {
	b, ok := c.(I)
	if !ok {
		return true
	}

	return b.Bool()
}
