// Released under an MIT license. See LICENSE.

package sym

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
)

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// IsNil returns true if c is the symbol NIL.
func IsNil(c cell.I) bool {
	s, ok := c.(*sym)

	return ok && *s == "NIL"
}

// To returns a sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("not a " + name)
}
