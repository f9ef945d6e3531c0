// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating values.
package create

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
)

// Bool returns TRUE or NIL depending on the value of the boolean a.
func Bool(a bool) cell.I {
	if a {
		return sym.True
	}

	return pair.Null
}
