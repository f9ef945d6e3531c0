// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/scope"
)

// Fn is the signature of a native procedure. It receives its arguments
// unevaluated along with the environment of the call.
type Fn func(t *T, e scope.I, args cell.I) (cell.I, error)

// Native is a procedure implemented in Go.
type Native struct {
	Fn
	Label string
}

// Equal returns true if the cell c is the same native procedure as n.
func (n *Native) Equal(c cell.I) bool {
	p, ok := c.(*Native)

	return ok && p == n
}

// Literal returns the printed form of a native procedure.
func (n *Native) Literal() string {
	return "#<native " + n.Label + ">"
}

// Name returns the name of the native type.
func (*Native) Name() string {
	return "native"
}
