// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/scope"
)

// Closure is a procedure that captures the environment it was created in.
type Closure struct {
	Body   cell.I  // Body of the routine.
	Params cell.I  // Parameter list.
	Scope  scope.I // Defining environment.
}

// Equal returns true if the cell c is the same closure as a.
func (a *Closure) Equal(c cell.I) bool {
	p, ok := c.(*Closure)

	return ok && p == a
}

// Literal returns the printed form of a closure.
func (*Closure) Literal() string {
	return "#<closure>"
}

// Name returns the name of the closure type.
func (*Closure) Name() string {
	return "closure"
}

// Macro rewrites its unevaluated arguments. Unlike a closure it captures
// nothing: expansion happens in the environment of the call.
type Macro struct {
	Body   cell.I
	Params cell.I
}

// Equal returns true if the cell c is the same macro as m.
func (m *Macro) Equal(c cell.I) bool {
	p, ok := c.(*Macro)

	return ok && p == m
}

// Literal returns the printed form of a macro.
func (*Macro) Literal() string {
	return "#<macro>"
}

// Name returns the name of the macro type.
func (*Macro) Name() string {
	return "macro"
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var c Closure

	_ = cell.I(&c)
	_ = literal.I(&c)

	var m Macro

	_ = cell.I(&m)
	_ = literal.I(&m)

	var n Native

	_ = cell.I(&n)
	_ = literal.I(&n)
}
