// Released under an MIT license. See LICENSE.

// Package env provides the environment frame type.
package env

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/reference"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/common/struct/hash"
)

const name = "environment"

// T (env) maps names to values and refers to its enclosing frame.
// Frames are shared, never copied: every closure created in a frame keeps
// a pointer to it, and mutation through any holder is seen by all.
type T struct {
	previous scope.I
	*local
}

type env = T

// We alias hash.T to local so that when embedded it is easy to refer to
// it by name. Embedding local also lets us access its methods directly.
type local = hash.T

// New creates a new env enclosed by previous, which may be nil.
func New(previous scope.I) scope.I {
	return &env{
		previous: previous,
		local:    hash.New(),
	}
}

// Define associates the name k with the cell v in the env e, shadowing
// any binding of k in an enclosing frame.
func (e *env) Define(k string, v cell.I) {
	e.Set(k, v)
}

// Enclosing returns the enclosing scope.
func (e *env) Enclosing() scope.I {
	return e.previous
}

// Equal returns true if c is the same env as e.
func (e *env) Equal(c cell.I) bool {
	o, ok := c.(*env)

	return ok && o == e
}

// Global returns the outermost scope in the chain starting at e.
func (e *env) Global() scope.I {
	var s scope.I = e
	for s.Enclosing() != nil {
		s = s.Enclosing()
	}

	return s
}

// Local returns the hash of names bound directly in the env e.
func (e *env) Local() *hash.T {
	return e.local
}

// Lookup retrieves the reference associated with the name k, searching
// outward from the env e.
func (e *env) Lookup(k string) reference.I {
	if e == nil {
		return nil
	}

	v := e.Get(k)

	if v == nil && e.previous != nil {
		v = e.previous.Lookup(k)
	}

	return v
}

// Name returns the type name for the env e.
func (e *env) Name() string {
	return name
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t env

	// The env type is a cell.
	_ = cell.I(&t)

	// The env type is a scope.
	_ = scope.I(&t)
}
