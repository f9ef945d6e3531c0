// Released under an MIT license. See LICENSE.

// Package slot provides the variable type.
package slot

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/reference"
)

// T (slot) holds a cell value. A slot is shared by every frame that can see
// it, so a Set is visible to all of them.
type T struct {
	c cell.I
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.c = c
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t slot

	// The slot type is a reference.
	_ = reference.I(&t)
}
