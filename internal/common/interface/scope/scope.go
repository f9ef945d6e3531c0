// Released under an MIT license. See LICENSE.

// Package scope defines the interface for environment frames.
package scope

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/reference"
	"github.com/lispcore/lisp/internal/common/struct/hash"
)

// I (scope) is a frame of bindings with an optional enclosing frame.
type I interface {
	Enclosing() I
	Global() I

	Define(k string, v cell.I)
	Lookup(k string) reference.I
	Local() *hash.T
}
