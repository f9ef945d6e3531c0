// Released under an MIT license. See LICENSE.

// Package reference defines the interface for a mutable binding.
package reference

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value.
type I interface {
	Get() cell.I
	Set(cell.I)
}
