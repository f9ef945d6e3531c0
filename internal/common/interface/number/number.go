// Released under an MIT license. See LICENSE.

// Package number defines the interface for cells usable in a numeric context.
package number

import (
	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
)

// I (number) is anything that can be treated as a double-precision float.
type I interface {
	Float() float64
}

type number = I

// Value returns the float64 value for a cell, if possible.
func Value(c cell.I) (float64, error) {
	n, ok := c.(number)
	if !ok {
		return 0, fault.New(fault.ErrType, "%s cannot be used in a numeric context", c.Name())
	}

	return n.Float(), nil
}
