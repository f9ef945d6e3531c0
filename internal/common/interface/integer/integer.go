// Released under an MIT license. See LICENSE.

// Package integer converts a cell to an int64 value, if possible.
package integer

import (
	"math"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/number"
)

// Value returns the int64 value for a cell, if possible.
func Value(c cell.I) (int64, error) {
	f, err := number.Value(c)
	if err != nil {
		return 0, err
	}

	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fault.New(fault.ErrType, "%s does not have an integer value", literal.String(c))
	}

	return int64(f), nil
}
