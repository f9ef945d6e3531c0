// Released under an MIT license. See LICENSE.

// Package validate checks argument counts for native procedures.
package validate

import (
	"fmt"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/type/list"
	"github.com/lispcore/lisp/internal/common/type/pair"
)

// Variadic returns at least min and at most max elements from the front of
// actual along with whatever remains.
func Variadic(actual cell.I, min, max int) ([]cell.I, cell.I, error) {
	expected := make([]cell.I, 0, max)

	for i := 0; i < max; i++ {
		if !pair.Is(actual) {
			if i < min {
				s := Count(min, "argument", "s")

				return nil, nil, fault.New(fault.ErrArity, "expected %s, passed %d", s, i)
			}

			break
		}

		expected = append(expected, pair.Car(actual))

		actual = pair.Cdr(actual)
	}

	return expected, actual, nil
}

// Fixed returns between min and max elements of actual. Any more is an error.
func Fixed(actual cell.I, min, max int) ([]cell.I, error) {
	expected, rest, err := Variadic(actual, min, max)
	if err != nil {
		return nil, err
	}

	if pair.Is(rest) {
		s := Count(max, "argument", "s")
		if min != max {
			s = "at most " + s
		}

		n := int(list.Length(actual))

		return nil, fault.New(fault.ErrArity, "expected %s, passed %d", s, n)
	}

	return expected, nil
}

// Count returns n and label, pluralized with p when n is not one.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}
