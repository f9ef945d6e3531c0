// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/number"
	"github.com/lispcore/lisp/internal/common/type/create"
	"github.com/lispcore/lisp/internal/common/type/pair"
)

// Every argument is compared with the first. Pairs are equal only to
// themselves.
func eq(args cell.I) (cell.I, error) {
	if !pair.Is(args) {
		return pair.Null, nil
	}

	v := pair.Car(args)

	for rest := pair.Cdr(args); pair.Is(rest); rest = pair.Cdr(rest) {
		if !v.Equal(pair.Car(rest)) {
			return pair.Null, nil
		}
	}

	return create.Bool(true), nil
}

func ge(args cell.I) (cell.I, error) {
	return compare(args, func(a, b float64) bool { return a >= b })
}

func gt(args cell.I) (cell.I, error) {
	return compare(args, func(a, b float64) bool { return a > b })
}

func le(args cell.I) (cell.I, error) {
	return compare(args, func(a, b float64) bool { return a <= b })
}

func lt(args cell.I) (cell.I, error) {
	return compare(args, func(a, b float64) bool { return a < b })
}

// compare returns TRUE if op holds for each adjacent pair of arguments.
func compare(args cell.I, op func(a, b float64) bool) (cell.I, error) {
	if !pair.Is(args) {
		return create.Bool(true), nil
	}

	prev, err := number.Value(pair.Car(args))
	if err != nil {
		return nil, err
	}

	result := true

	for args = pair.Cdr(args); pair.Is(args); args = pair.Cdr(args) {
		curr, err := number.Value(pair.Car(args))
		if err != nil {
			return nil, err
		}

		result = result && op(prev, curr)
		prev = curr
	}

	return create.Bool(result), nil
}
