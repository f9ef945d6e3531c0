// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/number"
	"github.com/lispcore/lisp/internal/common/type/num"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/validate"
)

func add(args cell.I) (cell.I, error) {
	return fold(0, args, func(a, b float64) float64 { return a + b })
}

// With a single argument, / returns its reciprocal.
func div(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	op := func(a, b float64) float64 { return a / b }

	if rest == pair.Null {
		return fold(1, args, op)
	}

	return first(v[0], rest, op)
}

func mul(args cell.I) (cell.I, error) {
	return fold(1, args, func(a, b float64) float64 { return a * b })
}

// With a single argument, - negates it.
func sub(args cell.I) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if rest == pair.Null {
		n, err := number.Value(v[0])
		if err != nil {
			return nil, err
		}

		return num.Float(-n), nil
	}

	return first(v[0], rest, func(a, b float64) float64 { return a - b })
}

func first(c cell.I, rest cell.I, op func(a, b float64) float64) (cell.I, error) {
	n, err := number.Value(c)
	if err != nil {
		return nil, err
	}

	return fold(n, rest, op)
}

func fold(acc float64, args cell.I, op func(a, b float64) float64) (cell.I, error) {
	for ; pair.Is(args); args = pair.Cdr(args) {
		n, err := number.Value(pair.Car(args))
		if err != nil {
			return nil, err
		}

		acc = op(acc, n)
	}

	return num.Float(acc), nil
}
