// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
	"github.com/lispcore/lisp/internal/common/validate"
)

// CAR and CDR of NIL are NIL.
func car(args cell.I) (cell.I, error) {
	return part(args, "CAR", pair.Car)
}

func cdr(args cell.I) (cell.I, error) {
	return part(args, "CDR", pair.Cdr)
}

func cons(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	return pair.Cons(v[0], v[1]), nil
}

func part(args cell.I, label string, get func(cell.I) cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	switch {
	case sym.IsNil(v[0]):
		return pair.Null, nil
	case pair.Is(v[0]):
		return get(v[0]), nil
	}

	return nil, fault.New(fault.ErrType, "%s of non-list %s", label, literal.String(v[0]))
}
