// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/integer"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/type/create"
	"github.com/lispcore/lisp/internal/common/type/list"
	"github.com/lispcore/lisp/internal/common/type/num"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/str"
	"github.com/lispcore/lisp/internal/common/type/sym"
	"github.com/lispcore/lisp/internal/common/validate"
)

// The last list is shared by the result. The others are copied.
func appendLists(args cell.I) (cell.I, error) {
	lists := list.Slice(args)

	for _, l := range lists {
		if !list.Is(l) {
			return nil, fault.New(fault.ErrType, "APPEND of non-list %s", literal.String(l))
		}
	}

	return list.Join(lists...), nil
}

func isCons(args cell.I) (cell.I, error) {
	return is(args, pair.Is)
}

func isNull(args cell.I) (cell.I, error) {
	return is(args, sym.IsNil)
}

func isNumber(args cell.I) (cell.I, error) {
	return is(args, num.Is)
}

func isString(args cell.I) (cell.I, error) {
	return is(args, str.Is)
}

func isSymbol(args cell.I) (cell.I, error) {
	return is(args, sym.Is)
}

func length(args cell.I) (cell.I, error) {
	v, err := listArg(args, "LENGTH")
	if err != nil {
		return nil, err
	}

	return num.Int(int(list.Length(v))), nil
}

func makeList(args cell.I) (cell.I, error) {
	return list.Copy(args), nil
}

// NTH returns the element at a zero-based index or NIL if there is none.
func nth(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	i, err := integer.Value(v[0])
	if err != nil {
		return nil, err
	}

	if !list.Is(v[1]) {
		return nil, fault.New(fault.ErrType, "NTH of non-list %s", literal.String(v[1]))
	}

	if i < 0 {
		return pair.Null, nil
	}

	tail := list.Tail(v[1], i, pair.Null)
	if !pair.Is(tail) {
		return pair.Null, nil
	}

	return pair.Car(tail), nil
}

func reverse(args cell.I) (cell.I, error) {
	v, err := listArg(args, "REVERSE")
	if err != nil {
		return nil, err
	}

	return list.Reverse(v), nil
}

func is(args cell.I, predicate func(cell.I) bool) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return create.Bool(predicate(v[0])), nil
}

func listArg(args cell.I, label string) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !list.Is(v[0]) {
		return nil, fault.New(fault.ErrType, "%s of non-list %s", label, literal.String(v[0]))
	}

	return v[0], nil
}
