// Released under an MIT license. See LICENSE.

package task

import (
	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/common/type/list"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
	"github.com/lispcore/lisp/internal/reader/parser"
)

// Quasi expands the template c in the environment e.
func (t *T) Quasi(e scope.I, c cell.I) (cell.I, error) {
	v, _, err := t.quasi(e, c)

	return v, err
}

// quasi returns the expansion of c and whether the caller should splice it.
//
// Once a list level has seen a splice, every later element at that level
// whose expansion is a list is spliced as well.
func (t *T) quasi(e scope.I, c cell.I) (cell.I, bool, error) {
	if !pair.Is(c) {
		return c, false, nil
	}

	switch marker(c) {
	case parser.Unq:
		v, err := t.Eval(e, operand(c))

		return v, false, err

	case parser.Splice:
		v, err := t.Eval(e, operand(c))
		if err != nil {
			return nil, false, err
		}

		if !list.Is(v) {
			return nil, false, fault.New(fault.ErrType, "cannot splice %s", literal.String(v))
		}

		return v, true, nil
	}

	elements := []cell.I{}
	splicing := false

	for i := 0; pair.Is(c); c, i = pair.Cdr(c), i+1 {
		// `(a . ,b) reads as (A UN-QUOTE B).
		if i > 0 && dotted(c) {
			tail, err := t.Eval(e, operand(c))
			if err != nil {
				return nil, false, err
			}

			c = tail

			break
		}

		v, splice, err := t.quasi(e, pair.Car(c))
		if err != nil {
			return nil, false, err
		}

		splicing = splicing || splice

		if splicing && list.Is(v) {
			elements = append(elements, list.Slice(v)...)
		} else {
			elements = append(elements, v)
		}
	}

	r := list.New(elements...)
	if c != pair.Null {
		if r == pair.Null {
			return c, false, nil
		}

		pair.SetCdr(list.Last(r), c)
	}

	return r, false, nil
}

func dotted(c cell.I) bool {
	return marker(c) == parser.Unq && pair.Cddr(c) == pair.Null
}

func marker(c cell.I) string {
	h := pair.Car(c)
	if !sym.Is(h) || !pair.Is(pair.Cdr(c)) {
		return ""
	}

	return sym.To(h).String()
}

func operand(c cell.I) cell.I {
	return pair.Cadr(c)
}
