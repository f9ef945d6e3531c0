// Released under an MIT license. See LICENSE.

package task

import (
	"errors"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
	"github.com/lispcore/lisp/internal/common/validate"
)

// Jump is the signal raised by GO. It unwinds like an error until a
// TAGBODY that owns Label catches it.
type Jump struct {
	Label string
}

func (j *Jump) Error() string {
	return "go " + j.Label
}

// Unmatched converts a jump that escaped every TAGBODY into a fault.
// Other errors are returned unchanged.
func Unmatched(err error) error {
	var j *Jump
	if errors.As(err, &j) {
		return fault.New(fault.ErrUnmatchedLabel, "%s", j.Label)
	}

	return err
}

func tagbody(t *T, e scope.I, args cell.I) (cell.I, error) {
	labels := map[string]int{}
	body := []cell.I{}

	for ; pair.Is(args); args = pair.Cdr(args) {
		c := pair.Car(args)
		if sym.Is(c) {
			labels[sym.To(c).String()] = len(body)

			continue
		}

		body = append(body, c)
	}

	result := pair.Null

	for i := 0; i < len(body); {
		v, err := t.Eval(e, body[i])
		if err != nil {
			var j *Jump
			if errors.As(err, &j) {
				if next, ok := labels[j.Label]; ok {
					i = next

					continue
				}
			}

			return nil, err
		}

		result = v
		i++
	}

	return result, nil
}

func goLabel(_ *T, _ scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !sym.Is(v[0]) {
		return nil, fault.New(fault.ErrType, "label %s is not a symbol", literal.String(v[0]))
	}

	return nil, &Jump{Label: sym.To(v[0]).String()}
}
