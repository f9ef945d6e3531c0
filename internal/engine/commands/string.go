// Released under an MIT license. See LICENSE.

package commands

import (
	"strings"

	"github.com/lispcore/lisp/internal/common"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/str"
	"github.com/lispcore/lisp/internal/common/validate"
)

func concat(args cell.I) (cell.I, error) {
	var b strings.Builder

	for ; pair.Is(args); args = pair.Cdr(args) {
		s, err := common.String(pair.Car(args))
		if err != nil {
			return nil, err
		}

		b.WriteString(s)
	}

	return str.New(b.String()), nil
}

// STRING returns the printed form of its argument. Strings are unchanged.
func toString(args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if str.Is(v[0]) {
		return v[0], nil
	}

	return str.New(literal.String(v[0])), nil
}
