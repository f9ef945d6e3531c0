// Released under an MIT license. See LICENSE.

package task

import (
	"fmt"

	"github.com/michaelmacinnis/adapted"

	"github.com/lispcore/lisp/internal/common"
	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/common/interface/truth"
	"github.com/lispcore/lisp/internal/common/type/create"
	"github.com/lispcore/lisp/internal/common/type/env"
	"github.com/lispcore/lisp/internal/common/type/list"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
	"github.com/lispcore/lisp/internal/common/validate"
	"github.com/lispcore/lisp/internal/engine/commands"
	"github.com/lispcore/lisp/internal/reader/parser"
)

// Actions associates special forms and built-in procedures with names in
// the scope s.
func Actions(s scope.I) {
	for k, v := range map[string]Fn{
		"AND":           and,
		"BEGIN":         begin,
		"DEFINE":        define,
		"DEFMACRO":      defmacro,
		"DEFUN":         defun,
		"EVAL":          eval,
		"GO":            goLabel,
		"IF":            ifThenElse,
		"LAMBDA":        lambda,
		"LET":           let,
		"LISTVARS":      listvars,
		"MACRO":         macro,
		"MACROEXPAND-1": macroexpand1,
		"NOT":           not,
		"OR":            or,
		"PRINT":         printValue,
		"SETQ":          setq,
		"TAGBODY":       tagbody,

		parser.Quasi: quasiquote,
		parser.Quote: quote,
	} {
		s.Define(k, &Native{Fn: v, Label: k})
	}

	for k, v := range commands.Functions() {
		s.Define(k, f(k, v))
	}
}

// Special forms.

func and(t *T, e scope.I, args cell.I) (cell.I, error) {
	result := sym.True

	for ; pair.Is(args); args = pair.Cdr(args) {
		v, err := t.Eval(e, pair.Car(args))
		if err != nil {
			return nil, err
		}

		if !truth.Value(v) {
			return pair.Null, nil
		}

		result = v
	}

	return result, nil
}

func begin(t *T, e scope.I, args cell.I) (cell.I, error) {
	return t.Begin(e, args)
}

// DEFINE always binds in the global environment.
func define(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	k, err := name(v[0])
	if err != nil {
		return nil, err
	}

	value, err := t.Eval(e, v[1])
	if err != nil {
		return nil, err
	}

	e.Global().Define(k, value)

	return value, nil
}

func defmacro(t *T, e scope.I, args cell.I) (cell.I, error) {
	return defineWith(t, e, args, macro)
}

func defun(t *T, e scope.I, args cell.I) (cell.I, error) {
	return defineWith(t, e, args, lambda)
}

func defineWith(t *T, e scope.I, args cell.I, build Fn) (cell.I, error) {
	v, rest, err := validate.Variadic(args, 2, 2)
	if err != nil {
		return nil, err
	}

	k, err := name(v[0])
	if err != nil {
		return nil, err
	}

	value, err := build(t, e, pair.Cons(v[1], rest))
	if err != nil {
		return nil, err
	}

	e.Global().Define(k, value)

	return value, nil
}

// EVAL evaluates each argument and then evaluates the result.
func eval(t *T, e scope.I, args cell.I) (cell.I, error) {
	result := pair.Null

	for ; pair.Is(args); args = pair.Cdr(args) {
		v, err := t.Eval(e, pair.Car(args))
		if err != nil {
			return nil, err
		}

		result, err = t.Eval(e, v)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func ifThenElse(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 3)
	if err != nil {
		return nil, err
	}

	cond, err := t.Eval(e, v[0])
	if err != nil {
		return nil, err
	}

	branch := 2
	if truth.Value(cond) {
		branch = 1
	}

	if branch >= len(v) {
		return pair.Null, nil
	}

	return t.Eval(e, v[branch])
}

func lambda(_ *T, e scope.I, args cell.I) (cell.I, error) {
	v, body, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	err = params(v[0])
	if err != nil {
		return nil, err
	}

	return &Closure{Body: body, Params: v[0], Scope: e}, nil
}

// LET binds each name, or (name value) pair, in a new frame. Values are
// evaluated in the enclosing environment.
func let(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, body, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	if !list.Is(v[0]) {
		return nil, fault.New(fault.ErrType, "expected a list of bindings, got %s", literal.String(v[0]))
	}

	frame := env.New(e)

	for bindings := v[0]; pair.Is(bindings); bindings = pair.Cdr(bindings) {
		b := pair.Car(bindings)

		if sym.Is(b) {
			frame.Define(sym.To(b).String(), pair.Null)

			continue
		}

		kv, err := binding(b)
		if err != nil {
			return nil, err
		}

		value, err := t.Eval(e, kv[1])
		if err != nil {
			return nil, err
		}

		frame.Define(sym.To(kv[0]).String(), value)
	}

	return t.Begin(frame, body)
}

// LISTVARS writes each global binding, optionally only those whose names
// match a glob pattern.
func listvars(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 0, 1)
	if err != nil {
		return nil, err
	}

	pattern := "*"

	if len(v) > 0 {
		c, err := t.Eval(e, v[0])
		if err != nil {
			return nil, err
		}

		pattern, err = common.String(c)
		if err != nil {
			return nil, err
		}
	}

	h := e.Global().Local()

	for _, k := range h.Keys() {
		ok, err := adapted.Match(pattern, k)
		if err != nil {
			return nil, fault.New(fault.ErrType, "bad pattern %q: %v", pattern, err)
		}

		if !ok {
			continue
		}

		fmt.Fprintf(t.out, "%-16s %s\n", k+":", literal.String(h.Get(k).Get()))
	}

	return pair.Null, nil
}

func macro(_ *T, _ scope.I, args cell.I) (cell.I, error) {
	v, body, err := validate.Variadic(args, 1, 1)
	if err != nil {
		return nil, err
	}

	err = params(v[0])
	if err != nil {
		return nil, err
	}

	return &Macro{Body: body, Params: v[0]}, nil
}

// MACROEXPAND-1 evaluates its argument to get a form and expands it once.
// A form that is not a macro call is returned unchanged.
func macroexpand1(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	form, err := t.Eval(e, v[0])
	if err != nil {
		return nil, err
	}

	if !pair.Is(form) {
		return form, nil
	}

	head := pair.Car(form)
	if sym.Is(head) {
		ref := e.Lookup(sym.To(head).String())
		if ref == nil {
			return form, nil
		}

		head = ref.Get()
	}

	m, ok := head.(*Macro)
	if !ok {
		return form, nil
	}

	return t.Expand(e, m, pair.Cdr(form))
}

func not(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 0, 1)
	if err != nil {
		return nil, err
	}

	if len(v) == 0 {
		return sym.True, nil
	}

	c, err := t.Eval(e, v[0])
	if err != nil {
		return nil, err
	}

	return create.Bool(!truth.Value(c)), nil
}

func or(t *T, e scope.I, args cell.I) (cell.I, error) {
	for ; pair.Is(args); args = pair.Cdr(args) {
		v, err := t.Eval(e, pair.Car(args))
		if err != nil {
			return nil, err
		}

		if truth.Value(v) {
			return v, nil
		}
	}

	return pair.Null, nil
}

func printValue(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	c, err := t.Eval(e, v[0])
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(t.out, literal.String(c))

	return c, nil
}

func quasiquote(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return t.Quasi(e, v[0])
}

func quote(_ *T, _ scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 1, 1)
	if err != nil {
		return nil, err
	}

	return v[0], nil
}

// SETQ changes the nearest existing binding. It never creates one.
func setq(t *T, e scope.I, args cell.I) (cell.I, error) {
	v, err := validate.Fixed(args, 2, 2)
	if err != nil {
		return nil, err
	}

	k, err := name(v[0])
	if err != nil {
		return nil, err
	}

	ref := e.Lookup(k)
	if ref == nil {
		return nil, fault.New(fault.ErrUnbound, "%s", k)
	}

	value, err := t.Eval(e, v[1])
	if err != nil {
		return nil, err
	}

	ref.Set(value)

	return value, nil
}

// Helpers.

// f wraps a function whose arguments are evaluated before it is called.
func f(label string, do func(args cell.I) (cell.I, error)) *Native {
	return &Native{
		Fn: func(t *T, e scope.I, args cell.I) (cell.I, error) {
			values, err := t.List(e, args)
			if err != nil {
				return nil, err
			}

			return do(values)
		},
		Label: label,
	}
}

func binding(c cell.I) ([]cell.I, error) {
	if pair.Is(c) {
		kv, err := validate.Fixed(c, 2, 2)
		if err == nil && sym.Is(kv[0]) {
			return kv, nil
		}
	}

	return nil, fault.New(fault.ErrType, "binding %s is not a symbol or (symbol value)", literal.String(c))
}

func name(c cell.I) (string, error) {
	if !sym.Is(c) {
		return "", fault.New(fault.ErrType, "%s is not a symbol", literal.String(c))
	}

	return sym.To(c).String(), nil
}

func params(c cell.I) error {
	if !list.Is(c) {
		return fault.New(fault.ErrType, "parameter list %s is not a list", literal.String(c))
	}

	for ; pair.Is(c); c = pair.Cdr(c) {
		if !sym.Is(pair.Car(c)) {
			return fault.New(fault.ErrType, "parameter %s is not a symbol", literal.String(pair.Car(c)))
		}
	}

	return nil
}
