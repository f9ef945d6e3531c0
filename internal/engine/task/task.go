// Released under an MIT license. See LICENSE.

// Package task provides the machinery used to evaluate Lisp forms.
package task

import (
	"io"
	"log"
	"os"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/common/type/env"
	"github.com/lispcore/lisp/internal/common/type/list"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
)

// DefaultLimit is the default maximum evaluation depth.
const DefaultLimit = 10000

// Rest is the parameter marker that collects remaining arguments.
const Rest = "&REST"

// T (task) evaluates forms. It holds no current environment: every
// operation is passed the environment it works in.
type T struct {
	depth  int
	global scope.I
	limit  int
	out    io.Writer
	trace  *log.Logger
}

// Option configures a task.
type Option func(*T)

// Limit sets the maximum evaluation depth.
func Limit(n int) Option {
	return func(t *T) {
		if n > 0 {
			t.limit = n
		}
	}
}

// Output sets where PRINT and LISTVARS write.
func Output(w io.Writer) Option {
	return func(t *T) {
		t.out = w
	}
}

// Trace logs every application to l.
func Trace(l *log.Logger) Option {
	return func(t *T) {
		t.trace = l
	}
}

// New creates a new task with a fresh global environment holding the
// special forms and built-in procedures.
func New(opts ...Option) *T {
	t := &T{
		global: env.New(nil),
		limit:  DefaultLimit,
		out:    os.Stdout,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.global.Define("NIL", sym.Nil)
	t.global.Define("TRUE", sym.True)

	Actions(t.global)

	return t
}

// Global returns the task's global environment.
func (t *T) Global() scope.I {
	return t.global
}

// Eval evaluates the form c in the environment e.
func (t *T) Eval(e scope.I, c cell.I) (cell.I, error) {
	t.depth++
	defer func() { t.depth-- }()

	if t.depth > t.limit {
		return nil, fault.New(fault.ErrDepth, "evaluation nested more than %d deep", t.limit)
	}

	switch {
	case sym.Is(c):
		ref := e.Lookup(sym.To(c).String())
		if ref == nil {
			return nil, fault.New(fault.ErrUnbound, "%s", literal.String(c))
		}

		return ref.Get(), nil

	case pair.Is(c):
		return t.apply(e, c)
	}

	return c, nil
}

// Begin evaluates each form in body in order and returns the last value.
// An empty body yields NIL.
func (t *T) Begin(e scope.I, body cell.I) (cell.I, error) {
	var (
		err    error
		result = pair.Null
	)

	for ; pair.Is(body); body = pair.Cdr(body) {
		result, err = t.Eval(e, pair.Car(body))
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// Call applies the closure c to the already evaluated arguments in args.
func (t *T) Call(c *Closure, args cell.I) (cell.I, error) {
	frame := env.New(c.Scope)

	err := bind(frame, c.Params, args)
	if err != nil {
		return nil, err
	}

	return t.Begin(frame, c.Body)
}

// Expand performs one expansion of the macro m called with the unevaluated
// arguments in args. The parameter frame encloses the caller's environment e.
func (t *T) Expand(e scope.I, m *Macro, args cell.I) (cell.I, error) {
	frame := env.New(e)

	err := bind(frame, m.Params, args)
	if err != nil {
		return nil, err
	}

	return t.Begin(frame, m.Body)
}

// List evaluates each element of args and returns a new list of the values.
func (t *T) List(e scope.I, args cell.I) (cell.I, error) {
	values := []cell.I{}

	for ; pair.Is(args); args = pair.Cdr(args) {
		v, err := t.Eval(e, pair.Car(args))
		if err != nil {
			return nil, err
		}

		values = append(values, v)
	}

	return list.New(values...), nil
}

func (t *T) apply(e scope.I, form cell.I) (cell.I, error) {
	head, err := t.Eval(e, pair.Car(form))
	if err != nil {
		return nil, err
	}

	args := pair.Cdr(form)

	if t.trace != nil {
		t.trace.Printf("%*s%s", t.depth-1, "", literal.String(form))
	}

	switch h := head.(type) {
	case *Native:
		return h.Fn(t, e, args)

	case *Closure:
		values, err := t.List(e, args)
		if err != nil {
			return nil, err
		}

		return t.Call(h, values)

	case *Macro:
		expansion, err := t.Expand(e, h, args)
		if err != nil {
			return nil, err
		}

		return t.Eval(e, expansion)
	}

	return nil, fault.New(fault.ErrNotCallable, "%s is not callable", literal.String(head))
}

// bind binds each parameter in params to the corresponding element of args
// in the frame e. A parameter following &REST receives the remaining
// arguments as a list.
func bind(e scope.I, params, args cell.I) error {
	n := 0

	for ; pair.Is(params); params = pair.Cdr(params) {
		p := pair.Car(params)
		if !sym.Is(p) {
			return fault.New(fault.ErrType, "parameter %s is not a symbol", literal.String(p))
		}

		k := sym.To(p).String()
		if k == Rest {
			rest := pair.Cdr(params)
			if !pair.Is(rest) || !sym.Is(pair.Car(rest)) || pair.Cdr(rest) != pair.Null {
				return fault.New(fault.ErrSyntax, "%s must be followed by exactly one symbol", Rest)
			}

			e.Define(sym.To(pair.Car(rest)).String(), list.Copy(args))

			return nil
		}

		if !pair.Is(args) {
			return fault.New(fault.ErrArity, "too few arguments, passed %d", n)
		}

		e.Define(k, pair.Car(args))

		args = pair.Cdr(args)
		n++
	}

	if pair.Is(args) {
		return fault.New(fault.ErrArity, "too many arguments, expected %d", n)
	}

	return nil
}
