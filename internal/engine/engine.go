// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed Lisp code.
package engine

import (
	"fmt"
	"os"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/common/type/list"
	"github.com/lispcore/lisp/internal/common/type/str"
	"github.com/lispcore/lisp/internal/engine/boot"
	"github.com/lispcore/lisp/internal/engine/task"
	"github.com/lispcore/lisp/internal/reader"
)

// Option configures an engine.
type Option = task.Option

//nolint:gochecknoglobals
var (
	// MaxDepth bounds how deeply evaluation may nest.
	MaxDepth = task.Limit

	// Output sets where PRINT and LISTVARS write.
	Output = task.Output

	// Trace logs every application.
	Trace = task.Trace
)

// T (engine) is a facade in front of the machinery for evaluating Lisp code.
type T struct {
	task *task.T
}

// New creates a new engine and evaluates the prelude.
func New(opts ...Option) (*T, error) {
	e := &T{task: task.New(opts...)}

	err := e.Run("boot.lisp", boot.Script(), nil)
	if err != nil {
		return nil, fmt.Errorf("boot: %w", err)
	}

	return e, nil
}

// Arguments binds *ARGS* to a list of the strings in args.
func (e *T) Arguments(args []string) {
	l := make([]cell.I, 0, len(args))
	for _, s := range args {
		l = append(l, str.New(s))
	}

	e.task.Global().Define("*ARGS*", list.New(l...))
}

// Evaluate evaluates c in the global environment.
//
// A GO that escapes every TAGBODY is reported as fault.ErrUnmatchedLabel.
// A panic raised while evaluating is reported as fault.ErrType.
func (e *T) Evaluate(c cell.I) (v cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		v = nil
		err = fault.New(fault.ErrType, "%v", r)
	}()

	v, err = e.task.Eval(e.task.Global(), c)

	return v, task.Unmatched(err)
}

// Global returns the global environment.
func (e *T) Global() scope.I {
	return e.task.Global()
}

// Run evaluates every form in text, passing each value to emit, if not nil.
// It stops at the first error.
func (e *T) Run(name, text string, emit func(cell.I)) error {
	r := reader.New(name)
	r.Scan(text)

	return r.Parser().Parse(func(c cell.I) error {
		v, err := e.Evaluate(c)
		if err != nil {
			return err
		}

		if emit != nil {
			emit(v)
		}

		return nil
	})
}

// Source evaluates every form in the file at path.
func (e *T) Source(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return e.Run(path, string(b), nil)
}
