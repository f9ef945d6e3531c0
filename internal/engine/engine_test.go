// Released under an MIT license. See LICENSE.

package engine

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
	"github.com/lispcore/lisp/internal/engine/task"
)

func setup(t *testing.T, opts ...Option) *T {
	t.Helper()

	e, err := New(opts...)
	require.NoError(t, err)

	return e
}

func last(t *testing.T, e *T, src string) (string, error) {
	t.Helper()

	var v cell.I

	err := e.Run(t.Name(), src, func(c cell.I) {
		v = c
	})
	if err != nil {
		return "", err
	}

	return literal.String(v), nil
}

func TestPrelude(t *testing.T) {
	e := setup(t)

	for _, tc := range []struct {
		src      string
		expected string
	}{
		{"(CADR '(1 2 3))", "2"},
		{"(CDDR '(1 2 3))", "(3)"},
		{"(CAAR '((1) 2))", "1"},
		{"(DEFINE I 0) (WHILE (< I 10) (INCF I)) I", "10"},
		{"(DEFINE J 10) (DECF J 3) J", "7"},
		{"(WHEN (= 1 1) 'A 'B)", "B"},
		{"(WHEN NIL 'A)", "NIL"},
		{"(UNLESS NIL 'A)", "A"},
		{"(UNLESS TRUE 'A)", "NIL"},
	} {
		actual, err := last(t, e, tc.src)
		require.NoError(t, err, tc.src)
		assert.Equal(t, tc.expected, actual, tc.src)
	}
}

func TestWhileBodyWithLists(t *testing.T) {
	e := setup(t)

	actual, err := last(t, e, `
		(DEFINE I 0)
		(DEFINE ACC NIL)
		(WHILE (< I 3)
		  (SETQ ACC (CONS I ACC))
		  (INCF I))
		ACC`)
	require.NoError(t, err)
	assert.Equal(t, "(2 1 0)", actual)
}

func TestNestedWhile(t *testing.T) {
	e := setup(t)

	actual, err := last(t, e, `
		(DEFINE N 0)
		(DEFINE I 0)
		(WHILE (< I 3)
		  (DEFINE J 0)
		  (WHILE (< J 4) (INCF N) (INCF J))
		  (INCF I))
		N`)
	require.NoError(t, err)
	assert.Equal(t, "12", actual)
}

func TestNilEvaluatesToItself(t *testing.T) {
	e := setup(t)

	v, err := e.Evaluate(sym.Nil)
	require.NoError(t, err)
	assert.Equal(t, sym.Nil, v)

	v, err = e.Evaluate(sym.True)
	require.NoError(t, err)
	assert.Equal(t, sym.True, v)
}

func TestUnmatchedLabel(t *testing.T) {
	e := setup(t)

	_, err := last(t, e, "(GO NOWHERE)")
	assert.True(t, errors.Is(err, fault.ErrUnmatchedLabel), "%v", err)

	actual, err := last(t, e, "(+ 1 1)")
	require.NoError(t, err)
	assert.Equal(t, "2", actual, "evaluation continues after an unmatched label")
}

func TestPanicIsRecovered(t *testing.T) {
	e := setup(t)

	e.Global().Define("BOOM", &task.Native{
		Fn: func(*task.T, scope.I, cell.I) (cell.I, error) {
			panic("boom")
		},
		Label: "BOOM",
	})

	_, err := last(t, e, "(BOOM)")
	assert.True(t, errors.Is(err, fault.ErrType), "%v", err)
	assert.Contains(t, err.Error(), "boom")

	actual, err := last(t, e, "'(STILL WORKS)")
	require.NoError(t, err)
	assert.Equal(t, "(STILL WORKS)", actual)
}

func TestMalformedForm(t *testing.T) {
	e := setup(t)

	_, err := e.Evaluate(pair.Cons(sym.New("QUOTE"), sym.New("X")))
	assert.True(t, errors.Is(err, fault.ErrArity), "%v", err)
}

func TestSyntaxErrorStopsRun(t *testing.T) {
	e := setup(t)

	_, err := last(t, e, "(DEFINE A 1) (DEFINE B")
	assert.True(t, errors.Is(err, fault.ErrSyntax), "%v", err)

	actual, err := last(t, e, "A")
	require.NoError(t, err)
	assert.Equal(t, "1", actual)
}

func TestArguments(t *testing.T) {
	e := setup(t)

	e.Arguments([]string{"one", "two"})

	actual, err := last(t, e, "*ARGS*")
	require.NoError(t, err)
	assert.Equal(t, `("one" "two")`, actual)
}

func TestSource(t *testing.T) {
	var out bytes.Buffer

	e := setup(t, Output(&out))

	path := filepath.Join(t.TempDir(), "script.lisp")
	require.NoError(t, os.WriteFile(path, []byte(`
		; A small script.
		(DEFUN SQUARE (X) (* X X))
		(PRINT (SQUARE 12))
	`), 0o600))

	require.NoError(t, e.Source(path))
	assert.Equal(t, "144\n", out.String())

	err := e.Source(filepath.Join(t.TempDir(), "missing.lisp"))
	assert.Error(t, err)
}

func TestMaxDepth(t *testing.T) {
	e := setup(t, MaxDepth(500))

	_, err := last(t, e, "(DEFUN F (N) (+ 1 (F N))) (F 1)")
	assert.True(t, errors.Is(err, fault.ErrDepth), "%v", err)
}
