// Released under an MIT license. See LICENSE.

package task

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/type/num"
	"github.com/lispcore/lisp/internal/common/type/str"
	"github.com/lispcore/lisp/internal/common/type/sym"
	"github.com/lispcore/lisp/internal/reader"
)

// run evaluates every form in src and returns the last value.
func run(t *testing.T, k *T, src string) (cell.I, error) {
	t.Helper()

	r := reader.New(t.Name())
	r.Scan(src)

	var last cell.I

	for {
		c, err := r.Read()
		if errors.Is(err, fault.ErrEndOfInput) {
			return last, nil
		}

		require.NoError(t, err)

		last, err = k.Eval(k.Global(), c)
		if err != nil {
			return nil, err
		}
	}
}

func rendered(t *testing.T, k *T, src string) string {
	t.Helper()

	v, err := run(t, k, src)
	require.NoError(t, err, src)

	return literal.String(v)
}

func TestSelfEvaluating(t *testing.T) {
	k := New()

	n := num.Float(4.5)
	v, err := k.Eval(k.Global(), n)
	require.NoError(t, err)
	assert.Same(t, n, v)

	s := str.New("hi")
	v, err = k.Eval(k.Global(), s)
	require.NoError(t, err)
	assert.Same(t, s, v)

	v, err = k.Eval(k.Global(), sym.Nil)
	require.NoError(t, err)
	assert.Equal(t, sym.Nil, v)

	c := &Closure{}
	v, err = k.Eval(k.Global(), c)
	require.NoError(t, err)
	assert.Same(t, c, v)
}

func TestQuoteDoesNotEvaluate(t *testing.T) {
	k := New()

	assert.Equal(t, "(+ 1 (SYMBOL-THAT-WOULD-ERROR))",
		rendered(t, k, "(QUOTE (+ 1 (SYMBOL-THAT-WOULD-ERROR)))"))
	assert.Equal(t, "(A B)", rendered(t, k, "'(a b)"))
}

func TestLetShadows(t *testing.T) {
	k := New()

	assert.Equal(t, "10", rendered(t, k, "(DEFINE X 5) (LET ((X 10)) X)"))
	assert.Equal(t, "5", rendered(t, k, "X"))
}

func TestLetBindsBareSymbolToNil(t *testing.T) {
	k := New()

	assert.Equal(t, "(NIL 1)", rendered(t, k, "(LET (A (B 1)) (LIST A B))"))
}

func TestLetValuesUseEnclosingEnvironment(t *testing.T) {
	k := New()

	assert.Equal(t, "1", rendered(t, k, "(DEFINE A 1) (LET ((A 2) (B A)) B)"))
}

func TestSetq(t *testing.T) {
	k := New()

	assert.Equal(t, "99", rendered(t, k, "(DEFINE X 5) (SETQ X 99) X"))

	_, err := run(t, k, "(SETQ NEVER-BOUND 1)")
	assert.True(t, errors.Is(err, fault.ErrUnbound), "%v", err)

	_, err = run(t, k, "NEVER-BOUND")
	assert.True(t, errors.Is(err, fault.ErrUnbound), "setq must not create a binding")
}

func TestSetqChangesNearestBinding(t *testing.T) {
	k := New()

	assert.Equal(t, "(2 2)", rendered(t, k, `
		(DEFINE X 1)
		(LET ((X 0)) (SETQ X 2) (LIST X (EVAL 'X)))`))
	assert.Equal(t, "1", rendered(t, k, "X"))
}

func TestDefineIsGlobal(t *testing.T) {
	k := New()

	assert.Equal(t, "3", rendered(t, k, "(LET ((Y 1)) (DEFINE Z 3)) Z"))
	assert.Equal(t, "7", rendered(t, k, "(DEFUN F () (DEFINE INNER 7)) (F) INNER"))
}

func TestClosureCapturesDefiningEnvironment(t *testing.T) {
	k := New()

	assert.Equal(t, "3", rendered(t, k, `
		(DEFINE MAKE-COUNTER (LAMBDA ()
		  (LET ((N 0)) (LAMBDA () (SETQ N (+ N 1))))))
		(DEFINE C (MAKE-COUNTER))
		(C) (C) (C)`))

	_, err := run(t, k, "N")
	assert.True(t, errors.Is(err, fault.ErrUnbound), "closure frame leaked")
}

func TestSharedFrameMutation(t *testing.T) {
	k := New()

	assert.Equal(t, "(5 5)", rendered(t, k, `
		(DEFINE PAIR (LET ((V 0))
		  (CONS (LAMBDA (X) (SETQ V X)) (LAMBDA () V))))
		((CAR PAIR) 5)
		(LIST ((CDR PAIR)) ((CDR PAIR)))`))
}

func TestRest(t *testing.T) {
	k := New()

	assert.Equal(t, "(1 (2 3))", rendered(t, k, "((LAMBDA (A &REST B) (LIST A B)) 1 2 (+ 1 2))"))
	assert.Equal(t, "(1 NIL)", rendered(t, k, "((LAMBDA (A &REST B) (LIST A B)) 1)"))
}

func TestArity(t *testing.T) {
	k := New()

	_, err := run(t, k, "(DEFUN TWO (A B) A)")
	require.NoError(t, err)

	for _, src := range []string{"(TWO 1 2 3)", "(TWO 1)", "((LAMBDA (A &REST B) A))"} {
		_, err = run(t, k, src)
		assert.True(t, errors.Is(err, fault.ErrArity), "%s: %v", src, err)
	}
}

func TestEnvironmentRestoredAfterError(t *testing.T) {
	k := New()

	_, err := run(t, k, "(DEFINE V 'OUTER) (DEFUN BAD (V) (CAR 5))")
	require.NoError(t, err)

	_, err = run(t, k, "(BAD 'INNER)")
	assert.True(t, errors.Is(err, fault.ErrType), "%v", err)

	assert.Equal(t, "OUTER", rendered(t, k, "V"))

	_, err = run(t, k, "(LET ((V 'LET)) (UNBOUND-FN))")
	assert.True(t, errors.Is(err, fault.ErrUnbound), "%v", err)

	assert.Equal(t, "OUTER", rendered(t, k, "V"))
}

func TestNotCallable(t *testing.T) {
	k := New()

	for _, src := range []string{"(1 2)", `("f")`, "('A)", "((LIST 1))"} {
		_, err := run(t, k, src)
		assert.True(t, errors.Is(err, fault.ErrNotCallable), "%s: %v", src, err)
	}
}

func TestIf(t *testing.T) {
	k := New()

	for src, expected := range map[string]string{
		"(IF TRUE 1 2)":   "1",
		"(IF NIL 1 2)":    "2",
		"(IF 0 1 2)":      "1",
		`(IF "" 1 2)`:     "1",
		"(IF NIL 1)":      "NIL",
		"(IF '() 1 2)":    "2",
		"(IF TRUE)":       "NIL",
		"(IF (< 1 2) 'Y)": "Y",
	} {
		assert.Equal(t, expected, rendered(t, k, src), src)
	}
}

func TestLogic(t *testing.T) {
	k := New()

	for src, expected := range map[string]string{
		"(AND)":               "TRUE",
		"(AND 1 2)":           "2",
		"(AND 1 NIL (CAR 5))": "NIL",
		"(OR)":                "NIL",
		"(OR NIL 2 (CAR 5))":  "2",
		"(NOT)":               "TRUE",
		"(NOT NIL)":           "TRUE",
		"(NOT 0)":             "NIL",
	} {
		assert.Equal(t, expected, rendered(t, k, src), src)
	}
}

func TestMacroResolvesAtCallSite(t *testing.T) {
	k := New()

	assert.Equal(t, "2", rendered(t, k, "(DEFINE Y 1) (DEFMACRO M () 'Y) (LET ((Y 2)) (M))"))
}

func TestMacroReceivesSyntax(t *testing.T) {
	k := New()

	assert.Equal(t, "(+ 1 2)", rendered(t, k, "(DEFMACRO Q (X) (LIST 'QUOTE X)) (Q (+ 1 2))"))
	assert.Equal(t, "3", rendered(t, k, "(DEFMACRO SWAP-ARGS (F A B) (LIST F B A)) (SWAP-ARGS - 1 4)"))
}

func TestMacroexpand1(t *testing.T) {
	k := New()

	_, err := run(t, k, "(DEFMACRO TWICE (X) `(BEGIN ,X ,X))")
	require.NoError(t, err)

	assert.Equal(t, "(BEGIN (F) (F))", rendered(t, k, "(MACROEXPAND-1 '(TWICE (F)))"))
	assert.Equal(t, "(CAR X)", rendered(t, k, "(MACROEXPAND-1 '(CAR X))"))
	assert.Equal(t, "5", rendered(t, k, "(MACROEXPAND-1 5)"))
}

func TestQuasiquote(t *testing.T) {
	k := New()

	_, err := run(t, k, "(DEFINE L '(2 3))")
	require.NoError(t, err)

	for src, expected := range map[string]string{
		"`(1 ,@L 4)":        "(1 2 3 4)",
		"`(1 ,L 4)":         "(1 (2 3) 4)",
		"`X":                "X",
		"`(A (B ,(CAR L)))": "(A (B 2))",
		"`(,@L)":            "(2 3)",
		"`(1 ,@'() 2)":      "(1 2)",
		"`(A . B)":          "(A . B)",
	} {
		assert.Equal(t, expected, rendered(t, k, src), src)
	}
}

func TestQuasiquoteDottedUnquote(t *testing.T) {
	k := New()

	_, err := run(t, k, "(DEFINE X 5) (DEFINE L '(2 3))")
	require.NoError(t, err)

	for src, expected := range map[string]string{
		"`(1 . ,X)":         "(1 . 5)",
		"`(1 . ,L)":         "(1 2 3)",
		"`(1 2 . ,'())":     "(1 2)",
		"`(,@L . ,X)":       "(2 3 . 5)",
		"`(1 UN-QUOTE X)":   "(1 . 5)",
		"`(1 UN-QUOTE X Y)": "(1 UN-QUOTE X Y)",
	} {
		assert.Equal(t, expected, rendered(t, k, src), src)
	}
}

func TestQuasiquoteSpliceMode(t *testing.T) {
	k := New()

	_, err := run(t, k, "(DEFINE L '(2 3))")
	require.NoError(t, err)

	// Once a level has spliced, later list elements are spliced too.
	assert.Equal(t, "(1 2 3 4 5 6)", rendered(t, k, "`(1 ,@L (4 5) 6)"))
	assert.Equal(t, "((4 5) 2 3)", rendered(t, k, "`((4 5) ,@L)"))
	assert.Equal(t, "(2 3 (4 5))", rendered(t, k, "`(,@L ((4 5)))"))
}

func TestQuasiquoteDoesNotShareSplicedList(t *testing.T) {
	k := New()

	assert.Equal(t, "(2 3)", rendered(t, k, "(DEFINE L '(2 3)) (DEFINE M `(1 ,@L)) L"))
}

func TestSpliceNonList(t *testing.T) {
	k := New()

	_, err := run(t, k, "`(1 ,@5)")
	assert.True(t, errors.Is(err, fault.ErrType), "%v", err)
}

func TestTagbodyLoop(t *testing.T) {
	k := New()

	assert.Equal(t, "5", rendered(t, k, `
		(DEFINE I 0)
		(TAGBODY TOP (SETQ I (+ I 1)) (IF (< I 5) (GO TOP)))
		I`))
}

func TestTagbodyForwardJump(t *testing.T) {
	k := New()

	assert.Equal(t, "(A C)", rendered(t, k, `
		(DEFINE TRAIL NIL)
		(TAGBODY
		  (SETQ TRAIL (CONS 'A TRAIL))
		  (GO SKIP)
		  (SETQ TRAIL (CONS 'B TRAIL))
		  SKIP
		  (SETQ TRAIL (CONS 'C TRAIL)))
		(REVERSE TRAIL)`))
}

func TestTagbodyValue(t *testing.T) {
	k := New()

	assert.Equal(t, "3", rendered(t, k, "(TAGBODY 1 2 3)"))
	assert.Equal(t, "NIL", rendered(t, k, "(TAGBODY)"))
	assert.Equal(t, "NIL", rendered(t, k, "(TAGBODY A B)"))
	assert.Equal(t, "1", rendered(t, k, "(TAGBODY 1 (GO END) 2 END)"))
}

func TestGoFromNestedCall(t *testing.T) {
	k := New()

	assert.Equal(t, "(OUT 1)", rendered(t, k, `
		(DEFINE N 0)
		(DEFUN ESCAPE () (SETQ N (+ N 1)) (GO OUT) (SETQ N 100))
		(TAGBODY (ESCAPE) (SETQ N 50) OUT)
		(LIST 'OUT N)`))
}

func TestNearestTagbodyWins(t *testing.T) {
	k := New()

	assert.Equal(t, "(INNER OUTER)", rendered(t, k, `
		(DEFINE TRAIL NIL)
		(TAGBODY
		  (TAGBODY (GO L) (SETQ TRAIL (CONS 'SKIPPED TRAIL)) L (SETQ TRAIL (CONS 'INNER TRAIL)))
		  (GO L)
		  (SETQ TRAIL (CONS 'SKIPPED TRAIL))
		  L
		  (SETQ TRAIL (CONS 'OUTER TRAIL)))
		(REVERSE TRAIL)`))
}

func TestInnerTagbodyPassesForeignLabels(t *testing.T) {
	k := New()

	assert.Equal(t, "DONE", rendered(t, k, `
		(DEFINE R NIL)
		(TAGBODY (TAGBODY (GO OUT) INNER) (SETQ R 'MISSED) OUT (SETQ R 'DONE))
		R`))
}

func TestUnmatchedLabel(t *testing.T) {
	k := New()

	_, err := run(t, k, "(DEFINE V 1) (LET ((V 2)) (GO NOWHERE))")

	var j *Jump

	require.True(t, errors.As(err, &j))
	assert.Equal(t, "NOWHERE", j.Label)

	err = Unmatched(err)
	assert.True(t, errors.Is(err, fault.ErrUnmatchedLabel))
	assert.Contains(t, err.Error(), "NOWHERE")

	assert.Equal(t, "1", rendered(t, k, "V"))
}

func TestDepthLimit(t *testing.T) {
	k := New(Limit(200))

	_, err := run(t, k, "(DEFUN LOOP (N) (LOOP (+ N 1))) (LOOP 0)")
	assert.True(t, errors.Is(err, fault.ErrDepth), "%v", err)

	assert.Equal(t, "3", rendered(t, k, "(+ 1 2)"), "depth is restored")
}

func TestEval(t *testing.T) {
	k := New()

	assert.Equal(t, "3", rendered(t, k, "(EVAL '(+ 1 2))"))
	assert.Equal(t, "6", rendered(t, k, "(EVAL '(+ 1 2) '(* 2 3))"))
	assert.Equal(t, "NIL", rendered(t, k, "(EVAL)"))
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer

	k := New(Output(&out))

	assert.Equal(t, `"a"`, rendered(t, k, `(PRINT "a")`))
	assert.Equal(t, "(1 2)", rendered(t, k, "(PRINT (LIST 1 2))"))
	assert.Equal(t, "\"a\"\n(1 2)\n", out.String())
}

func TestListvars(t *testing.T) {
	var out bytes.Buffer

	k := New(Output(&out))

	_, err := run(t, k, "(DEFINE ZEBRA 1) (DEFINE ZULU '(A)) (LISTVARS \"Z*\")")
	require.NoError(t, err)

	assert.Equal(t, "ZEBRA:           1\nZULU:            (A)\n", out.String())

	out.Reset()

	_, err = run(t, k, "(LISTVARS)")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "CONS:")
	assert.Contains(t, out.String(), "#<native CONS>")
}

func TestRenderProcedures(t *testing.T) {
	k := New()

	assert.Equal(t, "#<native CAR>", rendered(t, k, "CAR"))
	assert.Equal(t, "#<native QUOTE>", rendered(t, k, "QUOTE"))
	assert.Equal(t, "#<closure>", rendered(t, k, "(LAMBDA (X) X)"))
	assert.Equal(t, "#<macro>", rendered(t, k, "(MACRO (X) X)"))
}

func TestTrace(t *testing.T) {
	var out bytes.Buffer

	k := New(Trace(log.New(&out, "", 0)))

	assert.Equal(t, "3", rendered(t, k, "(+ 1 2)"))
	assert.Equal(t, "(+ 1 2)\n", out.String())
}
