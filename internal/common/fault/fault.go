// Released under an MIT license. See LICENSE.

// Package fault defines the kinds of error raised while reading and evaluating.
//
// Every error returned by the reader or the evaluator wraps exactly one of
// the sentinel kinds below so that callers can match with errors.Is.
package fault

import (
	"errors"
	"fmt"

	"github.com/lispcore/lisp/internal/common/struct/loc"
)

// Error kinds.
var (
	ErrArity          = errors.New("arity error")
	ErrDepth          = errors.New("stack overflow")
	ErrEndOfInput     = errors.New("end of input")
	ErrNotCallable    = errors.New("not callable")
	ErrSyntax         = errors.New("syntax error")
	ErrType           = errors.New("type error")
	ErrUnbound        = errors.New("unbound symbol")
	ErrUnmatchedLabel = errors.New("unmatched label")
)

// T (fault) is an error of a particular kind.
type T struct {
	Kind   error  // One of the sentinel kinds.
	Msg    string // Detail.
	Source *loc.T // Where the fault was detected, if known.
}

type fault = T

// New creates a fault of the given kind.
func New(kind error, format string, args ...interface{}) *fault {
	return &fault{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// At creates a fault of the given kind at the location source.
func At(source *loc.T, kind error, format string, args ...interface{}) *fault {
	f := New(kind, format, args...)

	if source != nil {
		l := *source
		f.Source = &l
	}

	return f
}

// Error returns the text of the fault f.
func (f *fault) Error() string {
	s := f.Kind.Error()
	if f.Msg != "" {
		s += ": " + f.Msg
	}

	if f.Source != nil {
		s = f.Source.String() + ": " + s
	}

	return s
}

// Unwrap returns the kind of the fault f.
func (f *fault) Unwrap() error {
	return f.Kind
}

// Kind returns the sentinel kind wrapped by err, or nil.
func Kind(err error) error {
	for _, k := range []error{
		ErrArity, ErrDepth, ErrEndOfInput, ErrNotCallable,
		ErrSyntax, ErrType, ErrUnbound, ErrUnmatchedLabel,
	} {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}
