// Released under an MIT license. See LICENSE.

// Package sym provides the symbol cell type.
package sym

import (
	"sync"

	"github.com/lispcore/lisp/internal/common"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/truth"
)

const name = "symbol"

// T (sym) wraps Go's string type. Symbols are interned.
type T string

type sym = T

//nolint:gochecknoglobals
var (
	// Nil is the empty list. It is also used to mark the end of a list
	// and is the only false value.
	Nil cell.I

	// True is the canonical true value.
	True cell.I
)

// New creates (or finds) the sym named v. No case folding is done here;
// the reader folds symbol names to upper case.
func New(v string) cell.I {
	return symnew(v)
}

// Bool returns false for NIL and true for every other sym.
func (s *sym) Bool() bool {
	return cell.I(s) != Nil
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	return string(*s)
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

//nolint:gochecknoglobals
var (
	cache  = map[string]*sym{}
	cachel = &sync.RWMutex{}
)

func init() { //nolint:gochecknoinits
	Nil = New("NIL")
	True = New("TRUE")
}

func symnew(v string) *sym {
	cachel.RLock()
	p, ok := cache[v]
	cachel.RUnlock()

	if ok {
		return p
	}

	cachel.Lock()
	defer cachel.Unlock()

	if p, ok = cache[v]; ok {
		return p
	}

	s := sym(v)
	p = &s
	cache[v] = p

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)

	// The sym type has a truth value.
	_ = truth.I(&t)
}
