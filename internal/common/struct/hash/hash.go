// Released under an MIT license. See LICENSE.

// Package hash provides the name to value mapping type.
package hash

import (
	"sort"

	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/reference"
	"github.com/lispcore/lisp/internal/common/struct/slot"
)

// T (hash) maps names to values.
type T struct {
	m map[string]reference.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Keys returns the names in the hash h in sorted order.
func (h *hash) Keys() []string {
	keys := make([]string, 0, len(h.m))
	for k := range h.m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Set associates the name k with the cell v in the hash h.
// An existing association is updated in place.
func (h *hash) Set(k string, v cell.I) {
	if r, ok := h.m[k]; ok {
		r.Set(v)

		return
	}

	h.m[k] = slot.New(v)
}
