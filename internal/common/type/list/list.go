// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells
// and terminated by NIL.
package list

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/type/pair"
	"github.com/lispcore/lisp/internal/common/type/sym"
)

// Copy returns a fresh copy of the spine of list. Elements are shared.
func Copy(list cell.I) cell.I {
	return New(Slice(list)...)
}

// Is returns true if c is a pair or NIL.
func Is(c cell.I) bool {
	return pair.Is(c) || sym.IsNil(c)
}

// Join creates a new list with every element from every list in lists.
// The last list is shared rather than copied.
func Join(lists ...cell.I) cell.I {
	if len(lists) == 0 {
		return pair.Null
	}

	last := lists[len(lists)-1]

	var elements []cell.I
	for _, l := range lists[:len(lists)-1] {
		elements = append(elements, Slice(l)...)
	}

	if len(elements) == 0 {
		return last
	}

	start := New(elements...)
	pair.SetCdr(Last(start), last)

	return start
}

// Last returns the last pair in list, or Null if list is empty.
func Last(list cell.I) cell.I {
	end := pair.Null

	for ; pair.Is(list); list = pair.Cdr(list) {
		end = list
	}

	return end
}

// Length returns the number of elements in list.
// An improper tail is not counted. The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for ; pair.Is(list); list = pair.Cdr(list) {
		length++
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	if len(elements) == 0 {
		return pair.Null
	}

	start := pair.Cons(elements[0], pair.Null)
	end := start

	for _, e := range elements[1:] {
		p := pair.Cons(e, pair.Null)
		pair.SetCdr(end, p)
		end = p
	}

	return start
}

// Reverse returns a new list with the elements of list in reverse order.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for ; pair.Is(list); list = pair.Cdr(list) {
		reversed = pair.Cons(pair.Car(list), reversed)
	}

	return reversed
}

// Slice returns the elements of list as a Go slice.
// The list must be non-circular.
func Slice(list cell.I) []cell.I {
	s := make([]cell.I, 0, Length(list))

	for ; pair.Is(list); list = pair.Cdr(list) {
		s = append(s, pair.Car(list))
	}

	return s
}

// Tail returns the sublist of list starting at element index.
// Negative values of index count backwards from the end of list.
// If index is out of range, dflt is returned.
// The list must be non-circular.
func Tail(list cell.I, index int64, dflt cell.I) cell.I {
	length := Length(list)

	if index < 0 {
		index = length + index
	}

	if index < 0 || index >= length {
		return dflt
	}

	for index > 0 {
		list = pair.Cdr(list)

		index--
	}

	return list
}
