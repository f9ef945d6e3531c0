// Released under an MIT license. See LICENSE.

// Package cell defines the interface for every expression variant.
package cell

// I (cell) is the basic unit of storage. Symbols, numbers, strings, pairs,
// native procedures, closures and macros are all cells.
type I interface {
	Equal(c I) bool
	Name() string
}
