// Released under an MIT license. See LICENSE.

// Package commands provides the built-in procedures whose arguments are
// evaluated before they are called.
package commands

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
)

// Functions returns the built-in procedures by name.
func Functions() map[string]func(cell.I) (cell.I, error) {
	return map[string]func(cell.I) (cell.I, error){
		"*":       mul,
		"+":       add,
		"-":       sub,
		"/":       div,
		"<":       lt,
		"<=":      le,
		"=":       eq,
		">":       gt,
		">=":      ge,
		"APPEND":  appendLists,
		"CAR":     car,
		"CDR":     cdr,
		"CONCAT":  concat,
		"CONS":    cons,
		"CONSP":   isCons,
		"LENGTH":  length,
		"LIST":    makeList,
		"NTH":     nth,
		"NULL":    isNull,
		"NUMBERP": isNumber,
		"REVERSE": reverse,
		"STRING":  toString,
		"STRINGP": isString,
		"SYMBOLP": isSymbol,
	}
}
