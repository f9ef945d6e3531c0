// Released under an MIT license. See LICENSE.

// Package reader pairs a lexer with a parser.
package reader

import (
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/reader/lexer"
	"github.com/lispcore/lisp/internal/reader/parser"
)

// T (reader) encapsulates the lexer and parser.
type T struct {
	p *parser.T
	s *lexer.T
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	s := lexer.New(name)

	return &T{
		p: parser.New(s.Token),
		s: s,
	}
}

// Parser returns the reader's internal parser.T.
func (r *reader) Parser() *parser.T {
	return r.p
}

// Read returns the next complete form from the text scanned so far.
func (r *reader) Read() (cell.I, error) {
	return r.p.Read()
}

// Scan queues text to be read.
func (r *reader) Scan(text string) {
	r.s.Scan(text)
}

// Depth returns the number of lists left open at the end of text.
// Text ending inside a string counts as one more level.
// Negative values indicate unmatched close parentheses.
func Depth(text string) int {
	depth := 0
	comment := false
	escaped := false
	quoted := false

	for _, r := range text {
		switch {
		case comment:
			comment = r != '\n'
		case escaped:
			escaped = false
		case quoted:
			switch r {
			case '\\':
				escaped = true
			case '"':
				quoted = false
			}
		case r == '"':
			quoted = true
		case r == ';':
			comment = true
		case r == '(':
			depth++
		case r == ')':
			depth--
		}
	}

	if quoted {
		depth++
	}

	return depth
}
