// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for Lisp source text.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"

	"github.com/lispcore/lisp/internal/common/struct/loc"
	"github.com/lispcore/lisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	runes int      // Runes scanned on the current line.
	state action   // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		runes: 1,
	}

	l.state = skipWhitespace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// The end of a buffer ends any symbol or number being scanned but a string
// left open at the end of a buffer is an error.
func (l *T) Token() *token.T {
	for {
		l.gather()
		if len(l.bytes) == 0 {
			return nil
		}

		select {
		case t := <-l.tokens:
			return t
		default:
			state := l.state(l)
			if state != nil {
				l.state = state
			} else {
				l.state = skipWhitespace
				close(l.tokens)
			}
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source

	l.tokens <- token.New(c, v, &source)
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
	l.tokens = make(chan *token.T, 16)
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func afterComma(l *T) action {
	r, w := l.peek()

	if r == '@' {
		l.accept(r, w)
		l.emit(token.Splice, l.Text())
	} else {
		l.emit(',', l.Text())
	}

	return skipWhitespace
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		if r == eof || delimiter(r) {
			s := l.Text()
			if numeric(s) {
				l.emit(token.Number, s)
			} else {
				l.emit(token.Symbol, s)
			}

			if r == eof {
				return nil
			}

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			l.emit(token.Error, "unterminated string")

			return nil
		case '"':
			text := l.Text()

			s, err := adapted.ActualBytes(text[1 : len(text)-1])
			if err != nil {
				l.emit(token.Error, err.Error())
			} else {
				l.emit(token.String, s)
			}

			return skipWhitespace
		case '\\':
			if l.next() == eof {
				l.emit(token.Error, "unterminated string")

				return nil
			}
		}
	}
}

func skipComment(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n', '\r', '\t', ' ':
			l.accept(r, w)
			l.skip()

			continue
		}

		l.accept(r, w)

		switch r {
		case '(', ')', '\'', '`':
			l.emit(r, l.Text())

			return skipWhitespace
		case ',':
			return afterComma
		case '"':
			return scanString
		case ';':
			return skipComment
		default:
			return scanAtom
		}
	}
}

// Helper functions.

func delimiter(r token.Class) bool {
	return strings.ContainsRune("\n\r\t \"'(),;`", rune(r))
}

// A number starts with a digit, or a sign or a dot followed by a digit, and
// must parse completely as a 64-bit float. The non-finite values are written
// as they are rendered: +Inf, -Inf and NaN.
func numeric(s string) bool {
	if s == "NaN" {
		return true
	}

	i := 0
	signed := i < len(s) && (s[i] == '+' || s[i] == '-')

	if signed {
		i++
	}

	if i < len(s) && s[i] == '.' {
		i++
	}

	if i >= len(s) || s[i] < '0' || s[i] > '9' {
		if !signed || !strings.HasPrefix(strings.ToLower(s[i:]), "inf") {
			return false
		}
	}

	_, err := strconv.ParseFloat(s, 64)

	return err == nil
}
