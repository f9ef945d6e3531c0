// Released under an MIT license. See LICENSE.

// Package ui provides a read-eval-print loop for the Lisp engine.
package ui

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lispcore/lisp/internal/common/fault"
	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/common/interface/scope"
	"github.com/lispcore/lisp/internal/reader"
	"github.com/lispcore/lisp/internal/system/config"
	"github.com/lispcore/lisp/internal/system/history"
	"github.com/peterh/liner"
)

// Recall is the number of history entries loaded at the start of a session.
const Recall = 1000

// Evaluator is the interface for things that evaluate parsed forms.
type Evaluator interface {
	Evaluate(c cell.I) (cell.I, error)
}

// Engine is an Evaluator that exposes its global environment.
type Engine interface {
	Evaluator
	Global() scope.I
}

// Loop reads lines by calling prompt until it returns io.EOF.
// Lines are accumulated until every list is closed and then each form is
// evaluated and its value written to out. Errors are written to errs.
// If record is not nil, it is passed the text of each complete entry.
func Loop(
	e Evaluator,
	prompt func(string) (string, error),
	c *config.T,
	record func(string),
	out, errs io.Writer,
) error {
	pending := ""

	for {
		p := c.Prompt
		if pending != "" {
			p = c.Continuation
		}

		line, err := prompt(p)
		if errors.Is(err, liner.ErrPromptAborted) {
			pending = ""

			continue
		} else if errors.Is(err, io.EOF) {
			if strings.TrimSpace(pending) != "" {
				evaluate(e, pending, out, errs)
			}

			return nil
		} else if err != nil {
			return err
		}

		pending += line + "\n"
		if reader.Depth(pending) > 0 {
			continue
		}

		text := pending
		pending = ""

		if strings.TrimSpace(text) == "" {
			continue
		}

		if record != nil {
			record(strings.TrimRight(text, "\n"))
		}

		evaluate(e, text, out, errs)
	}
}

// Run starts an interactive session with line editing and history.
func Run(e Engine, c *config.T, out, errs io.Writer) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return err
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(func() []string {
		return e.Global().Local().Keys()
	}))

	var h *history.T

	if c.History != "" {
		h, err = history.Open(c.History)
		if err != nil {
			fmt.Fprintf(errs, "history: %v\n", err)
		} else {
			defer h.Close()

			entries, _ := h.Recent(Recall)
			for _, entry := range entries {
				cli.AppendHistory(entry.Text)
			}
		}
	}

	record := func(text string) {
		cli.AppendHistory(text)

		if h != nil {
			_, err := h.Add(text)
			if err != nil {
				fmt.Fprintf(errs, "history: %v\n", err)
			}
		}
	}

	prompt := func(p string) (string, error) {
		err := uncooked.ApplyMode()
		if err != nil {
			return "", err
		}

		line, err := cli.Prompt(p)

		merr := cooked.ApplyMode()
		if err == nil {
			err = merr
		}

		return line, err
	}

	err = Loop(e, prompt, c, record, out, errs)

	fmt.Fprintln(out)

	return err
}

func completer(names func() []string) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		head := line[:pos]
		tail := line[pos:]

		start := strings.LastIndexAny(head, " \t\n\"'(),;`@") + 1
		prefix := strings.ToUpper(head[start:])

		completions := []string{}

		if prefix != "" {
			for _, name := range names() {
				if strings.HasPrefix(name, prefix) {
					completions = append(completions, name)
				}
			}

			sort.Strings(completions)
		}

		return head[:start], completions, tail
	}
}

func evaluate(e Evaluator, text string, out, errs io.Writer) {
	r := reader.New("stdin")
	r.Scan(text)

	for {
		c, err := r.Read()
		if errors.Is(err, fault.ErrEndOfInput) {
			return
		} else if err != nil {
			report(errs, err)

			return
		}

		v, err := e.Evaluate(c)
		if err != nil {
			report(errs, err)

			continue
		}

		fmt.Fprintln(out, literal.String(v))
	}
}

func report(w io.Writer, err error) {
	switch fault.Kind(err) {
	case fault.ErrUnmatchedLabel:
		fmt.Fprintln(w, err)
	case nil:
		fmt.Fprintf(w, "error: internal: %v\n", err)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
