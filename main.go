/*
Lisp is a small Lisp interpreter. It reads s-expressions, expands macros,
and evaluates forms in a chain of environments. For example:

    (defun square (x) (* x x))
    (square 12)
    (defmacro swap (a b) `(let ((tmp ,a)) (setq ,a ,b) (setq ,b tmp)))
    (tagbody top (print 1) (go end) (print 2) end)

Lisp is released under an MIT license.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lispcore/lisp/internal/common/interface/cell"
	"github.com/lispcore/lisp/internal/common/interface/literal"
	"github.com/lispcore/lisp/internal/engine"
	"github.com/lispcore/lisp/internal/system/config"
	"github.com/lispcore/lisp/internal/system/options"
	"github.com/lispcore/lisp/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := options.Parse(argv, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 2
	}

	var cfg *config.T

	if path := opts.Config(); path != "" {
		cfg, err = config.Read(path)
	} else {
		cfg, err = config.Load(config.Path())
	}

	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)

		return 2
	}

	engineOpts := []engine.Option{engine.Output(stdout)}
	if cfg.MaxDepth > 0 {
		engineOpts = append(engineOpts, engine.MaxDepth(cfg.MaxDepth))
	}

	if opts.Trace() || cfg.Trace {
		engineOpts = append(engineOpts, engine.Trace(log.New(stderr, "trace: ", 0)))
	}

	e, err := engine.New(engineOpts...)
	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	e.Arguments(opts.Args())

	for _, p := range cfg.Preload {
		err = e.Source(p)
		if err != nil {
			fmt.Fprintln(stderr, err)

			return 1
		}
	}

	switch {
	case opts.Script() != "":
		err = e.Source(opts.Script())
	case opts.Expression() != "":
		err = e.Run("-e", opts.Expression(), func(v cell.I) {
			fmt.Fprintln(stdout, literal.String(v))
		})
	case opts.Interactive():
		err = ui.Run(e, cfg, stdout, stderr)
	default:
		err = ui.Loop(e, lines(stdin), cfg, nil, stdout, stderr)
	}

	if err != nil {
		fmt.Fprintln(stderr, err)

		return 1
	}

	return 0
}

// lines returns a prompt function that ignores its prompt and reads from r.
func lines(r io.Reader) func(string) (string, error) {
	s := bufio.NewScanner(r)

	return func(string) (string, error) {
		if s.Scan() {
			return s.Text(), nil
		}

		err := s.Err()
		if err == nil {
			err = io.EOF
		}

		return "", err
	}
}
