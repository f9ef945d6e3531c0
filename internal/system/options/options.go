// Released under an MIT license. See LICENSE.

// Package options parses the command line.
package options

import (
	"io"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "lisp 0.1.0"

const usage = `lisp

Usage:
  lisp [-t] [-c FILE] SCRIPT [ARGUMENTS...]
  lisp [-t] [-c FILE] -e EXPR
  lisp [-it] [-c FILE]
  lisp -h
  lisp -v

Arguments:
  ARGUMENTS  Bound, as a list of strings, to *ARGS*.
  SCRIPT     Path to a Lisp source file.

Options:
  -c, --config=FILE  Read configuration from FILE.
  -e, --eval=EXPR    Evaluate EXPR and print each value.
  -i, --interactive  Invert interactive mode.
  -t, --trace        Log every procedure application.
  -h, --help         Display this help.
  -v, --version      Print lisp version.

If stdin is a TTY and neither SCRIPT nor EXPR is given, lisp starts an
interactive session. Otherwise, forms are read from stdin.
`

// T (options) holds the parsed command line.
type T struct {
	args        []string
	config      string
	expression  string
	interactive bool
	script      string
	trace       bool
}

// Parse parses argv, which excludes the program name. Help and version
// requests print and exit. Sessions are interactive by default only when
// stdin is a terminal.
func Parse(argv []string, stdin io.Reader) (*T, error) {
	return parse(docopt.DefaultParser, argv, terminal(stdin))
}

func parse(p *docopt.Parser, argv []string, tty bool) (*T, error) {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, err
	}

	o := &T{}

	o.config, _ = opts.String("--config")
	o.expression, _ = opts.String("--eval")
	o.script, _ = opts.String("SCRIPT")
	o.trace, _ = opts.Bool("--trace")

	o.args, _ = opts["ARGUMENTS"].([]string)

	if o.script == "" && o.expression == "" && tty {
		o.interactive = true
	}

	invertInteractive, _ := opts.Bool("--interactive")
	o.interactive = o.interactive != invertInteractive

	return o, nil
}

func terminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}

	fd := f.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Args returns the positional arguments that follow SCRIPT.
func (o *T) Args() []string {
	return o.args
}

// Config returns the path of the configuration file, if one was given.
func (o *T) Config() string {
	return o.config
}

// Expression returns the text passed with -e, if any.
func (o *T) Expression() string {
	return o.expression
}

// Interactive returns true if a line-editing session should be started.
func (o *T) Interactive() bool {
	return o.interactive
}

// Script returns the path of the script to run, if any.
func (o *T) Script() string {
	return o.script
}

// Trace returns true if tracing was requested.
func (o *T) Trace() bool {
	return o.trace
}
