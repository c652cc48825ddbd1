// Package ember is the embeddable front door to the language: lex,
// parse, and evaluate a source string without going through the CLI.
// An Engine is configured with functional options passed to New.
package ember

import (
	"fmt"
	"io"
	"os"

	"github.com/emberlang/ember/internal/interp"
	"github.com/emberlang/ember/internal/lexer"
	"github.com/emberlang/ember/internal/object"
	"github.com/emberlang/ember/internal/parser"
)

// Engine runs Ember source against a fresh interpreter per Run call.
type Engine struct {
	stdout io.Writer
	trace  bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithStdout redirects trace output; an Engine built by New without this
// option writes to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithTrace enables a one-line announcement before each Run, naming how
// many top-level statements it is about to execute.
func WithTrace(trace bool) Option {
	return func(e *Engine) { e.trace = trace }
}

// New creates an Engine with opts applied over the defaults.
func New(opts ...Option) *Engine {
	e := &Engine{stdout: os.Stdout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run lexes, parses, and evaluates source, returning the pipeline's
// final value or the first error raised by any stage. Each call gets
// its own Interpreter, so Engine instances share no mutable state
// across Run calls.
func (e *Engine) Run(source string) (object.Value, error) {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		return nil, lexErr
	}

	stmts, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	if e.trace {
		fmt.Fprintf(e.stdout, "[trace] executing %d top-level statement(s)\n", len(stmts))
	}

	return interp.New().Interpret(stmts)
}
