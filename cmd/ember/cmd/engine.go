package cmd

import (
	"os"

	"github.com/emberlang/ember/internal/object"
	"github.com/emberlang/ember/pkg/ember"
)

// runSource drives the full lex/parse/eval pipeline through the
// embeddable engine, honoring the --trace persistent flag shared by
// every subcommand.
func runSource(source string) (object.Value, error) {
	engine := ember.New(ember.WithStdout(os.Stderr), ember.WithTrace(trace))
	return engine.Run(source)
}
