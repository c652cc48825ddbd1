// Package cmd implements the ember command-line surface with cobra: a
// bare invocation runs a file like `run` would, plus explicit `run`,
// `lex`, `parse`, and `version` subcommands for inspecting earlier
// pipeline stages.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information, set by build flags.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "ember [file]",
	Short: "Ember scripting language interpreter",
	Long: `ember is a tree-walking interpreter for the Ember scripting language:
a small dynamically-typed language with integers, strings, booleans,
arrays, closures, and single-level classes.

Running ember with a single file argument and no subcommand behaves
like "ember run <file>".`,
	Args:          cobra.ExactArgs(1),
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScript,
}

// Execute runs the root command and returns its exit code, per the
// exit-code table: 0 success, 64 usage error, 65 lex/parse error, 70
// evaluation error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return exitCodeFor(err)
	}
	return 0
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&trace, "trace", "t", false, "print a trace line before executing")
}

var trace bool
