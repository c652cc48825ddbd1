package cmd

import (
	"fmt"
	"os"

	"github.com/emberlang/ember/internal/object"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run an Ember source file",
	Long: `Run lexes, parses, and evaluates an Ember source file, printing the
final value to stdout followed by a newline if and only if the program
produced a value.

Examples:
  ember run script.ember
  ember run -e "let x = 2 + 3; x;"
  ember script.ember        # bare invocation behaves the same`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	source, err := resolveSource(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return err
	}

	value, err := runSource(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return err
	}

	if _, isNone := value.(*object.None); !isNone {
		fmt.Println(value.String())
	}
	return nil
}

// resolveSource picks the source text: --eval takes precedence over a
// positional file argument.
func resolveSource(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		return readSource(args[0])
	}
	return "", fmt.Errorf("either provide a file path or use -e for inline code")
}

func readSource(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), nil
}
