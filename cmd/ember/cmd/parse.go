package cmd

import (
	"fmt"
	"os"

	"github.com/emberlang/ember/internal/lexer"
	"github.com/emberlang/ember/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse an Ember file and print the resulting statement tree",
	Long: `parse runs the lexer and parser stages, printing each top-level
statement's debug representation without evaluating anything.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	source, err := readSource(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return err
	}

	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", lexErr)
		return lexErr
	}

	stmts, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "%s\n", parseErr)
		return parseErr
	}

	for _, stmt := range stmts {
		fmt.Println(stmt.String())
	}
	return nil
}
