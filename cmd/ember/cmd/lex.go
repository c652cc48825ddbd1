package cmd

import (
	"fmt"
	"os"

	"github.com/emberlang/ember/internal/lexer"
	"github.com/emberlang/ember/internal/token"
	"github.com/spf13/cobra"
)

var lexShowLine bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize an Ember file and print the resulting tokens",
	Long: `lex runs only the lexer stage and prints one line per token, useful
for inspecting how source text is scanned without invoking the parser
or interpreter.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowLine, "show-line", false, "show the source line for each token")
}

func runLex(_ *cobra.Command, args []string) error {
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

	for _, tok := range tokens {
		printToken(tok)
	}
	return nil
}

func printToken(tok token.Token) {
	if lexShowLine {
		fmt.Printf("%-14s %d", tok.Kind, tok.Line)
	} else {
		fmt.Printf("%-14s", tok.Kind)
	}
	if tok.Literal != nil {
		fmt.Printf(" %#v", tok.Literal)
	}
	fmt.Println()
}
