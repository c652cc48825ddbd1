package cmd

import (
	"errors"

	"github.com/emberlang/ember/internal/langerror"
)

// Exit codes per the CLI surface: 0 success, 64 usage error, 65 lex or
// parse error, 70 evaluation error.
const (
	exitOK      = 0
	exitUsage   = 64
	exitSyntax  = 65
	exitRuntime = 70
)

func exitCodeFor(err error) int {
	var langErr *langerror.Error
	if errors.As(err, &langErr) {
		switch langErr.Kind {
		case langerror.InvalidToken, langerror.InvalidExpression:
			return exitSyntax
		default:
			return exitRuntime
		}
	}
	return exitUsage
}
