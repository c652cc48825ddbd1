// Package langerror defines the typed error families raised by Ember's
// lexer, parser, and interpreter. Every error is a {kind, message} pair;
// none of them are recovered locally, and every one aborts the pipeline
// stage that raised it.
package langerror

import "fmt"

// Kind identifies which of the three error families an Error belongs to.
type Kind string

const (
	// InvalidToken is raised by the lexer: unterminated strings, unknown
	// characters, malformed numbers.
	InvalidToken Kind = "InvalidToken"

	// InvalidExpression is raised by the parser: unexpected tokens,
	// invalid assignment targets, missing terminators.
	InvalidExpression Kind = "InvalidExpression"

	// DivideByZero is raised by the interpreter for / and % with a zero
	// right-hand operand.
	DivideByZero Kind = "DivideByZero"

	// InvalidOperation is raised by the interpreter for undefined names,
	// arity mismatches, bad call targets, and out-of-bounds indices.
	InvalidOperation Kind = "InvalidOperation"

	// InvalidTypeOperation is raised by the interpreter for operand-type
	// mismatches.
	InvalidTypeOperation Kind = "InvalidTypeOperation"
)

// Error is the single error type produced anywhere in the pipeline. Line
// is 0 when the raising stage has no token to attach a line to.
type Error struct {
	Kind    Kind
	Message string
	Line    int
}

// New builds an Error, formatting Message with fmt.Sprintf semantics.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt is New with a source line attached.
func NewAt(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line}
}

// Error implements the error interface. The CLI surface (§6) requires
// exactly this "[Kind:message]" shape on stderr.
func (e *Error) Error() string {
	return fmt.Sprintf("[%s:%s]", e.Kind, e.Message)
}
