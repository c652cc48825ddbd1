// Package token defines the fixed vocabulary of Ember source code: the
// exhaustive set of token kinds the lexer produces and the keyword table
// used to distinguish identifiers from reserved words.
package token

import "fmt"

// Kind identifies the category of a Token. The set below is exhaustive —
// the lexer never produces a Kind outside it.
type Kind int

const (
	// Delimiters
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	LeftBracket
	RightBracket
	Comma
	Semicolon
	Dot

	// Arithmetic operators
	Plus
	Minus
	Star
	Slash
	Modulo

	// QuestionMark is lexed but consumed by no grammar rule; kept for
	// forward compatibility (see spec §9's Open Questions).
	QuestionMark

	// Comparison and assignment operators
	Greater
	GreaterEqual
	Less
	LessEqual
	Equal
	EqualEqual
	Not
	NotEqual

	// Logical keywords
	And
	Or

	// Declaration and control-flow keywords
	Fun
	Let
	Class
	This
	If
	Else
	While
	For
	Return

	// Identifiers and literals
	Identifier
	Boolean
	Number
	String
	Null

	// Eof terminates every token stream exactly once.
	Eof
)

var kindNames = map[Kind]string{
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Comma:        "Comma",
	Semicolon:    "Semicolon",
	Dot:          "Dot",
	Plus:         "Plus",
	Minus:        "Minus",
	Star:         "Star",
	Slash:        "Slash",
	Modulo:       "Modulo",
	QuestionMark: "QuestionMark",
	Greater:      "Greater",
	GreaterEqual: "GreaterEqual",
	Less:         "Less",
	LessEqual:    "LessEqual",
	Equal:        "Equal",
	EqualEqual:   "EqualEqual",
	Not:          "Not",
	NotEqual:     "NotEqual",
	And:          "And",
	Or:           "Or",
	Fun:          "Fun",
	Let:          "Let",
	Class:        "Class",
	This:         "This",
	If:           "If",
	Else:         "Else",
	While:        "While",
	For:          "For",
	Return:       "Return",
	Identifier:   "Identifier",
	Boolean:      "Boolean",
	Number:       "Number",
	String:       "String",
	Null:         "Null",
	Eof:          "Eof",
}

// String renders a Kind by name, e.g. "LeftParen". Used by error messages
// and the `ember lex` debug command.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps reserved identifier text to its keyword Kind. Anything
// not present here lexes as Identifier.
var keywords = map[string]Kind{
	"fun":    Fun,
	"let":    Let,
	"class":  Class,
	"this":   This,
	"if":     If,
	"else":   Else,
	"while":  While,
	"for":    For,
	"return": Return,
	"and":    And,
	"or":     Or,
	"true":   Boolean,
	"false":  Boolean,
	"null":   Null,
}

// LookupKeyword reports whether ident is a reserved word and, if so, its
// Kind. "true"/"false" report Boolean (the lexer still attaches the
// boolean literal value); every other keyword has no literal payload.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Token is a tagged record produced by the lexer: {kind, literal, line}.
// Literal is nil for kinds that carry no value (operators, punctuation,
// non-literal keywords); otherwise it holds an int64, string, or bool
// matching Kind (Number, String, Boolean respectively). Identifier tokens
// carry their text as a string Literal.
type Token struct {
	Kind    Kind
	Literal any
	Line    int
}

// Text returns the identifier name or string literal carried by a token,
// or "" for tokens with no string-shaped literal. Convenience used by the
// parser when consuming an Identifier.
func (t Token) Text() string {
	if s, ok := t.Literal.(string); ok {
		return s
	}
	return ""
}
