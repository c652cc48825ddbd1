package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident        string
		expectedKind Kind
		expectedOK   bool
	}{
		{"fun", Fun, true},
		{"let", Let, true},
		{"class", Class, true},
		{"this", This, true},
		{"if", If, true},
		{"else", Else, true},
		{"while", While, true},
		{"for", For, true},
		{"return", Return, true},
		{"and", And, true},
		{"or", Or, true},
		{"true", Boolean, true},
		{"false", Boolean, true},
		{"null", Null, true},
		{"x", 0, false},
		{"iffy", 0, false},
	}

	for _, tt := range tests {
		kind, ok := LookupKeyword(tt.ident)
		if ok != tt.expectedOK {
			t.Fatalf("LookupKeyword(%q) ok = %v, want %v", tt.ident, ok, tt.expectedOK)
		}
		if ok && kind != tt.expectedKind {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", tt.ident, kind, tt.expectedKind)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := LeftParen.String(); got != "LeftParen" {
		t.Fatalf("LeftParen.String() = %q, want %q", got, "LeftParen")
	}
	if got := Eof.String(); got != "Eof" {
		t.Fatalf("Eof.String() = %q, want %q", got, "Eof")
	}
}

func TestTokenText(t *testing.T) {
	tok := Token{Kind: Identifier, Literal: "count", Line: 3}
	if got := tok.Text(); got != "count" {
		t.Fatalf("Text() = %q, want %q", got, "count")
	}

	noLiteral := Token{Kind: Plus, Line: 1}
	if got := noLiteral.Text(); got != "" {
		t.Fatalf("Text() on non-string literal = %q, want empty", got)
	}
}
