// Package parser turns a token stream into a list of statement trees
// using single-pass recursive descent with Pratt-style precedence
// climbing for expressions. There is no backtracking (one token of
// lookahead) and no error recovery: the first unexpected token aborts
// parsing with an InvalidExpression error.
package parser

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/langerror"
	"github.com/emberlang/ember/internal/token"
)

// Parser holds the token stream and the current read position.
type Parser struct {
	tokens  []token.Token
	current int
}

// New creates a Parser over tokens, which must end in exactly one Eof
// token (as produced by lexer.Tokenize).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses tokens into the top-level statement list.
func Parse(tokens []token.Token) ([]ast.Stmt, error) {
	return New(tokens).Parse()
}

// Parse runs the `program := declaration* Eof` rule.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) declaration() (ast.Stmt, error) {
	switch {
	case p.match(token.Class):
		return p.classDeclaration()
	case p.match(token.Fun):
		return p.function()
	case p.match(token.Let):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) classDeclaration() (ast.Stmt, error) {
	name, err := p.consumeIdentifier("Expected class name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "Expect '{' before class body"); err != nil {
		return nil, err
	}

	var methods []*ast.Function
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		if _, err := p.consume(token.Fun, "Expect 'fun' before method"); err != nil {
			return nil, err
		}
		method, err := p.function()
		if err != nil {
			return nil, err
		}
		methods = append(methods, method.(*ast.Function))
	}
	if _, err := p.consume(token.RightBrace, "Expect '}' after class body"); err != nil {
		return nil, err
	}
	return &ast.Class{Name: name, Methods: methods}, nil
}

func (p *Parser) function() (ast.Stmt, error) {
	name, err := p.consumeIdentifier("Expected function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LeftParen, "Expect '(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(token.RightParen) {
		for {
			pname, err := p.consumeIdentifier("Expect parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, pname)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after parameters"); err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LeftBrace, "Expect '{' before function body"); err != nil {
		return nil, err
	}
	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.Function{Name: name, Params: params, Body: body}, nil
}

func (p *Parser) varDeclaration() (ast.Stmt, error) {
	name, err := p.consumeIdentifier("Expected variable name")
	if err != nil {
		return nil, err
	}

	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration"); err != nil {
		return nil, err
	}
	return &ast.Var{Name: name, Initializer: initializer}, nil
}

func (p *Parser) block() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RightBrace, "Expect '}' after block"); err != nil {
		return nil, err
	}
	return stmts, nil
}

// --- token-stream helpers ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(k token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == k
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) consume(k token.Kind, message string) (token.Token, error) {
	if p.check(k) {
		return p.advance(), nil
	}
	return token.Token{}, p.errorAt(message)
}

func (p *Parser) consumeIdentifier(message string) (string, error) {
	tok, err := p.consume(token.Identifier, message)
	if err != nil {
		return "", err
	}
	return tok.Text(), nil
}

func (p *Parser) errorAt(message string) error {
	return langerror.NewAt(langerror.InvalidExpression, p.peek().Line, "%s", message)
}
