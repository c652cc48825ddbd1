package parser

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/token"
)

func (p *Parser) expression() (ast.Expr, error) {
	return p.assignment()
}

// assignment parses the left side as an ordinary expression, then — if
// an '=' follows — rewrites that expression into an Assign or Set node.
// Any other left side makes '=' an InvalidExpression: there is no
// notion of an assignment target independent of the expression grammar.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		switch target := expr.(type) {
		case *ast.Variable:
			return &ast.Assign{Name: target.Name, Value: value}, nil
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}, nil
		default:
			return nil, p.errorAt("Invalid assignment target")
		}
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: token.Or, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.Logical{Left: expr, Op: token.And, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}
	for p.match(token.EqualEqual, token.NotEqual) {
		op := p.previous().Kind
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) comparison() (ast.Expr, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		op := p.previous().Kind
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) term() (ast.Expr, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.match(token.Plus, token.Minus) {
		op := p.previous().Kind
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) factor() (ast.Expr, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.match(token.Star, token.Slash, token.Modulo) {
		op := p.previous().Kind
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &ast.Binary{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Not, token.Minus) {
		op := p.previous().Kind
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Op: op, Right: right}, nil
	}
	return p.call()
}

// call parses a primary expression followed by any mix of call `(...)`,
// property `.name`, and index `[...]` suffixes, left to right.
func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for {
		switch {
		case p.match(token.LeftParen):
			expr, err = p.finishCall(expr)
			if err != nil {
				return nil, err
			}
		case p.match(token.Dot):
			name, err := p.consumeIdentifier("Expect property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = &ast.Get{Object: expr, Name: name}
		case p.match(token.LeftBracket):
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(token.RightBracket, "Expect ']' after index"); err != nil {
				return nil, err
			}
			expr = &ast.Index{Array: expr, Index: index}
		default:
			return expr, nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after arguments"); err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Args: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.Boolean):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.Null):
		return &ast.Literal{Value: nil}, nil
	case p.match(token.Number, token.String):
		return &ast.Literal{Value: p.previous().Literal}, nil
	case p.match(token.This):
		return &ast.This{}, nil
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous().Text()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression"); err != nil {
			return nil, err
		}
		return &ast.Grouping{Expr: expr}, nil
	case p.match(token.LeftBracket):
		var items []ast.Expr
		if !p.check(token.RightBracket) {
			for {
				item, err := p.expression()
				if err != nil {
					return nil, err
				}
				items = append(items, item)
				if !p.match(token.Comma) {
					break
				}
			}
		}
		if _, err := p.consume(token.RightBracket, "Expect ']' after array elements"); err != nil {
			return nil, err
		}
		return &ast.Array{Items: items}, nil
	default:
		return nil, p.errorAt("Expect expression")
	}
}
