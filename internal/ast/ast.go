// Package ast defines Ember's abstract syntax tree: the Expression and
// Statement sum types produced by the parser and walked by the
// interpreter. Each variant is its own Go type implementing a small
// marker interface; exhaustive dispatch happens via type switches in the
// parser and interpreter, not a visitor.
package ast

import "github.com/emberlang/ember/internal/token"

// Node is implemented by every expression and statement node. String
// renders a debug form of the subtree, used by the `ember parse`
// diagnostic command.
type Node interface {
	String() string
}

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Kind re-exports token.Kind so callers of this package don't need to
// import internal/token just to compare operator kinds on Unary/Binary/
// Logical nodes.
type Kind = token.Kind
