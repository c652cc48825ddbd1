package ast

import (
	"fmt"
	"strings"
)

// Literal is an integer, string, boolean, or null constant. Value holds
// an int64, string, bool, or nil (for null) — the same shape as
// object.Value's primitive constructors consume.
type Literal struct {
	Value any
}

func (*Literal) exprNode() {}
func (l *Literal) String() string {
	if l.Value == nil {
		return "null"
	}
	return fmt.Sprintf("%v", l.Value)
}

// Variable is an identifier reference.
type Variable struct {
	Name string
}

func (*Variable) exprNode()        {}
func (v *Variable) String() string { return v.Name }

// Assign is a simple `name = expr` assignment.
type Assign struct {
	Name  string
	Value Expr
}

func (*Assign) exprNode() {}
func (a *Assign) String() string {
	return fmt.Sprintf("(%s = %s)", a.Name, a.Value)
}

// Unary is `-right` or `!right`.
type Unary struct {
	Op    Kind
	Right Expr
}

func (*Unary) exprNode() {}
func (u *Unary) String() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.Right)
}

// Binary is a two-operand arithmetic, comparison, or equality expression.
type Binary struct {
	Left  Expr
	Op    Kind
	Right Expr
}

func (*Binary) exprNode() {}
func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Logical is short-circuiting `and`/`or`.
type Logical struct {
	Left  Expr
	Op    Kind
	Right Expr
}

func (*Logical) exprNode() {}
func (l *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Left, l.Op, l.Right)
}

// Grouping is a parenthesized expression, kept distinct from its inner
// expression so a re-printed program round-trips its parens.
type Grouping struct {
	Expr Expr
}

func (*Grouping) exprNode() {}
func (g *Grouping) String() string {
	return fmt.Sprintf("(%s)", g.Expr)
}

// Array is a list literal `[a, b, c]`.
type Array struct {
	Items []Expr
}

func (*Array) exprNode() {}
func (a *Array) String() string {
	parts := make([]string, len(a.Items))
	for i, item := range a.Items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Index is a subscript read `array[index]`.
type Index struct {
	Array Expr
	Index Expr
}

func (*Index) exprNode() {}
func (i *Index) String() string {
	return fmt.Sprintf("%s[%s]", i.Array, i.Index)
}

// Call is an invocation `callee(args...)`.
type Call struct {
	Callee Expr
	Args   []Expr
}

func (*Call) exprNode() {}
func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(parts, ", "))
}

// Get is a property read `object.name`.
type Get struct {
	Object Expr
	Name   string
}

func (*Get) exprNode() {}
func (g *Get) String() string {
	return fmt.Sprintf("%s.%s", g.Object, g.Name)
}

// Set is a property write `object.name = value`.
type Set struct {
	Object Expr
	Name   string
	Value  Expr
}

func (*Set) exprNode() {}
func (s *Set) String() string {
	return fmt.Sprintf("(%s.%s = %s)", s.Object, s.Name, s.Value)
}

// This is a self-reference inside a method body.
type This struct{}

func (*This) exprNode()      {}
func (*This) String() string { return "this" }
