package interp

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/langerror"
	"github.com/emberlang/ember/internal/object"
	"github.com/emberlang/ember/internal/token"
)

func (i *Interpreter) evalExpr(expr ast.Expr) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e.Value), nil

	case *ast.Variable:
		v, ok := i.env.Get(e.Name)
		if !ok {
			return nil, langerror.New(langerror.InvalidOperation, "Undefined variable '%s'", e.Name)
		}
		return v, nil

	case *ast.This:
		v, ok := i.env.Get("this")
		if !ok {
			return nil, langerror.New(langerror.InvalidOperation, "Undefined variable 'this'")
		}
		return v, nil

	case *ast.Assign:
		v, err := i.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		if !i.env.Assign(e.Name, v) {
			return nil, langerror.New(langerror.InvalidOperation, "Undefined variable '%s'", e.Name)
		}
		return v, nil

	case *ast.Grouping:
		return i.evalExpr(e.Expr)

	case *ast.Unary:
		return i.evalUnary(e)

	case *ast.Binary:
		return i.evalBinary(e)

	case *ast.Logical:
		return i.evalLogical(e)

	case *ast.Array:
		items := make([]object.Value, len(e.Items))
		for idx, item := range e.Items {
			v, err := i.evalExpr(item)
			if err != nil {
				return nil, err
			}
			items[idx] = v
		}
		return &object.Array{Items: items}, nil

	case *ast.Index:
		return i.evalIndex(e)

	case *ast.Call:
		return i.evalCall(e)

	case *ast.Get:
		obj, err := i.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*object.Instance)
		if !ok {
			return nil, langerror.New(langerror.InvalidTypeOperation, "Only instances have properties")
		}
		v, ok := instance.Get(e.Name)
		if !ok {
			return nil, langerror.New(langerror.InvalidOperation, "Undefined property '%s'", e.Name)
		}
		return v, nil

	case *ast.Set:
		obj, err := i.evalExpr(e.Object)
		if err != nil {
			return nil, err
		}
		v, err := i.evalExpr(e.Value)
		if err != nil {
			return nil, err
		}
		instance, ok := obj.(*object.Instance)
		if !ok {
			return nil, langerror.New(langerror.InvalidTypeOperation, "Only instances have properties")
		}
		instance.Set(e.Name, v)
		return v, nil

	default:
		panic("interp: unhandled expression type")
	}
}

// literalValue converts the literal payload a Literal AST node carries
// (set by the parser straight from token.Literal, or nil for `null`)
// into a runtime Value.
func literalValue(v any) object.Value {
	switch val := v.(type) {
	case nil:
		return object.NULL
	case int64:
		return &object.Integer{Value: val}
	case string:
		return &object.String{Value: val}
	case bool:
		return object.NativeBool(val)
	default:
		return object.NULL
	}
}

func (i *Interpreter) evalUnary(e *ast.Unary) (object.Value, error) {
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.Minus:
		n, ok := right.(*object.Integer)
		if !ok {
			return nil, langerror.New(langerror.InvalidTypeOperation, "Operand of '-' must be an integer")
		}
		return &object.Integer{Value: -n.Value}, nil
	case token.Not:
		return object.NativeBool(!truthy(right)), nil
	default:
		panic("interp: unhandled unary operator")
	}
}

func (i *Interpreter) evalLogical(e *ast.Logical) (object.Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Op {
	case token.Or:
		if truthy(left) {
			return left, nil
		}
	case token.And:
		if !truthy(left) {
			return left, nil
		}
	default:
		panic("interp: unhandled logical operator")
	}
	return i.evalExpr(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (object.Value, error) {
	left, err := i.evalExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case token.EqualEqual:
		return object.NativeBool(valuesEqual(left, right)), nil
	case token.NotEqual:
		return object.NativeBool(!valuesEqual(left, right)), nil
	case token.Plus:
		return evalPlus(left, right)
	case token.Minus, token.Star, token.Slash, token.Modulo:
		return evalArith(e.Op, left, right)
	case token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return evalCompare(e.Op, left, right)
	default:
		panic("interp: unhandled binary operator")
	}
}

func evalPlus(left, right object.Value) (object.Value, error) {
	switch l := left.(type) {
	case *object.Integer:
		r, ok := right.(*object.Integer)
		if !ok {
			return nil, langerror.New(langerror.InvalidTypeOperation, "Operands of '+' must be the same type")
		}
		return &object.Integer{Value: l.Value + r.Value}, nil
	case *object.String:
		r, ok := right.(*object.String)
		if !ok {
			return nil, langerror.New(langerror.InvalidTypeOperation, "Operands of '+' must be the same type")
		}
		return &object.String{Value: l.Value + r.Value}, nil
	case *object.Array:
		r, ok := right.(*object.Array)
		if !ok {
			return nil, langerror.New(langerror.InvalidTypeOperation, "Operands of '+' must be the same type")
		}
		items := make([]object.Value, 0, len(l.Items)+len(r.Items))
		items = append(items, l.Items...)
		items = append(items, r.Items...)
		return &object.Array{Items: items}, nil
	default:
		return nil, langerror.New(langerror.InvalidTypeOperation, "Operands of '+' must be integers, strings, or arrays")
	}
}

func evalArith(op token.Kind, left, right object.Value) (object.Value, error) {
	l, ok := left.(*object.Integer)
	if !ok {
		return nil, langerror.New(langerror.InvalidTypeOperation, "Operands must be integers")
	}
	r, ok := right.(*object.Integer)
	if !ok {
		return nil, langerror.New(langerror.InvalidTypeOperation, "Operands must be integers")
	}

	switch op {
	case token.Minus:
		return &object.Integer{Value: l.Value - r.Value}, nil
	case token.Star:
		return &object.Integer{Value: l.Value * r.Value}, nil
	case token.Slash:
		if r.Value == 0 {
			return nil, langerror.New(langerror.DivideByZero, "Division by zero")
		}
		return &object.Integer{Value: l.Value / r.Value}, nil
	case token.Modulo:
		if r.Value == 0 {
			return nil, langerror.New(langerror.DivideByZero, "Division by zero")
		}
		return &object.Integer{Value: l.Value % r.Value}, nil
	default:
		panic("interp: unhandled arithmetic operator")
	}
}

func evalCompare(op token.Kind, left, right object.Value) (object.Value, error) {
	l, ok := left.(*object.Integer)
	if !ok {
		return nil, langerror.New(langerror.InvalidTypeOperation, "Operands must be integers")
	}
	r, ok := right.(*object.Integer)
	if !ok {
		return nil, langerror.New(langerror.InvalidTypeOperation, "Operands must be integers")
	}

	switch op {
	case token.Greater:
		return object.NativeBool(l.Value > r.Value), nil
	case token.GreaterEqual:
		return object.NativeBool(l.Value >= r.Value), nil
	case token.Less:
		return object.NativeBool(l.Value < r.Value), nil
	case token.LessEqual:
		return object.NativeBool(l.Value <= r.Value), nil
	default:
		panic("interp: unhandled comparison operator")
	}
}

func (i *Interpreter) evalIndex(e *ast.Index) (object.Value, error) {
	arr, err := i.evalExpr(e.Array)
	if err != nil {
		return nil, err
	}
	idx, err := i.evalExpr(e.Index)
	if err != nil {
		return nil, err
	}

	n, ok := idx.(*object.Integer)
	if !ok || n.Value < 0 {
		return nil, langerror.New(langerror.InvalidTypeOperation, "Index must be a non-negative integer")
	}
	a, ok := arr.(*object.Array)
	if !ok {
		return nil, langerror.New(langerror.InvalidTypeOperation, "Only arrays can be indexed")
	}
	if n.Value >= int64(len(a.Items)) {
		return nil, langerror.New(langerror.InvalidOperation, "Index %d out of bounds", n.Value)
	}
	return a.Items[n.Value], nil
}

func (i *Interpreter) evalCall(e *ast.Call) (object.Value, error) {
	callee, err := i.evalExpr(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]object.Value, len(e.Args))
	for idx, a := range e.Args {
		v, err := i.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	switch c := callee.(type) {
	case *object.Function:
		return i.callFunction(c, args)
	case *object.Class:
		return i.callClass(c, args)
	default:
		return nil, langerror.New(langerror.InvalidOperation, "Can only call functions and classes")
	}
}
