// Package interp is the tree-walking evaluator: it executes a list of
// statements against a chain of Environments and produces either a
// final Value or a langerror.Error. There is no bytecode, no resolver
// pass — every name lookup walks the environment chain at the moment
// it is needed.
package interp

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/langerror"
	"github.com/emberlang/ember/internal/object"
)

// Interpreter owns the global environment and the current environment
// pointer. It is not safe for concurrent use — the language itself has
// no concurrency.
type Interpreter struct {
	globals *object.Environment
	env     *object.Environment
}

// New creates an Interpreter with a fresh global environment.
func New() *Interpreter {
	g := object.NewEnvironment()
	return &Interpreter{globals: g, env: g}
}

// Interpret runs stmts to completion and returns the value of the last
// expression statement executed, or object.NONE if none ran. A
// top-level `return` is not an error: its value becomes the program's
// result, matching the source's tolerance for top-level return.
func (i *Interpreter) Interpret(stmts []ast.Stmt) (object.Value, error) {
	var last object.Value = object.NONE
	for _, stmt := range stmts {
		v, isReturn, err := i.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		if isReturn {
			return v, nil
		}
		if v != nil {
			last = v
		}
	}
	return last, nil
}

// callFunction invokes fn with args already evaluated left to right. It
// binds parameters in a fresh environment enclosing fn's closure,
// executes the body, and unwraps the Return signal into an ordinary
// value. An initializer's returned value is always overridden: it
// yields `this` off its own closure instead of whatever init computed.
func (i *Interpreter) callFunction(fn *object.Function, args []object.Value) (object.Value, error) {
	if len(args) != len(fn.Params) {
		return nil, langerror.New(langerror.InvalidOperation,
			"Expected %d arguments but got %d", len(fn.Params), len(args))
	}

	callEnv := object.NewEnclosedEnvironment(fn.Closure)
	for idx, param := range fn.Params {
		callEnv.Define(param, args[idx])
	}

	saved := i.env
	i.env = callEnv
	defer func() { i.env = saved }()

	var result object.Value = object.NONE
	for _, stmt := range fn.Body {
		v, isReturn, err := i.execStmt(stmt)
		if err != nil {
			return nil, err
		}
		if isReturn {
			result = v
			break
		}
		if v != nil {
			result = v
		}
	}

	if fn.IsInitializer {
		this, _ := fn.Closure.Get("this")
		return this, nil
	}
	return result, nil
}

// callClass constructs a new Instance of class, binding and invoking
// `init` with args if the class declares one. The constructed instance
// is always the result, regardless of what init computes.
func (i *Interpreter) callClass(class *object.Class, args []object.Value) (object.Value, error) {
	instance := object.NewInstance(class)
	if init, ok := class.Method("init"); ok {
		bound := init.Bind(instance)
		if _, err := i.callFunction(bound, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func truthy(v object.Value) bool {
	switch val := v.(type) {
	case *object.Boolean:
		return val.Value
	case *object.Null, *object.None:
		return false
	case *object.Integer:
		return val.Value != 0
	case *object.String:
		return val.Value != ""
	case *object.Array:
		return len(val.Items) != 0
	default:
		return true
	}
}

// valuesEqual implements §3's equality rule: structural for strings,
// integers, booleans, arrays, and null; identity for everything else
// (function, class, instance — compared as Go interface values, which
// for pointer-backed variants is pointer identity).
func valuesEqual(a, b object.Value) bool {
	switch av := a.(type) {
	case *object.Integer:
		bv, ok := b.(*object.Integer)
		return ok && av.Value == bv.Value
	case *object.String:
		bv, ok := b.(*object.String)
		return ok && av.Value == bv.Value
	case *object.Boolean:
		bv, ok := b.(*object.Boolean)
		return ok && av.Value == bv.Value
	case *object.Null:
		_, ok := b.(*object.Null)
		return ok
	case *object.None:
		_, ok := b.(*object.None)
		return ok
	case *object.Array:
		bv, ok := b.(*object.Array)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for idx := range av.Items {
			if !valuesEqual(av.Items[idx], bv.Items[idx]) {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
