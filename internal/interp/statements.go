package interp

import (
	"github.com/emberlang/ember/internal/ast"
	"github.com/emberlang/ember/internal/object"
)

// execStmt executes a single statement and reports whether it produced
// a Return outcome. This is the two-channel result from the design:
// (value, isReturn, err) stands in for a Value(v?) | Return(v) sum
// without introducing a wrapper type: a nil value with a nil error is
// the ordinary completion that produced no value (declarations, an if
// with no branch taken), and callers keep their previous value then.
func (i *Interpreter) execStmt(stmt ast.Stmt) (object.Value, bool, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		v, err := i.evalExpr(s.Expr)
		if err != nil {
			return nil, false, err
		}
		return v, false, nil

	case *ast.Var:
		var v object.Value = object.NULL
		if s.Initializer != nil {
			var err error
			v, err = i.evalExpr(s.Initializer)
			if err != nil {
				return nil, false, err
			}
		}
		i.env.Define(s.Name, v)
		return nil, false, nil

	case *ast.Block:
		return i.execBlock(s.Stmts, object.NewEnclosedEnvironment(i.env))

	case *ast.If:
		cond, err := i.evalExpr(s.Cond)
		if err != nil {
			return nil, false, err
		}
		if truthy(cond) {
			return i.execStmt(s.Then)
		}
		if s.Else != nil {
			return i.execStmt(s.Else)
		}
		return nil, false, nil

	case *ast.While:
		var last object.Value
		for {
			cond, err := i.evalExpr(s.Cond)
			if err != nil {
				return nil, false, err
			}
			if !truthy(cond) {
				return last, false, nil
			}
			v, isReturn, err := i.execStmt(s.Body)
			if err != nil {
				return nil, false, err
			}
			if isReturn {
				return v, true, nil
			}
			if v != nil {
				last = v
			}
		}

	case *ast.Return:
		if s.Expr == nil {
			return object.NULL, true, nil
		}
		v, err := i.evalExpr(s.Expr)
		if err != nil {
			return nil, false, err
		}
		return v, true, nil

	case *ast.Function:
		fn := &object.Function{
			Name:    s.Name,
			Params:  s.Params,
			Body:    s.Body,
			Closure: i.env,
		}
		i.env.Define(s.Name, fn)
		return nil, false, nil

	case *ast.Class:
		i.env.Define(s.Name, object.NULL)

		methods := make(map[string]*object.Function, len(s.Methods))
		for _, m := range s.Methods {
			methods[m.Name] = &object.Function{
				Name:          m.Name,
				Params:        m.Params,
				Body:          m.Body,
				Closure:       i.env,
				IsInitializer: m.Name == "init",
			}
		}
		class := &object.Class{Name: s.Name, Methods: methods}
		i.env.Assign(s.Name, class)
		return nil, false, nil

	default:
		panic("interp: unhandled statement type")
	}
}

// execBlock runs stmts under env, restoring the interpreter's previous
// environment on every exit path — normal completion, a propagating
// Return, or an error. Skipping the restore on error would leak the
// block's scope into whatever runs next.
func (i *Interpreter) execBlock(stmts []ast.Stmt, env *object.Environment) (object.Value, bool, error) {
	saved := i.env
	i.env = env
	defer func() { i.env = saved }()

	var last object.Value
	for _, stmt := range stmts {
		v, isReturn, err := i.execStmt(stmt)
		if err != nil {
			return nil, false, err
		}
		if isReturn {
			return v, true, nil
		}
		if v != nil {
			last = v
		}
	}
	return last, false, nil
}
