package object

import "github.com/emberlang/ember/internal/ast"

// Function is a closure: parameters, a body, and the environment that
// was current at the point of definition. Closure is never nil — the
// top-level closure is the interpreter's global environment.
type Function struct {
	Name          string
	Params        []string
	Body          []ast.Stmt
	Closure       *Environment
	IsInitializer bool
}

func (*Function) Type() Type     { return FunctionType }
func (*Function) String() string { return "<fn>" }

// Bind returns a copy of f whose closure is a new environment enclosing
// f's original closure, with "this" defined to instance. Reading a
// method off an instance always goes through Bind, which is what lets
// the method body resolve `this` like any other variable.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define("this", instance)
	return &Function{
		Name:          f.Name,
		Params:        f.Params,
		Body:          f.Body,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}
