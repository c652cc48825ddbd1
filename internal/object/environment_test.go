package object

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment()
	env.Define("x", &Integer{Value: 5})

	v, ok := env.Get("x")
	if !ok {
		t.Fatal("expected x to be defined")
	}
	if i, ok := v.(*Integer); !ok || i.Value != 5 {
		t.Fatalf("got %v, want Integer(5)", v)
	}

	if _, ok := env.Get("missing"); ok {
		t.Fatal("expected missing to be undefined")
	}
}

func TestEnvironmentScopeIsolation(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", &Integer{Value: 1})

	inner := NewEnclosedEnvironment(outer)
	inner.Define("b", &Integer{Value: 2})

	if _, ok := inner.Get("a"); !ok {
		t.Fatal("inner scope should see outer bindings")
	}
	if _, ok := outer.Get("b"); ok {
		t.Fatal("outer scope should not see inner bindings")
	}
}

func TestEnvironmentAssignDoesNotShadow(t *testing.T) {
	outer := NewEnvironment()
	outer.Define("a", &Integer{Value: 1})
	inner := NewEnclosedEnvironment(outer)

	if ok := inner.Assign("a", &Integer{Value: 99}); !ok {
		t.Fatal("Assign should find 'a' in the enclosing scope")
	}

	// The binding must have been updated in place in outer, not shadowed
	// in inner.
	if _, ok := inner.values["a"]; ok {
		t.Fatal("Assign must not create a new binding in the inner scope")
	}
	v, _ := outer.Get("a")
	if i := v.(*Integer); i.Value != 99 {
		t.Fatalf("outer a = %d, want 99", i.Value)
	}
}

func TestEnvironmentAssignUndefinedFails(t *testing.T) {
	env := NewEnvironment()
	if ok := env.Assign("nope", &Integer{Value: 1}); ok {
		t.Fatal("Assign to an undefined name should report false")
	}
}

func TestFunctionBindDefinesThis(t *testing.T) {
	closure := NewEnvironment()
	fn := &Function{Name: "greet", Closure: closure}
	instance := NewInstance(&Class{Name: "Greeter", Methods: map[string]*Function{}})

	bound := fn.Bind(instance)
	this, ok := bound.Closure.Get("this")
	if !ok {
		t.Fatal("bound function's closure should define 'this'")
	}
	if this.(*Instance) != instance {
		t.Fatal("'this' should be the exact instance bound")
	}
	// The original function is untouched.
	if _, ok := fn.Closure.Get("this"); ok {
		t.Fatal("Bind must not mutate the original closure")
	}
}

func TestInstanceGetSet(t *testing.T) {
	method := &Function{Name: "greet"}
	class := &Class{Name: "Greeter", Methods: map[string]*Function{"greet": method}}
	instance := NewInstance(class)

	instance.Set("name", &String{Value: "ember"})
	v, ok := instance.Get("name")
	if !ok || v.(*String).Value != "ember" {
		t.Fatalf("got %v, want field 'name' = ember", v)
	}

	bound, ok := instance.Get("greet")
	if !ok {
		t.Fatal("expected method 'greet' to resolve through the class")
	}
	if _, ok := bound.(*Function); !ok {
		t.Fatalf("bound method is %T, want *Function", bound)
	}
}
