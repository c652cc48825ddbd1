package interp

import (
	"testing"

	"github.com/emberlang/ember/internal/lexer"
	"github.com/emberlang/ember/internal/object"
	"github.com/emberlang/ember/internal/parser"
)

func run(t *testing.T, src string) (object.Value, error) {
	t.Helper()
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		return nil, lexErr
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return New().Interpret(stmts)
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "arithmetic precedence and reassignment",
			src:  "let x = 2 + 3 * 4; x = x - 5; x;",
			want: "9",
		},
		{
			name: "array indexing",
			src:  "let items = [1, 2, 3]; items[1];",
			want: "2",
		},
		{
			name: "string concatenation",
			src:  `"hello" + " world";`,
			want: "hello world",
		},
		{
			name: "function call inside a while loop",
			src:  "fun add(a,b){return a+b;} let t=0; let i=0; while(i<3){t=add(t,i); i=i+1;} t;",
			want: "3",
		},
		{
			name: "class construction and method call",
			src:  "class Counter{fun init(s){this.value=s;} fun inc(){this.value=this.value+1; return this.value;}} let c=Counter(1); c.inc();",
			want: "2",
		},
		{
			name: "array concatenation and indexing",
			src:  "let a=[1,2]; let b=[3]; (a+b)[2];",
			want: "3",
		},
		{
			name: "closures capture by reference across calls",
			src:  "fun make(){let n=0; fun tick(){n = n+1; return n;} return tick;} let t = make(); t(); t(); t();",
			want: "3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := run(t, tt.src)
			if err != nil {
				t.Fatalf("run(%q) returned error: %s", tt.src, err)
			}
			if got := v.String(); got != tt.want {
				t.Fatalf("run(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := run(t, "1/0;")
	if err == nil {
		t.Fatal("expected a DivideByZero error")
	}
	if got := err.Error(); got != "[DivideByZero:Division by zero]" {
		t.Fatalf("err = %q, want %q", got, "[DivideByZero:Division by zero]")
	}
}

func TestModuloByZero(t *testing.T) {
	_, err := run(t, "1 % 0;")
	if err == nil {
		t.Fatal("expected a DivideByZero error")
	}
}

func TestUndefinedVariable(t *testing.T) {
	_, err := run(t, "missing;")
	if err == nil {
		t.Fatal("expected an InvalidOperation error")
	}
}

func TestAssignmentDoesNotShadow(t *testing.T) {
	v, err := run(t, "let a = 1; { a = 2; } a;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.String() != "2" {
		t.Fatalf("a = %q, want %q", v.String(), "2")
	}
}

func TestScopeIsolation(t *testing.T) {
	_, err := run(t, "{ let b = 1; } b;")
	if err == nil {
		t.Fatal("expected b to be out of scope after its block ends")
	}
}

func TestShortCircuitOr(t *testing.T) {
	v, err := run(t, `
		let calls = 0;
		fun sideEffect() { calls = calls + 1; return true; }
		let result = true or sideEffect();
		calls;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.String() != "0" {
		t.Fatalf("calls = %q, want %q (right side of 'or' must not run)", v.String(), "0")
	}
}

func TestShortCircuitAnd(t *testing.T) {
	v, err := run(t, `
		let calls = 0;
		fun sideEffect() { calls = calls + 1; return true; }
		let result = false and sideEffect();
		calls;
	`)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.String() != "0" {
		t.Fatalf("calls = %q, want %q (right side of 'and' must not run)", v.String(), "0")
	}
}

func TestTruthiness(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"!0;", "true"},
		{"!1;", "false"},
		{`!"";`, "true"},
		{`!"x";`, "false"},
		{"![];", "true"},
		{"![1];", "false"},
		{"!null;", "true"},
	}
	for _, tt := range tests {
		v, err := run(t, tt.src)
		if err != nil {
			t.Fatalf("run(%q) returned error: %s", tt.src, err)
		}
		if got := v.String(); got != tt.want {
			t.Fatalf("run(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestIndexOutOfBounds(t *testing.T) {
	_, err := run(t, "let a = [1]; a[5];")
	if err == nil {
		t.Fatal("expected an out-of-bounds InvalidOperation error")
	}
}

func TestArityMismatch(t *testing.T) {
	_, err := run(t, "fun f(a,b){return a+b;} f(1);")
	if err == nil {
		t.Fatal("expected an arity-mismatch InvalidOperation error")
	}
}

func TestWhileYieldsLastBodyValue(t *testing.T) {
	v, err := run(t, "let i=0; while (i<3) { i = i+1; }")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.String() != "3" {
		t.Fatalf("while result = %q, want %q", v.String(), "3")
	}
}

func TestFunctionTailValueWithoutReturn(t *testing.T) {
	v, err := run(t, "fun f(){ 5; } f();")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.String() != "5" {
		t.Fatalf("f() = %q, want %q", v.String(), "5")
	}
}

func TestIndexEvaluatesIndexBeforeArrayTypeCheck(t *testing.T) {
	_, err := run(t, "let a = 5; a[1/0];")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := err.Error(); got != "[DivideByZero:Division by zero]" {
		t.Fatalf("err = %q, want %q", got, "[DivideByZero:Division by zero]")
	}
}

func TestSetEvaluatesValueBeforeInstanceTypeCheck(t *testing.T) {
	_, err := run(t, "let a = 5; a.x = (1/0);")
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := err.Error(); got != "[DivideByZero:Division by zero]" {
		t.Fatalf("err = %q, want %q", got, "[DivideByZero:Division by zero]")
	}
}

func TestTopLevelReturn(t *testing.T) {
	v, err := run(t, "let x = 5; return x; x = 10;")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if v.String() != "5" {
		t.Fatalf("top-level return value = %q, want %q", v.String(), "5")
	}
}
