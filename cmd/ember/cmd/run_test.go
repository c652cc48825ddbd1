package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/emberlang/ember/internal/langerror"
)

func writeTempScript(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "script.ember")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp script: %s", err)
	}
	return path
}

func TestRunSourceReturnsFinalValue(t *testing.T) {
	path := writeTempScript(t, "let x = 2 + 3 * 4; x = x - 5; x;")

	value, err := runSource(mustRead(t, path))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got := value.String(); got != "9" {
		t.Fatalf("value = %q, want %q", got, "9")
	}
}

func TestExitCodeForSyntaxError(t *testing.T) {
	err := langerror.New(langerror.InvalidExpression, "Expect expression")
	if got := exitCodeFor(err); got != exitSyntax {
		t.Fatalf("exitCodeFor(InvalidExpression) = %d, want %d", got, exitSyntax)
	}
}

func TestExitCodeForRuntimeError(t *testing.T) {
	err := langerror.New(langerror.DivideByZero, "Division by zero")
	if got := exitCodeFor(err); got != exitRuntime {
		t.Fatalf("exitCodeFor(DivideByZero) = %d, want %d", got, exitRuntime)
	}
}

func TestExitCodeForUsageError(t *testing.T) {
	_, err := readSource("/no/such/file.ember")
	if got := exitCodeFor(err); got != exitUsage {
		t.Fatalf("exitCodeFor(file read error) = %d, want %d", got, exitUsage)
	}
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %s", path, err)
	}
	return string(content)
}
