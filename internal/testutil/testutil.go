// Package testutil provides test helpers for opponentgen tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TemplateHeader is a minimal DummyOpponent.h with a self-reference and
// placeholder occurrences.
const TemplateHeader = "class DummyOpponent { /* see DummyOpponent.h */ };\n" +
	"#define OPPONENT_ID \"123456789\"\n"

// TemplateImpl is a minimal DummyOpponent.cpp including the header.
const TemplateImpl = "#include \"DummyOpponent.h\"\n" +
	"REGISTER_ALGORITHM(123456789)\n"

// FixturePath returns the absolute path to a file or directory under the
// repository's tests/fixtures.
func FixturePath(t *testing.T, parts ...string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate testutil source file")
	}
	root := filepath.Join(filepath.Dir(file), "..", "..")
	return filepath.Join(append([]string{root, "tests", "fixtures"}, parts...)...)
}

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteTemplatePair writes TemplateHeader and TemplateImpl into dir as
// DummyOpponent.h and DummyOpponent.cpp.
func WriteTemplatePair(t *testing.T, dir string) {
	t.Helper()
	WriteFile(t, dir, "DummyOpponent.h", TemplateHeader)
	WriteFile(t, dir, "DummyOpponent.cpp", TemplateImpl)
}

// CopyFixture copies the named fixture into a fresh test directory and
// returns its path.
func CopyFixture(t *testing.T, name string) string {
	t.Helper()
	dst := t.TempDir()
	if err := os.CopyFS(dst, os.DirFS(FixturePath(t, name))); err != nil {
		t.Fatalf("copying fixture %s: %v", name, err)
	}
	return dst
}
