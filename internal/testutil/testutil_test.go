package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixturePath_IndependentOfWorkingDir(t *testing.T) {
	t.Chdir(t.TempDir())

	info, err := os.Stat(FixturePath(t, "template-pair", "DummyOpponent.h"))
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestCopyFixture(t *testing.T) {
	dir := CopyFixture(t, "template-pair")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"DummyOpponent.h", "DummyOpponent.cpp"}, names)

	want, err := os.ReadFile(FixturePath(t, "template-pair", "DummyOpponent.cpp"))
	require.NoError(t, err)
	got, err := os.ReadFile(filepath.Join(dir, "DummyOpponent.cpp"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The copy is writable and separate from the fixture.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "DummyOpponent.cpp"), []byte("x"), 0o644))
	again, err := os.ReadFile(FixturePath(t, "template-pair", "DummyOpponent.cpp"))
	require.NoError(t, err)
	assert.Equal(t, want, again)
}
