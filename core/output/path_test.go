package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestUniquePath_Sequence(t *testing.T) {
	dir := t.TempDir()

	first := UniquePath(dir, "base", ".md")
	assert.Equal(t, filepath.Join(dir, "base.md"), first)
	touch(t, first)

	second := UniquePath(dir, "base", ".md")
	assert.Equal(t, filepath.Join(dir, "base-2.md"), second)
	touch(t, second)

	third := UniquePath(dir, "base", ".md")
	assert.Equal(t, filepath.Join(dir, "base-3.md"), third)
}

func TestUniquePath_DefaultExtension(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, filepath.Join(dir, "notes.md"), UniquePath(dir, "notes", ""))
}

func TestUniquePath_FillsFirstGap(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.md"))
	touch(t, filepath.Join(dir, "a-3.md"))

	assert.Equal(t, filepath.Join(dir, "a-2.md"), UniquePath(dir, "a", ".md"))
}

func TestUniquePath_ExtensionsIndependent(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "shot.md"))

	assert.Equal(t, filepath.Join(dir, "shot.png"), UniquePath(dir, "shot", ".png"))
}
