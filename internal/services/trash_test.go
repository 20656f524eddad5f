package services

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// binTrash stands in for the desktop recycle bin by moving files into dir.
func binTrash(t *testing.T, dir string) SystemTrash {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o700))
	return SystemTrash{trash: func(paths ...string) error {
		for _, path := range paths {
			if err := os.Rename(path, filepath.Join(dir, filepath.Base(path))); err != nil {
				return err
			}
		}
		return nil
	}}
}

func TestSystemTrashPassesPathThrough(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "夏休み", "海辺.png")
	writeFile(t, source, "image")

	var got []string
	trash := SystemTrash{trash: func(paths ...string) error {
		got = append(got, paths...)
		return nil
	}}
	require.NoError(t, trash.Trash(source))
	assert.Equal(t, []string{source}, got)
}

func TestSystemTrashMissingFileSkipsBackend(t *testing.T) {
	called := false
	trash := SystemTrash{trash: func(...string) error {
		called = true
		return nil
	}}
	err := trash.Trash(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, called)
}

func TestSystemTrashWrapsBackendError(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.png")
	writeFile(t, source, "image")
	refused := errors.New("recycle bin unavailable")

	err := SystemTrash{trash: func(...string) error { return refused }}.Trash(source)
	require.ErrorIs(t, err, refused)
	assert.Contains(t, err.Error(), "move to trash")
	assert.FileExists(t, source)
}

func TestDefaultTrasherIsSystemTrash(t *testing.T) {
	trash, ok := DefaultTrasher().(SystemTrash)
	require.True(t, ok)
	assert.NotNil(t, trash.trash)
}
