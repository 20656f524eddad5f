package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, data string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
}

func TestListFiltersByExtensionCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.png"), "a")
	writeFile(t, filepath.Join(dir, "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "c.JPG"), "c")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.png"), 0o755))

	result, err := NewFSLister(nil).List(context.Background(), ListRequest{Folder: dir})
	require.NoError(t, err)
	assert.Empty(t, result.Problem)
	assert.Equal(t, []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "c.JPG")}, result.Paths)
}

func TestListAcceptsEveryRecognizedExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.jpg", "2.jpeg", "3.png", "4.gif", "5.bmp", "6.webp", "7.tiff", "8.WEBP"} {
		writeFile(t, filepath.Join(dir, name), "x")
	}

	result, err := NewFSLister(nil).List(context.Background(), ListRequest{Folder: dir})
	require.NoError(t, err)
	assert.Len(t, result.Paths, 7)
	assert.NotContains(t, result.Paths, filepath.Join(dir, "7.tiff"))
}

func TestListUnreadableFolderDegradesToEmpty(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	result, err := NewFSLister(nil).List(context.Background(), ListRequest{Folder: missing})
	require.NoError(t, err)
	assert.Empty(t, result.Paths)
	assert.NotEmpty(t, result.Problem)
}

func TestListEmptyFolderPath(t *testing.T) {
	result, err := NewFSLister(nil).List(context.Background(), ListRequest{})
	require.NoError(t, err)
	assert.Empty(t, result.Paths)
}

func TestDescribeSniffsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.jpg")
	writeFile(t, path, "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	info, err := NewFSLister(nil).Describe(context.Background(), DescribeRequest{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "image/png", info.MIME)
	assert.Equal(t, int64(16), info.Size)
	assert.False(t, info.ModTime.IsZero())
}

func TestDescribeMissingFile(t *testing.T) {
	_, err := NewFSLister(nil).Describe(context.Background(), DescribeRequest{Path: filepath.Join(t.TempDir(), "nope.png")})
	assert.Error(t, err)
}

func TestDescribeReusesCachedMIMEUntilFileChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	writeFile(t, path, "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	lister := NewFSLister(nil)

	first, err := lister.Describe(context.Background(), DescribeRequest{Path: path})
	require.NoError(t, err)
	second, err := lister.Describe(context.Background(), DescribeRequest{Path: path})
	require.NoError(t, err)
	assert.Equal(t, first.MIME, second.MIME)
	assert.Equal(t, 1, lister.cache.len())

	writeFile(t, path, "GIF89a\x01\x00\x01\x00\x00\x00\x00")
	changed, err := lister.Describe(context.Background(), DescribeRequest{Path: path})
	require.NoError(t, err)
	assert.Equal(t, "image/gif", changed.MIME)

	require.NoError(t, os.Remove(path))
	_, err = lister.Describe(context.Background(), DescribeRequest{Path: path})
	assert.Error(t, err)
	assert.Equal(t, 0, lister.cache.len())
}
