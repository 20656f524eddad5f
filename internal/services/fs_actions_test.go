package services

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveCreatesDestinationFolder(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src", "a.png")
	writeFile(t, source, "image")
	destination := filepath.Join(dir, "sorted", "keep")

	actions := NewFSActions(binTrash(t, filepath.Join(dir, "trash")), nil)
	result, err := actions.Execute(context.Background(), ActionRequest{Type: ActionMove, SourcePath: source, Destination: destination})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(destination, "a.png"), result.NewPath)
	assert.NoFileExists(t, source)

	data, err := os.ReadFile(result.NewPath)
	require.NoError(t, err)
	assert.Equal(t, "image", string(data))
}

func TestMoveRefusesNameCollision(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "src", "a.png")
	writeFile(t, source, "new")
	destination := filepath.Join(dir, "keep")
	writeFile(t, filepath.Join(destination, "a.png"), "old")

	actions := NewFSActions(binTrash(t, filepath.Join(dir, "trash")), nil)
	_, err := actions.Execute(context.Background(), ActionRequest{Type: ActionMove, SourcePath: source, Destination: destination})
	require.ErrorIs(t, err, ErrTargetExists)

	assert.FileExists(t, source)
	data, err := os.ReadFile(filepath.Join(destination, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestRenameNoReplaceKeepsExistingTarget(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.png")
	target := filepath.Join(dir, "keep", "a.png")
	writeFile(t, source, "new")
	writeFile(t, target, "old")

	err := renameNoReplace(source, target)
	require.ErrorIs(t, err, fs.ErrExist)
	assert.FileExists(t, source)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestLinkRenameMovesAndRefusesExistingTarget(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.png")
	target := filepath.Join(dir, "b.png")
	writeFile(t, source, "image")

	require.NoError(t, linkRename(source, target))
	assert.NoFileExists(t, source)
	assert.FileExists(t, target)

	writeFile(t, source, "second")
	require.ErrorIs(t, linkRename(source, target), fs.ErrExist)
	assert.FileExists(t, source)
}

func TestMovePathReportsCollisionAsTargetExists(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.png")
	target := filepath.Join(dir, "b.png")
	writeFile(t, source, "new")
	writeFile(t, target, "old")

	assert.ErrorIs(t, movePath(source, target), ErrTargetExists)
	assert.FileExists(t, source)
}

func TestMoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	actions := NewFSActions(binTrash(t, filepath.Join(dir, "trash")), nil)
	_, err := actions.Execute(context.Background(), ActionRequest{
		Type:        ActionMove,
		SourcePath:  filepath.Join(dir, "missing.png"),
		Destination: filepath.Join(dir, "keep"),
	})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTargetExists)
}

func TestMoveRequiresDestination(t *testing.T) {
	actions := NewFSActions(binTrash(t, t.TempDir()), nil)
	_, err := actions.Execute(context.Background(), ActionRequest{Type: ActionMove, SourcePath: "/tmp/a.png"})
	assert.ErrorIs(t, err, ErrDestinationMissing)
}

func TestExecuteRejectsUnknownAction(t *testing.T) {
	actions := NewFSActions(binTrash(t, t.TempDir()), nil)
	_, err := actions.Execute(context.Background(), ActionRequest{Type: "copy", SourcePath: "/tmp/a.png"})
	assert.ErrorIs(t, err, ErrUnsupportedAction)
}

func TestTrashActionUsesTrasher(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "a.png")
	writeFile(t, source, "image")
	trashDir := filepath.Join(dir, "bin")

	actions := NewFSActions(binTrash(t, trashDir), nil)
	result, err := actions.Execute(context.Background(), ActionRequest{Type: ActionTrash, SourcePath: source})
	require.NoError(t, err)
	assert.Equal(t, ActionTrash, result.Type)
	assert.NotEmpty(t, result.ID)
	assert.NoFileExists(t, source)
	assert.FileExists(t, filepath.Join(trashDir, "a.png"))
}

func TestExecuteHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	actions := NewFSActions(binTrash(t, t.TempDir()), nil)
	_, err := actions.Execute(ctx, ActionRequest{Type: ActionTrash, SourcePath: "/tmp/a.png"})
	assert.ErrorIs(t, err, context.Canceled)
}
