package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FSActions struct {
	trash  Trasher
	logger *zap.Logger
}

func NewFSActions(trash Trasher, logger *zap.Logger) *FSActions {
	if trash == nil {
		trash = DefaultTrasher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FSActions{trash: trash, logger: logger}
}

func (actions *FSActions) Execute(ctx context.Context, req ActionRequest) (ActionResult, error) {
	start := time.Now()
	result := ActionResult{ID: uuid.NewString(), Type: req.Type, SourcePath: req.SourcePath}
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if err := validateRequest(req); err != nil {
		return result, err
	}

	var err error
	switch req.Type {
	case ActionMove:
		result.NewPath, err = actions.moveToFolder(req.SourcePath, req.Destination)
		result.Message = "move complete"
	case ActionTrash:
		err = actions.trash.Trash(req.SourcePath)
		result.Message = "trash complete"
	default:
		return result, fmt.Errorf("%w: %s", ErrUnsupportedAction, req.Type)
	}
	result.Duration = time.Since(start)
	if err != nil {
		result.Message = fmt.Sprintf("%s failed", req.Type)
		actions.logger.Warn("file action failed",
			zap.String("id", result.ID),
			zap.String("action", string(req.Type)),
			zap.String("path", req.SourcePath),
			zap.String("destination", req.Destination),
			zap.Error(err))
		return result, err
	}
	actions.logger.Info("file action complete",
		zap.String("id", result.ID),
		zap.String("action", string(req.Type)),
		zap.String("path", req.SourcePath),
		zap.String("newPath", result.NewPath),
		zap.Duration("duration", result.Duration))
	return result, nil
}

func (actions *FSActions) moveToFolder(source, folder string) (string, error) {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("create destination: %w", err)
	}
	target := filepath.Join(folder, filepath.Base(source))
	if err := movePath(source, target); err != nil {
		return "", err
	}
	return target, nil
}

func validateRequest(req ActionRequest) error {
	if req.SourcePath == "" {
		return fmt.Errorf("no source provided")
	}
	if req.Type == ActionMove && req.Destination == "" {
		return ErrDestinationMissing
	}
	return nil
}

// movePath renames source to target without ever replacing an existing
// target, copying across filesystems when a plain rename is not possible.
func movePath(source, target string) error {
	err := renameNoReplace(source, target)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrExist):
		return fmt.Errorf("%w: %s", ErrTargetExists, target)
	case !errors.Is(err, syscall.EXDEV):
		return err
	}
	info, statErr := os.Stat(source)
	if statErr != nil {
		return statErr
	}
	if err := copyFile(source, target, info); err != nil {
		return err
	}
	return os.Remove(source)
}

// linkRename claims target with a hard link, which fails if target exists,
// then drops source. Filesystems without hard links fall back to a checked
// rename.
func linkRename(source, target string) error {
	err := os.Link(source, target)
	if err == nil {
		return os.Remove(source)
	}
	if errors.Is(err, fs.ErrExist) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.EXDEV) {
		return err
	}
	if exists(target) {
		return &os.LinkError{Op: "rename", Old: source, New: target, Err: fs.ErrExist}
	}
	return os.Rename(source, target)
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func copyFile(source, target string, info os.FileInfo) error {
	input, err := os.Open(source)
	if err != nil {
		return err
	}
	defer input.Close()

	output, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("%w: %s", ErrTargetExists, target)
		}
		return err
	}
	if _, err := io.Copy(output, input); err != nil {
		_ = output.Close()
		_ = os.Remove(target)
		return err
	}
	if err := output.Close(); err != nil {
		_ = os.Remove(target)
		return err
	}
	_ = os.Chtimes(target, time.Now(), info.ModTime())
	return nil
}
