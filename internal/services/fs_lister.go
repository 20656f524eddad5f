package services

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"picsort/internal/domain"
)

type FSLister struct {
	cache  *describeCache
	logger *zap.Logger
}

func NewFSLister(logger *zap.Logger) *FSLister {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FSLister{cache: newDescribeCache(), logger: logger}
}

// List returns the images directly inside req.Folder in directory order.
// An unreadable folder is not an error: the result is empty and Problem says why.
func (lister *FSLister) List(ctx context.Context, req ListRequest) (ListResult, error) {
	start := time.Now()
	result := ListResult{Folder: req.Folder, Paths: []string{}}
	if req.Folder == "" {
		return result, nil
	}
	folder, err := filepath.Abs(req.Folder)
	if err != nil {
		result.Problem = err.Error()
		return result, nil
	}
	result.Folder = folder

	entries, err := os.ReadDir(folder)
	if err != nil {
		result.Problem = err.Error()
		lister.logger.Warn("folder unreadable", zap.String("folder", folder), zap.Error(err))
		return result, nil
	}
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if entry.IsDir() || !domain.IsImage(entry.Name()) {
			continue
		}
		result.Paths = append(result.Paths, filepath.Join(folder, entry.Name()))
	}
	result.Duration = time.Since(start)
	lister.logger.Debug("listed images",
		zap.String("folder", folder),
		zap.Int("count", len(result.Paths)),
		zap.Duration("duration", result.Duration))
	return result, nil
}

func (lister *FSLister) Describe(ctx context.Context, req DescribeRequest) (ImageInfo, error) {
	info := ImageInfo{Path: req.Path}
	if err := ctx.Err(); err != nil {
		return info, err
	}
	stat, err := os.Stat(req.Path)
	if err != nil {
		lister.cache.forget(req.Path)
		return info, err
	}
	info.Size = stat.Size()
	info.ModTime = stat.ModTime()
	if mime, ok := lister.cache.lookup(req.Path, stat); ok {
		info.MIME = mime
		return info, nil
	}
	mtype, err := mimetype.DetectFile(req.Path)
	if err != nil {
		lister.logger.Debug("mime detection failed", zap.String("path", req.Path), zap.Error(err))
		return info, nil
	}
	info.MIME = mtype.String()
	lister.cache.store(req.Path, stat, info.MIME)
	return info, nil
}
