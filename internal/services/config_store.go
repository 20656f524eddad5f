package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"picsort/internal/config"
)

type FSConfigStore struct {
	path   string
	logger *zap.Logger
}

func NewFSConfigStore(path string, logger *zap.Logger) *FSConfigStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FSConfigStore{path: path, logger: logger}
}

func (store *FSConfigStore) Path() string {
	return store.path
}

// Load never fails on a missing or broken file; both mean "not configured".
func (store *FSConfigStore) Load(ctx context.Context) (ConfigResult, error) {
	if err := ctx.Err(); err != nil {
		return ConfigResult{}, err
	}
	cfg, err := config.Load(store.path)
	if err != nil {
		if !errors.Is(err, config.ErrNotFound) {
			store.logger.Warn("config unusable", zap.String("path", store.path), zap.Error(err))
		}
		return ConfigResult{Config: config.DefaultConfig(), Found: false, Problem: err.Error()}, nil
	}
	store.logger.Info("config loaded",
		zap.String("path", store.path),
		zap.String("source", cfg.SourceFolder),
		zap.Int("destinations", len(cfg.DestinationFolders)))
	return ConfigResult{Config: cfg, Found: true}, nil
}

func (store *FSConfigStore) Save(ctx context.Context, cfg config.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := config.Save(store.path, cfg); err != nil {
		store.logger.Error("config save failed", zap.String("path", store.path), zap.Error(err))
		return err
	}
	store.logger.Info("config saved", zap.String("path", store.path))
	return nil
}
