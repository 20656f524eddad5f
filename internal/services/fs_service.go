package services

import "go.uber.org/zap"

// FS is the File Access Service backed by the local filesystem.
type FS struct {
	*FSLister
	*FSActions
	*FSConfigStore
	FolderPicker
}

func NewFS(configPath string, logger *zap.Logger) *FS {
	if logger == nil {
		logger = zap.NewNop()
	}
	named := logger.Named("fs")
	return &FS{
		FSLister:      NewFSLister(named),
		FSActions:     NewFSActions(DefaultTrasher(), named),
		FSConfigStore: NewFSConfigStore(configPath, named),
		FolderPicker:  NewNativePicker(named),
	}
}
