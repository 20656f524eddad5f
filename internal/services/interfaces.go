package services

import (
	"context"

	"picsort/internal/config"
)

type Lister interface {
	List(ctx context.Context, req ListRequest) (ListResult, error)
}

type Actions interface {
	Execute(ctx context.Context, req ActionRequest) (ActionResult, error)
}

type ConfigStore interface {
	Load(ctx context.Context) (ConfigResult, error)
	Save(ctx context.Context, cfg config.Config) error
}

type FolderPicker interface {
	PickFolder(ctx context.Context, req PickRequest) (PickResult, error)
}

type Describer interface {
	Describe(ctx context.Context, req DescribeRequest) (ImageInfo, error)
}

// FileAccess is everything the session asks of the filesystem and the OS.
type FileAccess interface {
	Lister
	Actions
	ConfigStore
	FolderPicker
	Describer
}
