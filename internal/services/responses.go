package services

import (
	"time"

	"picsort/internal/config"
)

type ListResult struct {
	Folder   string
	Paths    []string
	Problem  string
	Duration time.Duration
}

type ActionResult struct {
	ID         string
	Type       ActionType
	SourcePath string
	NewPath    string
	Duration   time.Duration
	Message    string
}

type ConfigResult struct {
	Config  config.Config
	Found   bool
	Problem string
}

type PickResult struct {
	Path   string
	Picked bool
}

type ImageInfo struct {
	Path    string
	Size    int64
	ModTime time.Time
	MIME    string
}
