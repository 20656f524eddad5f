package domain

import (
	"path"
	"path/filepath"
	"strings"
)

type Destination struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Key  string `json:"key"`
}

// extensionOrder lists the recognized extensions in display order.
var extensionOrder = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".webp"}

var imageExtensions = func() map[string]bool {
	set := make(map[string]bool, len(extensionOrder))
	for _, ext := range extensionOrder {
		set[ext] = true
	}
	return set
}()

func ImageExtensions() []string {
	return append([]string(nil), extensionOrder...)
}

func IsImage(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// DisplayName returns the last non-empty segment of a folder path written
// with either separator convention.
func DisplayName(folder string) string {
	slashed := strings.ReplaceAll(folder, `\`, "/")
	slashed = strings.TrimRight(slashed, "/")
	if slashed == "" {
		return ""
	}
	return path.Base(slashed)
}
