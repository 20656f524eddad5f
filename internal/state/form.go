package state

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"picsort/internal/config"
	"picsort/internal/domain"
)

var ErrInvalidForm = errors.New("invalid settings")

// DestinationRow is one destination as entered in the settings form.
type DestinationRow struct {
	Slot string
	Name string
	Path string
	Key  string
}

type Form struct {
	SourceFolder string
	Rows         []DestinationRow
}

// FormFromConfig lists cfg's destinations in slot order.
func FormFromConfig(cfg config.Config) Form {
	form := Form{SourceFolder: cfg.SourceFolder}
	for _, slot := range SortedSlots(cfg.DestinationFolders) {
		destination := cfg.DestinationFolders[slot]
		form.Rows = append(form.Rows, DestinationRow{
			Slot: slot,
			Name: destination.Name,
			Path: destination.Path,
			Key:  destination.Key,
		})
	}
	return form
}

// BuildConfig turns a submitted form into a configuration. The destinations
// replace the old set entirely. Duplicate or reserved shortcuts are rejected
// here so a saved config never needs tie-breaking.
func BuildConfig(form Form) (config.Config, error) {
	source, err := absoluteFolder(form.SourceFolder)
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: source folder: %v", ErrInvalidForm, err)
	}
	cfg := config.Config{
		SourceFolder:       source,
		DestinationFolders: make(map[string]domain.Destination, len(form.Rows)),
	}
	keys := make(map[string]string, len(form.Rows))
	for index, row := range form.Rows {
		slot := strings.TrimSpace(row.Slot)
		path := strings.TrimSpace(row.Path)
		key := row.Key
		label := fmt.Sprintf("row %d", index+1)
		if slot == "" {
			return config.Config{}, fmt.Errorf("%w: %s has no slot", ErrInvalidForm, label)
		}
		if _, dup := cfg.DestinationFolders[slot]; dup {
			return config.Config{}, fmt.Errorf("%w: slot %q used twice", ErrInvalidForm, slot)
		}
		if path == "" {
			return config.Config{}, fmt.Errorf("%w: slot %q has no folder", ErrInvalidForm, slot)
		}
		if path, err = absoluteFolder(path); err != nil {
			return config.Config{}, fmt.Errorf("%w: slot %q folder: %v", ErrInvalidForm, slot, err)
		}
		if utf8.RuneCountInString(key) != 1 {
			return config.Config{}, fmt.Errorf("%w: slot %q needs a one-character key", ErrInvalidForm, slot)
		}
		if r, _ := utf8.DecodeRuneInString(key); unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return config.Config{}, fmt.Errorf("%w: slot %q key must be printable", ErrInvalidForm, slot)
		}
		if reservedKeys[key] {
			return config.Config{}, fmt.Errorf("%w: key %q is reserved", ErrInvalidForm, key)
		}
		if other, dup := keys[key]; dup {
			return config.Config{}, fmt.Errorf("%w: key %q used by slots %q and %q", ErrInvalidForm, key, other, slot)
		}
		keys[key] = slot

		name := strings.TrimSpace(row.Name)
		if name == "" {
			name = domain.DisplayName(path)
		}
		cfg.DestinationFolders[slot] = domain.Destination{Name: name, Path: path, Key: key}
	}
	return cfg, nil
}

// absoluteFolder resolves a typed folder against the working directory so a
// saved path means the same thing however picsort is started later.
func absoluteFolder(folder string) (string, error) {
	folder = strings.TrimSpace(folder)
	if folder == "" || filepath.IsAbs(folder) {
		return folder, nil
	}
	return filepath.Abs(folder)
}
