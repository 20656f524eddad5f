package services

import (
	"fmt"
	"os"

	"github.com/Bios-Marcel/wastebasket/v2"
)

type Trasher interface {
	Trash(path string) error
}

// SystemTrash hands files to the desktop's recycle bin: the FreeDesktop home
// trash on Linux and BSD, ~/.Trash on macOS and the Recycle Bin on Windows.
type SystemTrash struct {
	trash func(paths ...string) error
}

func DefaultTrasher() Trasher {
	return SystemTrash{trash: wastebasket.Trash}
}

func (trash SystemTrash) Trash(path string) error {
	if _, err := os.Lstat(path); err != nil {
		return err
	}
	if err := trash.trash(path); err != nil {
		return fmt.Errorf("move to trash: %w", err)
	}
	return nil
}
