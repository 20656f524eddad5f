package services

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// renameNoReplace refuses an existing target in the same syscall as the
// rename. Filesystems that reject RENAME_NOREPLACE use linkRename instead.
func renameNoReplace(source, target string) error {
	err := unix.Renameat2(unix.AT_FDCWD, source, unix.AT_FDCWD, target, unix.RENAME_NOREPLACE)
	if errors.Is(err, unix.EINVAL) || errors.Is(err, unix.ENOSYS) {
		return linkRename(source, target)
	}
	if err != nil {
		return &os.LinkError{Op: "rename", Old: source, New: target, Err: err}
	}
	return nil
}
