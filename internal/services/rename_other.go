//go:build !linux

package services

func renameNoReplace(source, target string) error {
	return linkRename(source, target)
}
