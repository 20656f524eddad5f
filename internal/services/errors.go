package services

import "errors"

var (
	ErrTargetExists       = errors.New("target exists")
	ErrBusy               = errors.New("another file operation is in progress")
	ErrPickerUnavailable  = errors.New("native folder picker unavailable")
	ErrUnsupportedAction  = errors.New("unsupported action")
	ErrDestinationMissing = errors.New("destination required")
)
