package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

// NativePicker opens the operating system's folder chooser.
type NativePicker struct {
	logger *zap.Logger
}

func NewNativePicker(logger *zap.Logger) *NativePicker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NativePicker{logger: logger}
}

func (picker *NativePicker) PickFolder(ctx context.Context, req PickRequest) (PickResult, error) {
	options := []zenity.Option{zenity.Context(ctx), zenity.Directory()}
	if req.Title != "" {
		options = append(options, zenity.Title(req.Title))
	}
	if req.Start != "" {
		options = append(options, zenity.Filename(req.Start))
	}
	path, err := zenity.SelectFile(options...)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return PickResult{}, nil
		}
		picker.logger.Info("native picker unavailable", zap.Error(err))
		return PickResult{}, fmt.Errorf("%w: %v", ErrPickerUnavailable, err)
	}
	if path == "" {
		return PickResult{}, nil
	}
	return PickResult{Path: path, Picked: true}, nil
}
