package services

import (
	"context"

	"golang.org/x/sync/semaphore"

	"picsort/internal/config"
)

// Serial lets one request through at a time. A call that arrives while
// another is in flight fails with ErrBusy instead of queueing. Describe is
// read-only and bypasses the gate.
type Serial struct {
	inner FileAccess
	gate  *semaphore.Weighted
}

func NewSerial(inner FileAccess) *Serial {
	return &Serial{inner: inner, gate: semaphore.NewWeighted(1)}
}

func (serial *Serial) enter() error {
	if !serial.gate.TryAcquire(1) {
		return ErrBusy
	}
	return nil
}

func (serial *Serial) leave() {
	serial.gate.Release(1)
}

func (serial *Serial) List(ctx context.Context, req ListRequest) (ListResult, error) {
	if err := serial.enter(); err != nil {
		return ListResult{Folder: req.Folder}, err
	}
	defer serial.leave()
	return serial.inner.List(ctx, req)
}

func (serial *Serial) Execute(ctx context.Context, req ActionRequest) (ActionResult, error) {
	if err := serial.enter(); err != nil {
		return ActionResult{Type: req.Type, SourcePath: req.SourcePath}, err
	}
	defer serial.leave()
	return serial.inner.Execute(ctx, req)
}

func (serial *Serial) Load(ctx context.Context) (ConfigResult, error) {
	if err := serial.enter(); err != nil {
		return ConfigResult{}, err
	}
	defer serial.leave()
	return serial.inner.Load(ctx)
}

func (serial *Serial) Save(ctx context.Context, cfg config.Config) error {
	if err := serial.enter(); err != nil {
		return err
	}
	defer serial.leave()
	return serial.inner.Save(ctx, cfg)
}

func (serial *Serial) PickFolder(ctx context.Context, req PickRequest) (PickResult, error) {
	if err := serial.enter(); err != nil {
		return PickResult{}, err
	}
	defer serial.leave()
	return serial.inner.PickFolder(ctx, req)
}

func (serial *Serial) Describe(ctx context.Context, req DescribeRequest) (ImageInfo, error) {
	return serial.inner.Describe(ctx, req)
}
