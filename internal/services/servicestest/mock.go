// Package servicestest provides a testify mock of the File Access Service.
package servicestest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"picsort/internal/config"
	"picsort/internal/services"
)

type Mock struct {
	mock.Mock
}

var _ services.FileAccess = (*Mock)(nil)

func New() *Mock {
	return &Mock{}
}

func (m *Mock) List(ctx context.Context, req services.ListRequest) (services.ListResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(services.ListResult), args.Error(1)
}

func (m *Mock) Execute(ctx context.Context, req services.ActionRequest) (services.ActionResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(services.ActionResult), args.Error(1)
}

func (m *Mock) Load(ctx context.Context) (services.ConfigResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.ConfigResult), args.Error(1)
}

func (m *Mock) Save(ctx context.Context, cfg config.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *Mock) PickFolder(ctx context.Context, req services.PickRequest) (services.PickResult, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(services.PickResult), args.Error(1)
}

func (m *Mock) Describe(ctx context.Context, req services.DescribeRequest) (services.ImageInfo, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(services.ImageInfo), args.Error(1)
}

// Listing makes List answer folder with paths.
func (m *Mock) Listing(folder string, paths ...string) *mock.Call {
	return m.On("List", mock.Anything, services.ListRequest{Folder: folder}).
		Return(services.ListResult{Folder: folder, Paths: paths}, nil)
}

// AnyDescribe answers every Describe call with an empty ImageInfo.
func (m *Mock) AnyDescribe() *mock.Call {
	return m.On("Describe", mock.Anything, mock.Anything).Return(services.ImageInfo{}, nil).Maybe()
}
