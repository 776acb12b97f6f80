package testutil

import (
	"context"

	"github.com/rifa-premiada/backend/pkg/storage"
	"github.com/stretchr/testify/mock"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(
	ctx context.Context, obj *storage.UploadObject,
) (*storage.UploadResponse, error) {
	args := m.Called(ctx, obj)
	resp, _ := args.Get(0).(*storage.UploadResponse)
	return resp, args.Error(1)
}

func (m *MockStorage) BulkUpload(
	ctx context.Context, objs []*storage.UploadObject,
) ([]*storage.UploadResponse, error) {
	args := m.Called(ctx, objs)
	resp, _ := args.Get(0).([]*storage.UploadResponse)
	return resp, args.Error(1)
}
