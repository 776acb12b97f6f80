package storage

import (
	"context"

	"github.com/rifa-premiada/backend/pkg/errorx"
)

type unavailableStorage struct{}

// Unavailable rejects every upload. It stands in when no object storage is
// configured.
func Unavailable() *unavailableStorage {
	return &unavailableStorage{}
}

func (unavailableStorage) Upload(context.Context, *UploadObject) (*UploadResponse, error) {
	return nil, errorx.New(errorx.Unavailable, "Storage is not configured")
}

func (unavailableStorage) BulkUpload(context.Context, []*UploadObject) ([]*UploadResponse, error) {
	return nil, errorx.New(errorx.Unavailable, "Storage is not configured")
}
