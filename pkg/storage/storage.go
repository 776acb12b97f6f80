package storage

import (
	"context"
	"path"
)

// Storage stores public objects, such as banner images, and returns the URL
// they are served from.
type Storage interface {
	Upload(context.Context, *UploadObject) (*UploadResponse, error)
	BulkUpload(context.Context, []*UploadObject) ([]*UploadResponse, error)
}

type UploadObject struct {
	// Bucket falls back to the configured bucket when empty.
	Bucket   string
	Prefix   string
	FileName string
	Mime     string
	Data     []byte
}

// Key returns the object key under the prefix. The unique part keeps repeated
// uploads of the same file name from overwriting each other.
func (o *UploadObject) Key(unique string) string {
	return path.Join(o.Prefix, unique+"-"+o.FileName)
}

type UploadResponse struct {
	URL      string
	FileName string
}
