package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored object.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader stores and serves binary assets (team crests, stadium photos).
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	// GetPublicURL returns the public address of an object, or "" when the
	// key is empty.
	GetPublicURL(key string) string
}
