package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks carmarket/internal/storage Storage

// Storage defines the interface for listing photo storage.
type Storage interface {
	// GetPresignedPutURL generates a pre-signed URL for uploading an object.
	GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// PutObject uploads an object to storage.
	PutObject(ctx context.Context, key string, body io.Reader, contentType string) error
	// PublicURL returns the URL an uploaded object is served from.
	PublicURL(key string) string
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
