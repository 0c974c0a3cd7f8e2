package storage

import (
	"context"
	"io"
	"time"
)

// PhotoRepository defines the interface for photo storage operations
type PhotoRepository interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, objectPath string) error
	GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}
