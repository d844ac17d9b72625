package storage

import (
	"context"
	"io"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/storage_mocks.go -package=mocks

// ObjectStorage holds export files. Objects are private; readers get a
// presigned link.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, contentType string, size int64) error
	GetSignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
