// Package storage keeps the content of uploaded logs on the local filesystem
// or in an S3-compatible bucket.
package storage

import (
	"context"
	"fmt"

	"github.com/septer/septer/internal/config"
	apperrors "github.com/septer/septer/internal/errors"
)

// ErrObjectNotFound indicates no content is stored under the requested key.
var ErrObjectNotFound = apperrors.Wrap(apperrors.ErrNotFound, "object not found")

// ErrInvalidKey indicates a key that could escape the storage root.
var ErrInvalidKey = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid storage key")

// Storage stores opaque blobs under flat keys.
type Storage interface {
	// Put stores data under key, replacing any previous content.
	Put(ctx context.Context, key string, data []byte) error

	// Get returns the content stored under key or ErrObjectNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the Storage selected by STORAGE_DRIVER.
func New(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "local", "":
		return NewLocalStorage(cfg.StorageLocalDir)
	case "s3":
		return NewS3Storage(ctx, S3Options{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.StorageDriver)
	}
}
