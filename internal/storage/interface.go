package storage

import (
	"context"
	"io"
)

// ObjectStorage defines the object-storage operations the ingestion pipeline
// needs. There is no atomic rename primitive; rename is Copy followed by
// Delete.
type ObjectStorage interface {
	// Put stores an object under key. Calling Put twice with the same key
	// overwrites; it is not idempotent from the caller's point of view.
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// MakePublic makes the object publicly readable and returns its public URL.
	MakePublic(ctx context.Context, key string) (string, error)

	// Copy duplicates srcKey to dstKey, preserving the source content type.
	// If the source object has no content type, none is fabricated.
	Copy(ctx context.Context, srcKey, dstKey string) error

	// Delete removes an object.
	Delete(ctx context.Context, key string) error
}
