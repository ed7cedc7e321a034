package storage

import (
	"context"
	"io"
)

// Store is the byte store behind the media lifecycle and canvas uploads.
// Keys are opaque; callers decide the layout. Implementations: MinIO
// (production), local disk, memory (tests).
type Store interface {
	// Write persists the stream under key, overwriting any existing object.
	// size may be -1 when unknown.
	Write(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// Exists reports whether bytes have been written under key.
	Exists(ctx context.Context, key string) (bool, error)

	// Open returns a reader over the stored bytes.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL returns the URL under which the object is served.
	PublicURL(key string) string
}
