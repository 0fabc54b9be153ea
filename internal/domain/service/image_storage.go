package service

import (
	"context"
	"io"
)

// ImageStorage keeps product images in an object store.
type ImageStorage interface {
	// Put stores data under key and returns the key actually used.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Open returns a reader for key and its content type.
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
	Delete(ctx context.Context, key string) error
}
