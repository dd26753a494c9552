package object

import (
	"context"
	"io"
)

// PutResult describes a stored object.
type PutResult struct {
	Location  string
	ETag      string
	SizeBytes int64
}

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) (PutResult, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}
