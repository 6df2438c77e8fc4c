package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned by Get when no object is stored at the path.
var ErrNotExist = errors.New("storage: object does not exist")

// Storage stores opaque blobs under relative paths.
type Storage interface {
	Save(ctx context.Context, path string, content io.Reader) error
	// Get returns the content stored at path. The caller closes it.
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	// Delete removes path. Deleting a missing path is not an error.
	Delete(ctx context.Context, path string) error
}
