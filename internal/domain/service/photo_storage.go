package service

import (
	"context"
	"io"
)

// StoredPhoto is an opened stored photo. The caller closes Body.
type StoredPhoto struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// PhotoStorage keeps maintenance photos.
type PhotoStorage interface {
	// Save stores the upload under a timestamp-prefixed key derived from filename and returns the key.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)

	// Open returns the stored photo for key.
	Open(ctx context.Context, key string) (*StoredPhoto, error)
}
