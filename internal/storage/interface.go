package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

var (
	ErrNotFound   = errors.New("file not found")
	ErrInvalidKey = errors.New("invalid storage key")
)

// Storage keeps rating images. Clients upload and download through the URLs it
// hands out, the server only ever deals in keys.
type Storage interface {
	// UploadURL returns a URL the client PUTs the file to.
	UploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error)
	DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)
	// Exists reports whether key was uploaded and its size in bytes.
	Exists(ctx context.Context, key string) (bool, int64, error)
	Delete(ctx context.Context, key string) error
}

// LocalStore is a Storage whose bytes are served by this process.
type LocalStore interface {
	Storage
	Save(key string, r io.Reader) error
	Open(key string) (io.ReadCloser, error)
}
