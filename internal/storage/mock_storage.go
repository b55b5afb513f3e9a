package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"emprius-backend/internal/logger"
)

// MockStorage keeps files on the local filesystem and points upload and download
// URLs back at the server's own HTTP routes.
type MockStorage struct {
	baseURL   string
	imagesDir string
}

func NewMockStorage(baseURL, uploadsDir string) (*MockStorage, error) {
	imagesDir := filepath.Join(uploadsDir, "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &MockStorage{
		baseURL:   strings.TrimRight(baseURL, "/"),
		imagesDir: imagesDir,
	}, nil
}

func (m *MockStorage) UploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	if _, err := m.localPath(key); err != nil {
		return "", err
	}
	token := uuid.New().String()
	return fmt.Sprintf("%s/api/v1/upload/%s?key=%s", m.baseURL, token, url.QueryEscape(key)), nil
}

func (m *MockStorage) DownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if _, err := m.localPath(key); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/api/v1/download?key=%s", m.baseURL, url.QueryEscape(key)), nil
}

func (m *MockStorage) Exists(ctx context.Context, key string) (bool, int64, error) {
	p, err := m.localPath(key)
	if err != nil {
		return false, 0, err
	}
	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	p, err := m.localPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

func (m *MockStorage) Save(key string, r io.Reader) error {
	p, err := m.localPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	f, err := os.Create(p)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	logger.Debug("Stored file", "key", key, "bytes", n)
	return nil
}

func (m *MockStorage) Open(key string) (io.ReadCloser, error) {
	p, err := m.localPath(key)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// localPath maps key into imagesDir, refusing keys that would escape it.
func (m *MockStorage) localPath(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	clean := path.Clean(key)
	if clean != key || clean == "." || strings.HasPrefix(clean, "../") || clean == ".." {
		return "", ErrInvalidKey
	}
	return filepath.Join(m.imagesDir, filepath.FromSlash(clean)), nil
}
