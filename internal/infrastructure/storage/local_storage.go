package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/campusmart/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

var _ FileStorage = (*LocalFileStorage)(nil)

// LocalFileStorage stores files on the local filesystem. The directory is
// expected to be served as static content by the HTTP server.
type LocalFileStorage struct {
	dir     string
	baseURL string
	logger  *zap.Logger
}

// NewLocalFileStorage creates a LocalFileStorage rooted at cfg.LocalDir.
func NewLocalFileStorage(cfg config.StorageConfig, logger *zap.Logger) (*LocalFileStorage, error) {
	dir := cfg.LocalDir
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalFileStorage{
		dir:     dir,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}, nil
}

// Store writes the file under dir/key and returns its public URL.
func (s *LocalFileStorage) Store(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	cleaned, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(cleaned), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(cleaned)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + key, nil
}

// Delete removes the file stored under the given key.
func (s *LocalFileStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	cleaned, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(cleaned); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Dir returns the root directory, for mounting as a static route.
func (s *LocalFileStorage) Dir() string {
	return s.dir
}

// resolve joins the key with the root and rejects path traversal.
func (s *LocalFileStorage) resolve(key string) (string, error) {
	cleaned := filepath.Join(s.dir, filepath.FromSlash(key))
	if !strings.HasPrefix(cleaned, filepath.Clean(s.dir)+string(os.PathSeparator)) {
		return "", errors.New("invalid storage key")
	}
	return cleaned, nil
}
