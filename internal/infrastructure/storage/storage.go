// Package storage provides file storage backends for uploaded images,
// payment receipts and product photos.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/campusmart/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileStorage stores uploaded files and returns public URLs for them.
type FileStorage interface {
	// Store writes the file under the given key and returns its public URL.
	Store(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	// Delete removes the file stored under the given key.
	Delete(ctx context.Context, key string) error
}

// allowed upload extensions, lowercase
var allowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ImageContentType returns the content type for an allowed image filename,
// or false if the extension is not accepted for upload.
func ImageContentType(filename string) (string, bool) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedImageExtensions[ext]
	return contentType, ok
}

// ReceiptKey builds a unique storage key for a payment receipt upload.
func ReceiptKey(filename string) string {
	return "receipts/" + uuid.New().String() + strings.ToLower(path.Ext(filename))
}

// ProductImageKey builds a unique storage key for a product photo upload.
func ProductImageKey(filename string) string {
	return "products/" + uuid.New().String() + strings.ToLower(path.Ext(filename))
}

// New creates the FileStorage selected by configuration.
func New(cfg config.StorageConfig, logger *zap.Logger) (FileStorage, error) {
	switch cfg.Provider {
	case "s3":
		return NewS3FileStorage(cfg, logger)
	case "local", "":
		return NewLocalFileStorage(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}
