package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/campusmart/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLocalStorage(t *testing.T) *LocalFileStorage {
	s, err := NewLocalFileStorage(config.StorageConfig{
		LocalDir: t.TempDir(),
		BaseURL:  "http://localhost:8080/uploads",
	}, zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestLocalFileStorage_Store(t *testing.T) {
	t.Run("writes file and returns public URL", func(t *testing.T) {
		s := newLocalStorage(t)

		url, err := s.Store(context.Background(), "receipts/r1.jpg", strings.NewReader("fake image"), "image/jpeg")

		assert.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/uploads/receipts/r1.jpg", url)

		data, err := os.ReadFile(filepath.Join(s.Dir(), "receipts", "r1.jpg"))
		require.NoError(t, err)
		assert.Equal(t, "fake image", string(data))
	})

	t.Run("rejects empty key", func(t *testing.T) {
		s := newLocalStorage(t)

		_, err := s.Store(context.Background(), "", strings.NewReader("x"), "image/jpeg")

		assert.Error(t, err)
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		s := newLocalStorage(t)

		_, err := s.Store(context.Background(), "../escape.jpg", strings.NewReader("x"), "image/jpeg")

		assert.Error(t, err)
	})
}

func TestLocalFileStorage_Delete(t *testing.T) {
	t.Run("removes stored file", func(t *testing.T) {
		s := newLocalStorage(t)

		_, err := s.Store(context.Background(), "products/p1.png", strings.NewReader("img"), "image/png")
		require.NoError(t, err)

		err = s.Delete(context.Background(), "products/p1.png")

		assert.NoError(t, err)
		_, statErr := os.Stat(filepath.Join(s.Dir(), "products", "p1.png"))
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		s := newLocalStorage(t)

		err := s.Delete(context.Background(), "receipts/missing.jpg")

		assert.NoError(t, err)
	})
}

func TestImageContentType(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"receipt.jpg", "image/jpeg", true},
		{"receipt.JPEG", "image/jpeg", true},
		{"photo.png", "image/png", true},
		{"photo.webp", "image/webp", true},
		{"document.pdf", "", false},
		{"noextension", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, ok := ImageContentType(tt.filename)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReceiptKey(t *testing.T) {
	t.Run("keeps extension and generates unique names", func(t *testing.T) {
		k1 := ReceiptKey("payment.JPG")
		k2 := ReceiptKey("payment.JPG")

		assert.True(t, strings.HasPrefix(k1, "receipts/"))
		assert.True(t, strings.HasSuffix(k1, ".jpg"))
		assert.NotEqual(t, k1, k2)
	})
}

func TestProductImageKey(t *testing.T) {
	t.Run("keeps extension", func(t *testing.T) {
		k := ProductImageKey("photo.png")

		assert.True(t, strings.HasPrefix(k, "products/"))
		assert.True(t, strings.HasSuffix(k, ".png"))
	})
}

func TestNew(t *testing.T) {
	t.Run("defaults to local provider", func(t *testing.T) {
		s, err := New(config.StorageConfig{LocalDir: t.TempDir()}, zap.NewNop())

		require.NoError(t, err)
		assert.IsType(t, &LocalFileStorage{}, s)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		_, err := New(config.StorageConfig{Provider: "ftp"}, zap.NewNop())

		assert.Error(t, err)
	})
}
