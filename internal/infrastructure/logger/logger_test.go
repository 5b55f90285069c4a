package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/campusmart/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LogConfig
	}{
		{
			name: "console output",
			cfg:  config.LogConfig{Level: "debug", Format: "console", Output: "stdout"},
		},
		{
			name: "json output",
			cfg:  config.LogConfig{Level: "info", Format: "json", Output: "stderr"},
		},
		{
			name: "zero values fall back to defaults",
			cfg:  config.LogConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"unknown", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.level))
		})
	}
}

func TestNewWriter(t *testing.T) {
	t.Run("standard streams", func(t *testing.T) {
		for _, output := range []string{"stdout", "stderr", "STDOUT", ""} {
			assert.NotNil(t, newWriter(output))
		}
	})

	t.Run("file path", func(t *testing.T) {
		tmpFile, err := os.CreateTemp("", "campusmart-log-*.log")
		require.NoError(t, err)
		defer os.Remove(tmpFile.Name())
		tmpFile.Close()

		assert.NotNil(t, newWriter(tmpFile.Name()))
	})
}

func TestJSONLogOutput(t *testing.T) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		newEncoder("json"),
		zapcore.AddSync(&buf),
		zapcore.InfoLevel,
	)
	logger := zap.New(core)

	logger.Debug("hidden")
	logger.Info("stock reserved", zap.String("product", "taho"))

	var output map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "stock reserved", output["msg"])
	assert.Equal(t, "info", output["level"])
	assert.Equal(t, "taho", output["product"])
}
