package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"CAMPUSMART_APP_NAME":          os.Getenv("CAMPUSMART_APP_NAME"),
		"CAMPUSMART_APP_ENV":           os.Getenv("CAMPUSMART_APP_ENV"),
		"CAMPUSMART_APP_PORT":          os.Getenv("CAMPUSMART_APP_PORT"),
		"CAMPUSMART_DATABASE_HOST":     os.Getenv("CAMPUSMART_DATABASE_HOST"),
		"CAMPUSMART_DATABASE_PORT":     os.Getenv("CAMPUSMART_DATABASE_PORT"),
		"CAMPUSMART_DATABASE_USER":     os.Getenv("CAMPUSMART_DATABASE_USER"),
		"CAMPUSMART_DATABASE_PASSWORD": os.Getenv("CAMPUSMART_DATABASE_PASSWORD"),
		"CAMPUSMART_DATABASE_DBNAME":   os.Getenv("CAMPUSMART_DATABASE_DBNAME"),
		"CAMPUSMART_DATABASE_SSLMODE":  os.Getenv("CAMPUSMART_DATABASE_SSLMODE"),
		"CAMPUSMART_JWT_SECRET":        os.Getenv("CAMPUSMART_JWT_SECRET"),
		"CAMPUSMART_STORAGE_PROVIDER":  os.Getenv("CAMPUSMART_STORAGE_PROVIDER"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "campusmart-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "campusmart", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "local", cfg.Storage.Provider)
		assert.Equal(t, int64(5<<20), cfg.Storage.MaxUploadSize)
	})

	t.Run("loads values from environment variables", func(t *testing.T) {
		clearEnv()
		os.Setenv("CAMPUSMART_APP_NAME", "test-app")
		os.Setenv("CAMPUSMART_APP_PORT", "9000")
		os.Setenv("CAMPUSMART_DATABASE_HOST", "testdb.local")
		os.Setenv("CAMPUSMART_DATABASE_PORT", "5433")
		os.Setenv("CAMPUSMART_DATABASE_PASSWORD", "testpass")
		os.Setenv("CAMPUSMART_STORAGE_PROVIDER", "s3")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "s3", cfg.Storage.Provider)
	})

	t.Run("rejects weak jwt secret in production", func(t *testing.T) {
		clearEnv()
		os.Setenv("CAMPUSMART_APP_ENV", "production")
		os.Setenv("CAMPUSMART_JWT_SECRET", "short")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production requires database password", func(t *testing.T) {
		clearEnv()
		os.Setenv("CAMPUSMART_APP_ENV", "production")
		os.Setenv("CAMPUSMART_JWT_SECRET", "a-sufficiently-long-secret-value-1234")
		os.Setenv("CAMPUSMART_DATABASE_SSLMODE", "require")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "campus",
		Password: "p@ss/word",
		DBName:   "campusmart",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()

	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "localhost:5432")
	assert.Contains(t, dsn, "sslmode=disable")
	// Special characters must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", cfg.Addr())
}
