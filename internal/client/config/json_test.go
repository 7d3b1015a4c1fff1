package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	t.Run("overlays present keys only", func(t *testing.T) {
		path := writeTempJSON(t, `{"storage_backend":"redis","redis_addr":"r:1","cookie_ttl":3600000000000}`)

		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "redis", cfg.StorageBackend)
		assert.Equal(t, "r:1", cfg.RedisAddr)
		assert.Equal(t, time.Hour, cfg.CookieTTL)
		assert.Equal(t, "storefront.db", cfg.DBPath)
		assert.Equal(t, 0, cfg.RedisDB)
	})

	t.Run("no flag leaves config alone", func(t *testing.T) {
		cfg := defaults()
		require.NoError(t, parseJSON(cfg, []string{"-s", "memory"}))
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		path := writeTempJSON(t, `{ this is not valid json`)
		require.Error(t, parseJSON(defaults(), []string{"-c", path}))
	})

	t.Run("invalid duration", func(t *testing.T) {
		path := writeTempJSON(t, `{"cookie_ttl":"forever"}`)
		require.Error(t, parseJSON(defaults(), []string{"-c", path}))
	})
}
