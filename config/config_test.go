package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cipher.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CIPHER_ALLOWED_ORIGINS", "")
	t.Setenv("CIPHER_LOG_LEVEL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CIPHER_ALLOWED_ORIGINS", "")
	t.Setenv("CIPHER_LOG_LEVEL", "")

	path := writeConfig(t, `
server:
  port: "9000"
  allowed_origins: ["https://example.com"]
  shutdown_timeout: 3s
limits:
  max_text_bytes: 2048
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"https://example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(2048), cfg.Limits.MaxTextBytes)
	assert.Equal(t, Default().Limits.MaxUploadBytes, cfg.Limits.MaxUploadBytes)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("CIPHER_ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("CIPHER_LOG_LEVEL", "warn")

	cfg, err := Load(writeConfig(t, "server:\n  port: \"9000\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CIPHER_ALLOWED_ORIGINS", "")
	t.Setenv("CIPHER_LOG_LEVEL", "")

	_, err := Load(writeConfig(t, "server: [not, a, map]"))
	require.Error(t, err)

	_, err = Load(writeConfig(t, "log:\n  level: loud\n"))
	require.ErrorContains(t, err, "unknown log level")

	_, err = Load(writeConfig(t, "limits:\n  max_text_bytes: -1\n"))
	require.ErrorContains(t, err, "limits must be positive")
}
