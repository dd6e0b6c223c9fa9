package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_url: https://api.golasco.example\nlog_level: debug\nrequest_timeout: 10s\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.golasco.example", cfg.APIURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [bad"), 0o600))

	_, err := loadFrom(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: https://from-file.example\n"), 0o600))

	t.Setenv("GOLASCO_API_URL", "https://from-env.example")

	cfg, err := loadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example", cfg.APIURL)
}
