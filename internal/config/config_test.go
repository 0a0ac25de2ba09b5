package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, ".fse/reports", cfg.ExportDir)
	assert.NotEmpty(t, cfg.Geocoder.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Geocoder.Timeout)
	assert.False(t, cfg.SMS.Enabled)
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_level: debug
geocoder:
  base_url: http://geocode.local
  timeout: 3s
sms:
  enabled: true
  gateway_url: http://sms.local/send
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://geocode.local", cfg.Geocoder.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Geocoder.Timeout)
	assert.True(t, cfg.SMS.Enabled)
	assert.Equal(t, "http://sms.local/send", cfg.SMS.GatewayURL)
	// Unspecified values keep their defaults.
	assert.Equal(t, ".fse/reports", cfg.ExportDir)
	assert.Equal(t, 10*time.Second, cfg.SMS.Timeout)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: [broken"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("geocoder:\n  timeout: fast\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
