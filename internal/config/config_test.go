package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NotEmpty(t, cfg.Home)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("CLINBOOK_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CLINBOOK_HOME", home)

	content := "api_base_url: https://api.clinbook.example\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.clinbook.example", cfg.APIBaseURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	// unset fields keep their defaults
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CLINBOOK_HOME", home)
	t.Setenv("CLINBOOK_API_URL", "https://env.clinbook.example")

	content := "api_base_url: https://file.clinbook.example\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://env.clinbook.example", cfg.APIBaseURL)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CLINBOOK_HOME", home)

	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("api_base_url: [broken"), 0o644))

	_, err := Load()
	require.Error(t, err)
}

func TestSanitize(t *testing.T) {
	cfg := Config{HTTPTimeout: -1 * time.Second}
	cfg.Sanitize()

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestWriteRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CLINBOOK_HOME", home)

	cfg := Default()
	cfg.Home = home
	cfg.APIBaseURL = "https://rt.clinbook.example"
	require.NoError(t, cfg.Write())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://rt.clinbook.example", loaded.APIBaseURL)
}
