// Package config loads the client configuration.
//
// Resolution order, lowest to highest precedence:
//  1. built-in defaults
//  2. config file (~/.clinbook/config.yaml)
//  3. environment variables (CLINBOOK_*), with a local .env honored first
//
// Command-line flags are applied by the cmd layer on top of the result.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/clinbook/clinbook/internal/errors"
)

// DefaultAPIBaseURL is the platform endpoint used when nothing is configured
const DefaultAPIBaseURL = "http://localhost:3000"

// Config holds all client configuration
type Config struct {
	// APIBaseURL is the base URL of the clinic platform API
	APIBaseURL string `yaml:"api_base_url" env:"CLINBOOK_API_URL"`

	// HTTPTimeout bounds every outbound API call
	HTTPTimeout time.Duration `yaml:"http_timeout" env:"CLINBOOK_HTTP_TIMEOUT"`

	// Home is the directory holding config.yaml and the persisted session
	Home string `yaml:"-" env:"CLINBOOK_HOME"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level" env:"CLINBOOK_LOG_LEVEL"`

	// LogFormat is text or json
	LogFormat string `yaml:"log_format" env:"CLINBOOK_LOG_FORMAT"`

	// NoColor disables styled terminal output
	NoColor bool `yaml:"no_color" env:"CLINBOOK_NO_COLOR"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		APIBaseURL:  DefaultAPIBaseURL,
		HTTPTimeout: 30 * time.Second,
		Home:        DefaultHome(),
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// DefaultHome returns ~/.clinbook, falling back to the working directory
// when the home directory cannot be determined.
func DefaultHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".clinbook"
	}
	return filepath.Join(homeDir, ".clinbook")
}

// Load resolves the effective configuration.
//
// A missing config file is not an error; a malformed one is, so the user
// never runs against half-applied settings without noticing.
func Load() (Config, error) {
	// A local .env is a development convenience, never required.
	_ = godotenv.Load()

	cfg := Default()

	// Home may be redirected via env before the file is read.
	if home := os.Getenv("CLINBOOK_HOME"); home != "" {
		cfg.Home = home
	}

	path := filepath.Join(cfg.Home, "config.yaml")
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.NewFileUnmarshalError(path, "yaml", err)
		}
	case os.IsNotExist(err):
		// defaults apply
	default:
		return Config{}, errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read config: %s", path), err)
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.NewConfigInvalidError("environment overrides", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// Sanitize applies guardrails to configuration values
func (c *Config) Sanitize() {
	if c.APIBaseURL == "" {
		c.APIBaseURL = DefaultAPIBaseURL
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = 30 * time.Second
	}
	if c.Home == "" {
		c.Home = DefaultHome()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}

// Write persists the configuration file under the config home
func (c Config) Write() error {
	if err := os.MkdirAll(c.Home, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("failed to create config home: %s", c.Home), err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileMarshal, "failed to encode configuration", err)
	}

	path := filepath.Join(c.Home, "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write config: %s", path), err)
	}
	return nil
}
