package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultAPIURL is used when neither the config file nor the environment
// names a backend.
const DefaultAPIURL = "http://localhost:8000"

// Config holds client configuration.
//
// Resolution order (highest to lowest precedence):
// 1. Environment variables (GOLASCO_API_URL, GOLASCO_LOG_LEVEL, GOLASCO_LOG_FORMAT)
// 2. Config file (~/.golasco/config.yaml)
// 3. Built-in defaults
type Config struct {
	// APIURL is the base URL of the Golasco backend
	APIURL string `yaml:"api_url"`

	// RequestTimeout bounds every backend request
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		APIURL:         DefaultAPIURL,
		RequestTimeout: 30 * time.Second,
		LogLevel:       "warn",
		LogFormat:      "text",
	}
}

// Dir returns the user config directory (~/.golasco), creating nothing.
func Dir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".golasco")
}

// Load resolves configuration from file and environment.
// A missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	return loadFrom(filepath.Join(Dir(), "config.yaml"))
}

func loadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
		}
		if cfg.APIURL == "" {
			cfg.APIURL = DefaultAPIURL
		}
		if cfg.RequestTimeout <= 0 {
			cfg.RequestTimeout = 30 * time.Second
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("GOLASCO_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("GOLASCO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("GOLASCO_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
