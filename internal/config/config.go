// Package config resolves client configuration for the quiz service
// connection. Precedence: command-line flag, then environment, then the
// user's config file, then built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Env var names recognized by the client.
const (
	EnvServer  = "WIKIQUIZ_SERVER"
	EnvTimeout = "WIKIQUIZ_TIMEOUT"
)

// DefaultServerURL is where the quiz service listens in local development.
const DefaultServerURL = "http://localhost:8000"

// DefaultTimeout bounds a single request. Quiz generation scrapes the
// article and round-trips an LLM server-side, so this is generous.
const DefaultTimeout = 120 * time.Second

// Config holds the resolved client settings.
type Config struct {
	// ServerURL is the quiz service base URL, without a trailing slash.
	ServerURL string `yaml:"server_url"`

	// Timeout is the per-request timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// fileConfig is the on-disk shape; timeout is a duration string ("90s").
type fileConfig struct {
	ServerURL string `yaml:"server_url"`
	Timeout   string `yaml:"timeout"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ServerURL: DefaultServerURL,
		Timeout:   DefaultTimeout,
	}
}

// Load resolves the configuration. flagServer is the --server flag value
// ("" when unset) and takes highest priority.
func Load(flagServer string) (Config, error) {
	cfg := Default()

	path, err := DefaultConfigPath()
	if err == nil {
		if fileCfg, err := loadFile(path); err != nil {
			return Config{}, err
		} else if fileCfg != nil {
			applyFile(&cfg, fileCfg)
		}
	}

	if v := os.Getenv(EnvServer); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	if flagServer != "" {
		cfg.ServerURL = flagServer
	}

	cfg.ServerURL = strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/")
	if cfg.ServerURL == "" {
		return Config{}, fmt.Errorf("server URL is empty")
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return cfg, nil
}

// DefaultConfigPath resolves the config file location:
// $XDG_CONFIG_HOME/wikiquiz/config.yaml, falling back to
// ~/.config/wikiquiz/config.yaml.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "wikiquiz", "config.yaml"), nil
}

// loadFile reads and parses the yaml config file. A missing file is not an
// error; it returns (nil, nil).
func loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

func applyFile(cfg *Config, fc *fileConfig) {
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.Timeout != "" {
		if d, err := time.ParseDuration(fc.Timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
}
