// Package config manages qsolog configuration and the ~/.qsolog directory.
// It handles loading, saving, and initializing the configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	AppDir       = ".qsolog"
	ConfigFile   = "config"
	DatabaseFile = "qsolog.db"

	// HomeEnv overrides the location of the qsolog directory
	HomeEnv = "QSOLOG_HOME"
)

// ErrNotInitialized is returned by Load when no configuration exists yet
var ErrNotInitialized = errors.New("qsolog is not initialized (run 'qsolog init')")

// Config represents the qsolog configuration
type Config struct {
	DefaultProfile int64        `toml:"default_profile"` // 0 means none chosen
	LogLevel       string       `toml:"log_level"`
	LogFormat      string       `toml:"log_format"`
	Export         ExportConfig `toml:"export"`
	path           string       // path to the qsolog directory
}

// ExportConfig holds export defaults
type ExportConfig struct {
	// Directory that relative export paths are resolved against.
	// Empty means the working directory.
	Directory string `toml:"directory"`
}

// Default returns the configuration written by Initialize
func Default() *Config {
	return &Config{
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Root returns the qsolog directory: $QSOLOG_HOME if set, else ~/.qsolog
func Root() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, AppDir), nil
}

// Load loads the configuration from the qsolog directory
func Load() (*Config, error) {
	root, err := Root()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(root, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotInitialized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.path = root
	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	configPath := filepath.Join(c.path, ConfigFile)
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// Path returns the path to the qsolog directory
func (c *Config) Path() string {
	return c.path
}

// DatabasePath returns the path to the SQLite database
func (c *Config) DatabasePath() string {
	return filepath.Join(c.path, DatabaseFile)
}

// ResolveExportPath joins relative paths onto the configured export directory
func (c *Config) ResolveExportPath(p string) string {
	if p == "" || filepath.IsAbs(p) || c.Export.Directory == "" {
		return p
	}
	return filepath.Join(c.Export.Directory, p)
}

// Initialize creates the qsolog directory with a default configuration
func Initialize() (*Config, error) {
	root, err := Root()
	if err != nil {
		return nil, err
	}

	// Check if already initialized
	if _, err := os.Stat(filepath.Join(root, ConfigFile)); err == nil {
		return nil, fmt.Errorf("qsolog is already initialized in %s", root)
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", root, err)
	}

	cfg := Default()
	cfg.path = root

	if err := cfg.Save(); err != nil {
		return nil, err
	}

	return cfg, nil
}
