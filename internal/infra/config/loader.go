package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Loader loads configuration from a TOML file.
type Loader struct {
	confDir string
}

// NewLoader creates a Loader reading from the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: DefaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(dir string) *Loader {
	return &Loader{confDir: dir}
}

// Path returns the config file path, or empty when no config dir could
// be resolved.
func (l *Loader) Path() string {
	if l.confDir == "" {
		return ""
	}
	return filepath.Join(l.confDir, ConfigFileName)
}

// Load returns the configuration: defaults, overlaid by the config file
// if present, overlaid by the TASKIE_STORE environment variable. A
// missing config file is not an error; a malformed one is.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	if path := l.Path(); path != "" {
		content, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// no config file, keep defaults
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			var fileCfg Config
			if err := toml.Unmarshal(content, &fileCfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
			if fileCfg.StorePath != "" {
				cfg.StorePath = expandHome(fileCfg.StorePath)
			}
			if fileCfg.LogLevel != "" {
				cfg.LogLevel = fileCfg.LogLevel
			}
		}
	}

	if env := os.Getenv(EnvStorePath); env != "" {
		cfg.StorePath = env
	}
	return cfg, nil
}

// expandHome resolves a leading "~/" against the user home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
