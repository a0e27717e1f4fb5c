// Package config provides configuration loading for the taskie CLI.
package config

import (
	"os"
	"path/filepath"
)

// ConfigFileName is the name of the config file inside the config dir.
const ConfigFileName = "config.toml"

// EnvStorePath is the environment variable overriding the store path.
const EnvStorePath = "TASKIE_STORE"

// Config holds the CLI settings.
type Config struct {
	StorePath string `toml:"store_path"` // path to the JSON task store
	LogLevel  string `toml:"log_level"`  // debug, info, warn or error
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StorePath: defaultStorePath(),
		LogLevel:  "info",
	}
}

// defaultStorePath returns ~/.taskie/tasks.json, or a relative fallback
// when the home directory cannot be resolved.
func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tasks.json"
	}
	return filepath.Join(home, ".taskie", "tasks.json")
}

// DefaultConfigDir returns the directory holding the config file:
// $XDG_CONFIG_HOME/taskie, falling back to ~/.config/taskie.
func DefaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "taskie")
}
