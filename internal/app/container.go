// Package app provides the dependency injection container for the CLI.
package app

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/ktsujichan/taskie/internal/infra/config"
	"github.com/ktsujichan/taskie/internal/infra/logging"
	"github.com/ktsujichan/taskie/internal/manager"
)

// Container wires configuration, logging and the task manager together
// for the command layer.
type Container struct {
	Config     *config.Config
	ConfigPath string // effective config file path ("" if unresolvable)
	Logger     *slog.Logger

	// StoreOverride is bound to the --file flag; when non-empty it wins
	// over config and environment.
	StoreOverride string
}

// New creates a Container from the default config directory.
func New() (*Container, error) {
	return NewWithLoader(config.NewLoader())
}

// NewWithLoader creates a Container using the given config loader.
// This is useful for testing.
func NewWithLoader(loader *config.Loader) (*Container, error) {
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(filepath.Dir(cfg.StorePath), logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		// Logging is best effort; fall back to a silent logger.
		logger = slog.New(slog.DiscardHandler)
	}

	return &Container{
		Config:     cfg,
		ConfigPath: loader.Path(),
		Logger:     logger,
	}, nil
}

// StorePath returns the effective task store path.
func (c *Container) StorePath() string {
	if c.StoreOverride != "" {
		return c.StoreOverride
	}
	return c.Config.StorePath
}

// OpenManager returns a manager hydrated from the store file. A store
// that does not exist yet yields an empty manager; first runs must not
// be fatal. Corrupt stores are logged and also yield an empty manager
// (manager.Open semantics).
func (c *Container) OpenManager() (*manager.Manager, error) {
	path := c.StorePath()
	m, err := manager.Open(path, manager.WithLogger(c.Logger))
	if err != nil {
		if manager.IsNotExist(err) {
			return manager.New(manager.WithLogger(c.Logger)), nil
		}
		return nil, err
	}
	return m, nil
}
