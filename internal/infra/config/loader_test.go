package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.StorePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoader_Load_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "store_path = \"/tmp/my-tasks.json\"\nlog_level = \"debug\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/my-tasks.json", cfg.StorePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoader_Load_Malformed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("store_path = ["), 0o600))

	_, err := NewLoaderWithDir(dir).Load()
	assert.Error(t, err)
}

func TestLoader_Load_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := "store_path = \"/tmp/from-file.json\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	t.Setenv(EnvStorePath, "/tmp/from-env.json")

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.json", cfg.StorePath)
}

func TestLoader_Load_ExpandsHome(t *testing.T) {
	dir := t.TempDir()
	content := "store_path = \"~/tasks/tasks.json\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "tasks", "tasks.json"), cfg.StorePath)
}
