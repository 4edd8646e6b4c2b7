package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "dashboard.yaml", cfg.Path)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
	assert.Equal(t, "stdio", cfg.MCP.Transport)
	assert.Equal(t, ".", cfg.Scaffold().Root)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "panels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
path: ops.yaml
log_level: debug
serve:
  addr: ":9090"
make:
  module: example.com/shop
`), 0644))

	t.Setenv("PANELS_SERVE_WATCH", "true")
	t.Setenv("PANELS_LOG_LEVEL", "warn")

	v := viper.New()
	Init(v, path)
	used, err := Read(v)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "ops.yaml", cfg.Path)
	assert.Equal(t, ":9090", cfg.Serve.Addr)
	assert.True(t, cfg.Serve.Watch)
	assert.Equal(t, "warn", cfg.LogLevel, "env overrides file")
	assert.Equal(t, "example.com/shop", cfg.Scaffold().Module)
}

func TestRead_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	v := viper.New()
	Init(v, "")
	used, err := Read(v)
	require.NoError(t, err)
	assert.Empty(t, used)
}

func TestValidate(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("log_level", "loud")
	v.Set("mcp.transport", "carrier-pigeon")

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
	assert.Contains(t, err.Error(), "unknown mcp transport")
}
