package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shelfd-io/shelfd/config/modules"
	"github.com/shelfd-io/shelfd/config/options"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testYAML = `
log:
  level: debug
  format: json
server:
  port: 9000
  listen_on: 127.0.0.1
  timeout: 60
  use_bonjour: false
  auth_mode: basic
  ignored_fields: "#notes"
`

func TestLoaderFile(t *testing.T) {
	reg := options.Default()
	cfg := New(reg)
	err := NewLoader(reg, cfg).WithFileContent([]byte(testYAML)).Load()
	require.NoError(t, err)

	assert.Equal(t, modules.LogLevelDebug, cfg.Log.Level)
	assert.Equal(t, modules.LogFormatJson, cfg.Log.Format)
	assert.Equal(t, "/dev/stderr", cfg.Log.File)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.ListenOn)
	assert.Equal(t, 60.0, cfg.Server.Timeout)
	assert.False(t, cfg.Server.UseBonjour)
	assert.Equal(t, "basic", cfg.Server.AuthMode)
	assert.Equal(t, "#notes", cfg.Server.IgnoredFields)
	// untouched
	assert.Equal(t, 10, cfg.Server.WorkerCount)
	assert.True(t, cfg.Server.UseSendfile)
}

func TestLoaderFilename(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "shelfd.yml")
	require.NoError(t, os.WriteFile(filename, []byte(testYAML), 0o600))

	cfg := New(options.Default())
	require.NoError(t, Load(filename, nil, cfg, zap.NewNop().Sugar()))
	assert.Equal(t, 9000, cfg.Server.Port)

	cfg = New(options.Default())
	assert.Error(t, Load(filepath.Join(t.TempDir(), "missing.yml"), nil, cfg, zap.NewNop().Sugar()))
}

func TestLoaderInvalidFile(t *testing.T) {
	reg := options.Default()
	cfg := New(reg)
	err := NewLoader(reg, cfg).WithFileContent([]byte("server:\n  port: [1, 2]\n")).Load()
	assert.Error(t, err)
}

func TestLoaderEnv(t *testing.T) {
	reg := options.Default()
	cfg := New(reg)
	err := NewLoader(reg, cfg).
		WithEnvPrefix(EnvPrefix).
		WithEnv(map[string]string{
			"SHELFD_LOG_LEVEL":          "warn",
			"SHELFD_LOG_COLORED":        "true",
			"SHELFD_SERVER_PORT":        "8443",
			"SHELFD_SERVER_AUTH":        "true",
			"SHELFD_SERVER_TIMEOUT":     "30.5",
			"SHELFD_SERVER_SSL_KEYFILE": "/etc/key.pem",
			"SHELFD_SERVER_UNKNOWN":     "x",
		}).
		Load()
	require.NoError(t, err)

	assert.Equal(t, modules.LogLevelWarn, cfg.Log.Level)
	assert.True(t, cfg.Log.Colored)
	assert.Equal(t, 8443, cfg.Server.Port)
	assert.True(t, cfg.Server.Auth)
	assert.Equal(t, 30.5, cfg.Server.Timeout)
	assert.Equal(t, "/etc/key.pem", cfg.Server.SSLKeyfile)
}

func TestLoaderInvalidEnv(t *testing.T) {
	reg := options.Default()
	cfg := New(reg)
	err := NewLoader(reg, cfg).
		WithEnvPrefix(EnvPrefix).
		WithEnv(map[string]string{"SHELFD_SERVER_PORT": "http"}).
		Load()
	assert.Error(t, err)
}

func TestLoaderPrecedence(t *testing.T) {
	reg := options.Default()
	cfg := New(reg)
	err := NewLoader(reg, cfg).
		WithFileContent([]byte(testYAML)).
		WithEnvPrefix(EnvPrefix).
		WithEnv(map[string]string{
			"SHELFD_SERVER_PORT":      "9100",
			"SHELFD_SERVER_LISTEN_ON": "::",
		}).
		WithOverrides(map[string]any{"port": 9200, "typo": 1}).
		WithLogger(zap.NewNop().Sugar()).
		Load()
	require.NoError(t, err)

	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "::", cfg.Server.ListenOn)
	assert.Equal(t, 60.0, cfg.Server.Timeout)
	assert.Equal(t, modules.LogLevelDebug, cfg.Log.Level)
}

func TestLoaderNoSources(t *testing.T) {
	reg := options.Default()
	cfg := New(reg)
	require.NoError(t, NewLoader(reg, cfg).Load())
	assert.Equal(t, New(reg), cfg)
}

func TestLoadDefaultSources(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "shelfd.yml")
	require.NoError(t, os.WriteFile(filename, []byte(testYAML), 0o600))
	t.Setenv("SHELFD_SERVER_PORT", "7000")
	t.Setenv("SHELFD_SERVER_WORKER_COUNT", "3")

	cfg := New(options.Default())
	err := Load(filename, map[string]any{"worker_count": 5}, cfg, zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.WorkerCount)
	assert.Equal(t, "basic", cfg.Server.AuthMode)

	cfg = New(options.Default())
	err = Load("", map[string]any{"port": 8080.5}, cfg, zap.NewNop().Sugar())
	assert.ErrorContains(t, err, "is not an integer")
}
