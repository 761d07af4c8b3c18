package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:4000", cfg.Address())
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "jobboard", cfg.Database.Name)
	assert.Equal(t, 72, cfg.JWT.TTL)
	assert.True(t, cfg.Auth.Enabled)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
server:
  port: 8080
  env: "production"
database:
  uri: "mongodb://file-host:27017"
  name: "fromfile"
jwt:
  secret: "file-secret"
  ttl: 24
auth:
  enabled: false
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MONGO_URI", "mongodb://env-host:27017")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUTH_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	// Environment wins over the file.
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, "mongodb://env-host:27017", cfg.Database.URI)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.Auth.Enabled)

	// File wins over the defaults.
	assert.Equal(t, "production", cfg.Server.Env)
	assert.Equal(t, "fromfile", cfg.Database.Name)
	assert.Equal(t, 24, cfg.JWT.TTL)
}
