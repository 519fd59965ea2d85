package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: clinic
  debug: false
  log:
    pretty: false
    level: info

http:
  port: 9090

postgres:
  host: db.internal
  port: 5432
  user: clinic
  password: secret
  dbName: clinic
  sslMode: require
  connMaxLifetime: 30m

secretKey:
  access: access-secret
  refresh: refresh-secret

auth:
  bcryptCost: 10
  accessTokenTTL: 15m
  refreshTokenTTL: 168h

pagination:
  defaultPageSize: 10
  maxPageSize: 100
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o600))
	return path
}

func TestLoadWithEnv(t *testing.T) {
	cfg, err := LoadWithEnv[Config](writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Postgres)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 30*time.Minute, cfg.Postgres.ConnMaxLifetime)
	assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	t.Setenv("CLINIC_HTTP__PORT", "8081")
	t.Setenv("CLINIC_POSTGRES__HOST", "override.internal")
	t.Setenv("CLINIC_SECRET_KEY__ACCESS", "from-env")

	cfg, err := LoadWithEnv[Config](writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "override.internal", cfg.Postgres.Host)
	assert.Equal(t, "from-env", cfg.SecretKey.Access)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config](filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	cfg := &PostgresConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "clinic",
		Password: "secret",
		DBName:   "clinic",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Contains(t, dsn, "TimeZone=UTC")
}
