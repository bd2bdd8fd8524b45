package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khairuladnan/StudentMS_Backend/internal/constants"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: development
  name: studentms
  version: 1.2.3
database:
  host: localhost
  port: 5432
  name: studentms
  user: postgres
  password: secret
server:
  host: 127.0.0.1
  port: 9090
jwt:
  secret: test-secret
  expiry: 2h
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.ServerAddress())
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.Contains(t, cfg.Database.ConnectionString(), "dbname=studentms")
	assert.Contains(t, cfg.Database.ConnectionString(), "sslmode=disable")
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DB_USER", "postgres")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, constants.EnvDevelopment, cfg.App.Environment)
	assert.Equal(t, constants.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, constants.DefaultReadTimeout, cfg.Server.ReadTimeout)
	assert.Equal(t, constants.DefaultWriteTimeout, cfg.Server.WriteTimeout)
	assert.Equal(t, constants.DefaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, constants.DefaultJWTExpiry, cfg.JWT.Expiry)
	assert.Equal(t, constants.DefaultBcryptCost, cfg.Password.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_EXPIRY", "30m")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example.com, http://b.example.com")

	path := writeConfigFile(t, `
database:
  user: postgres
server:
  port: 9090
jwt:
  secret: file-secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiry)
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_RejectsInvalidEnvironment(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: staging
database:
  user: postgres
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid environment")
}

func TestLoad_ProductionRequiresJWTSecret(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: production
database:
  user: postgres
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestLoad_RequiresDatabaseUser(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: development
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database user")
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	path := writeConfigFile(t, `
database:
  user: postgres
logging:
  level: loud
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}
