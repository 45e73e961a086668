package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV_FILE", "GIN_MODE", "PORT", "TZ", "TRUSTED_PROXIES",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME", "DB_SSLMODE", "SQLITE_PATH",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONNECT_ATTEMPTS", "DB_CONNECT_DELAY",
	"LOG_LEVEL", "LOG_FORMAT", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SHUTDOWN_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
	t.Setenv("GIN_MODE", "test")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, 10, cfg.DBConnectAttempts)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Zero(t, cfg.RateLimitRPS)
	assert.Equal(t, []string{"127.0.0.1", "::1"}, cfg.TrustedProxies)
	assert.Empty(t, cfg.EnvFile)
}

func TestLoad_ReleaseModeRequiresSSL(t *testing.T) {
	clearEnv(t)
	t.Setenv("GIN_MODE", "release")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "require", cfg.DBSSLMode)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/books.db")
	t.Setenv("DB_CONNECT_DELAY", "250ms")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/books.db", cfg.SQLitePath)
	assert.Equal(t, 250*time.Millisecond, cfg.DBConnectDelay)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("SHUTDOWN_TIMEOUT", "forever")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_MAX_OPEN_CONNS")
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_UnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)

	// godotenv never overrides variables that exist, even when empty.
	require.NoError(t, os.Unsetenv("DB_HOST"))
	require.NoError(t, os.Unsetenv("PORT"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST=db.internal\nPORT=9090\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_HOST")
		_ = os.Unsetenv("PORT")
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, path, cfg.EnvFile)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.Error(t, err)
}

func TestValidate_RateLimitBurst(t *testing.T) {
	cfg := &Config{
		DBDriver:          DriverSQLite,
		LogFormat:         "json",
		DBMaxOpenConns:    1,
		DBConnectAttempts: 1,
		RateLimitRPS:      1,
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_BURST")
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:    "localhost",
		DBUser:    "postgres",
		DBPass:    "secret",
		DBName:    "books",
		DBPort:    "5432",
		DBSSLMode: "disable",
		TZ:        "UTC",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=books port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN(),
	)
}
