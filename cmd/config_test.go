package cmd_test

import (
	"os"
	"path/filepath"
	"testing"

	"tracking/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"HTTP_PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
	"DB_NAME", "DB_SSLMODE", "SQLITE_PATH", "STATUS_REPORT_SCHEDULE", "EXCHANGE_MAX_RETRIES",
}

// clearEnv removes the config variables for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, cmd.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "tracking", cfg.DBName)
	assert.Equal(t, "0 * * * * *", cfg.StatusReportSchedule)
	assert.Equal(t, uint64(3), cfg.ExchangeMaxRetries)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/packages.db")
	t.Setenv("EXCHANGE_MAX_RETRIES", "7")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, cmd.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/packages.db", cfg.SQLitePath)
	assert.Equal(t, uint64(7), cfg.ExchangeMaxRetries)
}

func TestLoadConfig_DotenvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_NAME", "from_env")

	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("HTTP_PORT=9090\nDB_NAME=from_file\n"), 0o600))

	cfg, err := cmd.LoadConfig(file)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "from_env", cfg.DBName, "process environment wins over the file")
}

func TestLoadConfig_RejectsUnknownDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoadConfig_RejectsMalformedRetries(t *testing.T) {
	clearEnv(t)
	t.Setenv("EXCHANGE_MAX_RETRIES", "many")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := cmd.Config{
		DBHost:     "db",
		DBPort:     "5433",
		DBUser:     "tracker",
		DBPassword: "secret",
		DBName:     "tracking",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=tracker password=secret dbname=tracking sslmode=disable", cfg.PostgresDSN())
}
