package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"DATABASE_URL", "PORT", "JWT_SECRET", "ADMIN_EMAIL", "ADMIN_PASSWORD",
	"OCCUPANCY_REPORT_SCHEDULE", "CORS_ALLOWED_ORIGINS",
}

// clearEnv unsets every key for the test; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/cars")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/cars", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "@daily", cfg.ReportSchedule)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.JWTSecret)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, ErrDatabaseURLNotSet)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_URL=postgres://db/cars\n" +
		"PORT=7070\n" +
		"JWT_SECRET=s3cret\n" +
		"CORS_ALLOWED_ORIGINS=https://a.example, https://b.example ,\n" +
		"OCCUPANCY_REPORT_SCHEDULE=@every 1h\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db/cars", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port, "process env wins over the file")
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "@every 1h", cfg.ReportSchedule)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}
