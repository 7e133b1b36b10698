package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "SERVER_HOST", "SERVER_PORT", "DATABASE_DSN", "SQLITE_PATH",
		"SESSION_SECRET", "ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_NAME",
		"UPLOAD_DIR", "MAX_UPLOAD_BYTES", "REDIS_ADDR", "REDIS_PASSWORD",
		"REDIS_DB", "S3_BUCKET_NAME", "AWS_REGION", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "data/cookbook.db", cfg.SQLitePath)
	assert.Equal(t, devSessionSecret, cfg.SessionSecret)
	assert.Equal(t, "admin", cfg.AdminUsername)
	assert.Equal(t, devAdminPassword, cfg.AdminPassword)
	assert.Equal(t, "Admin", cfg.AdminName)
	assert.Equal(t, "data/uploads", cfg.UploadDir)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestLoadReadsOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_UPLOAD_BYTES", "1024")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int64(1024), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadRejectsBadUploadLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_UPLOAD_BYTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestProductionRequiresSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET is required")
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD is required")
}

func TestProductionRejectsDevelopmentDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", devSessionSecret)
	t.Setenv("ADMIN_PASSWORD", devAdminPassword)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET must not use the development default")
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD must not use the development default")
}

func TestProductionAcceptsRealSecrets(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "something-long-and-random")
	t.Setenv("ADMIN_PASSWORD", "a-strong-password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "something-long-and-random", cfg.SessionSecret)
}

func TestGetEnvironment(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "test")
	assert.Equal(t, Test, GetEnvironment())
	assert.False(t, IsProduction())
}
