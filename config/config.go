package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Development fallbacks. Validation refuses both in production so that real
// deployments must supply their own secrets.
const (
	devSessionSecret = "dev-session-secret"
	devAdminPassword = "admin123"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Database configuration. DatabaseDSN selects postgres; when empty the
	// store is a sqlite file at SQLitePath.
	DatabaseDSN string
	SQLitePath  string

	// Session configuration
	SessionSecret string

	// Bootstrap admin account, seeded only when the users table is empty
	AdminUsername string
	AdminPassword string
	AdminName     string

	// Upload handling
	UploadDir      string
	MaxUploadBytes int64

	// Redis configuration (optional, enables the login rate limiter)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// S3 archive of original uploads (optional)
	S3Bucket string
	S3Region string

	// CORS
	AllowedOrigins []string
}

// Load builds a Config from environment variables and validates it.
func Load() (*Config, error) {
	cfg := &Config{
		ServerHost:     getenv("SERVER_HOST", "0.0.0.0"),
		ServerPort:     getenv("SERVER_PORT", "8080"),
		DatabaseDSN:    os.Getenv("DATABASE_DSN"),
		SQLitePath:     getenv("SQLITE_PATH", "data/cookbook.db"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		AdminUsername:  getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		AdminName:      getenv("ADMIN_NAME", "Admin"),
		UploadDir:      getenv("UPLOAD_DIR", "data/uploads"),
		MaxUploadBytes: getenvInt64("MAX_UPLOAD_BYTES", 10<<20),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        int(getenvInt64("REDIS_DB", 0)),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		S3Region:       os.Getenv("AWS_REGION"),
		AllowedOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}

	// Outside production, fall back to development defaults so a bare
	// checkout runs without a secrets setup.
	if !IsProduction() {
		if cfg.SessionSecret == "" {
			cfg.SessionSecret = devSessionSecret
		}
		if cfg.AdminPassword == "" {
			cfg.AdminPassword = devAdminPassword
		}
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
