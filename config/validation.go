package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that required values are present and that development
// fallbacks are not running in production.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.SessionSecret == "" {
		errors = append(errors, "SESSION_SECRET is required")
	}
	if cfg.AdminPassword == "" {
		errors = append(errors, "ADMIN_PASSWORD is required")
	}
	if cfg.AdminUsername == "" {
		errors = append(errors, "ADMIN_USERNAME must not be empty")
	}
	if cfg.DatabaseDSN == "" && cfg.SQLitePath == "" {
		errors = append(errors, "either DATABASE_DSN or SQLITE_PATH must be set")
	}
	if cfg.MaxUploadBytes <= 0 {
		errors = append(errors, "MAX_UPLOAD_BYTES must be positive")
	}
	if cfg.ServerPort == "" {
		errors = append(errors, "SERVER_PORT must not be empty")
	}

	if IsProduction() {
		if cfg.SessionSecret == devSessionSecret {
			errors = append(errors, "SESSION_SECRET must not use the development default in production")
		}
		if cfg.AdminPassword == devAdminPassword {
			errors = append(errors, "ADMIN_PASSWORD must not use the development default in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}

	return nil
}
