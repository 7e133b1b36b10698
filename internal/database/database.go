package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aprilfamily/cookbook-backend/config"
	"github.com/aprilfamily/cookbook-backend/internal/models"
)

// Open connects to the configured database. A postgres DSN takes precedence;
// otherwise the store is a sqlite file on local disk.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	if cfg.DatabaseDSN != "" {
		log.Printf("Connecting to postgres database")
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("error opening postgres database: %w", err)
		}
		return db, nil
	}

	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	log.Printf("Opening sqlite database at %s", cfg.SQLitePath)
	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema. Safe to run at every start.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.PendingRecipe{},
		&models.Rating{},
		&models.Comment{},
	)
}

// SeedAdmin inserts the bootstrap admin account, but only when the users
// table is empty. Running it again is a no-op.
func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		return errors.New("admin password is not configured")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	user := models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Name:         cfg.AdminName,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("error seeding admin user: %w", err)
	}

	log.Printf("Seeded bootstrap admin user %q", cfg.AdminUsername)
	return nil
}
