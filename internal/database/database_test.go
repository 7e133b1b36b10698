package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aprilfamily/cookbook-backend/config"
	"github.com/aprilfamily/cookbook-backend/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		SQLitePath:    filepath.Join(t.TempDir(), "nested", "test.db"),
		AdminUsername: "admin",
		AdminPassword: "admin123",
		AdminName:     "Admin",
	}
}

func openTestDB(t *testing.T, cfg *config.Config) *gorm.DB {
	t.Helper()
	db, err := Open(cfg)
	require.NoError(t, err)
	db.Logger = logger.Default.LogMode(logger.Silent)
	require.NoError(t, Migrate(db))
	return db
}

func TestOpenCreatesSQLiteDirectory(t *testing.T) {
	cfg := testConfig(t)
	db := openTestDB(t, cfg)
	require.NoError(t, db.Exec("SELECT 1").Error)
	assert.FileExists(t, cfg.SQLitePath)
}

func TestMigrateCreatesSchema(t *testing.T) {
	cfg := testConfig(t)
	db := openTestDB(t, cfg)

	for _, model := range []any{
		&models.User{}, &models.Recipe{}, &models.PendingRecipe{},
		&models.Rating{}, &models.Comment{},
	} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestSeedAdmin(t *testing.T) {
	cfg := testConfig(t)
	db := openTestDB(t, cfg)

	require.NoError(t, SeedAdmin(db, cfg))

	var user models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&user).Error)
	assert.Equal(t, "Admin", user.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("admin123")))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	cfg := testConfig(t)
	db := openTestDB(t, cfg)

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedAdminSkipsWhenUsersExist(t *testing.T) {
	cfg := testConfig(t)
	db := openTestDB(t, cfg)

	require.NoError(t, db.Create(&models.User{
		Username:     "grandma",
		PasswordHash: "x",
		Name:         "Grandma",
	}).Error)
	require.NoError(t, SeedAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("username = ?", "admin").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSeedAdminRequiresPassword(t *testing.T) {
	cfg := testConfig(t)
	cfg.AdminPassword = ""
	db := openTestDB(t, cfg)

	assert.Error(t, SeedAdmin(db, cfg))
}
