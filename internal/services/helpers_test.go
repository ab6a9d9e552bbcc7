package services

import (
	"path/filepath"
	"testing"

	"github.com/callshield/callshield-backend/internal/database"
	"github.com/callshield/callshield-backend/internal/models"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "callshield-test.db")
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{Username: username, DisplayName: username}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user %q: %v", username, err)
	}
	return user
}

func createTestSettings(t *testing.T, db *gorm.DB, userID uint, threshold int) models.UserSettings {
	t.Helper()

	settings := models.DefaultSettings(userID)
	settings.AutoBlockThreshold = threshold
	if err := db.Create(&settings).Error; err != nil {
		t.Fatalf("create test settings for user %d: %v", userID, err)
	}
	return settings
}
