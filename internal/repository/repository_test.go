package repository

import (
	"testing"
	"time"

	"pointtrail/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.PointHistory{}, &models.SystemSetting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedEntry(t *testing.T, db *gorm.DB, userID uint, activity string, points int, createdAt time.Time) models.PointHistory {
	t.Helper()
	e := models.PointHistory{
		UserID:       userID,
		ActivityType: activity,
		Points:       points,
		CreatedAt:    createdAt,
	}
	if err := db.Create(&e).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}
	return e
}
