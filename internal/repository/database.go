package repository

import (
	"fmt"
	"strings"

	"github.com/IshitaGujarathi/ercisetracker-main/internal/config"
	"github.com/IshitaGujarathi/ercisetracker-main/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg config.Config) (*gorm.DB, error) {
	var dialer gorm.Dialector
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialer = postgres.Open(cfg.DatabaseURL)
	} else if strings.HasPrefix(cfg.DatabaseURL, "sqlite") {
		dialer = sqlite.Open(strings.TrimPrefix(cfg.DatabaseURL, "sqlite://"))
	} else {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialer, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// SyncSchema creates missing tables and indexes. The username unique
// index is the store-level uniqueness guarantee for users.
func SyncSchema(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Exercise{}, &models.AuditLog{})
}
