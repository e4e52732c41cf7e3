// internal/storage/db.go
package storage

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MehvishSheikh/attendance-webapp/internal/models"
)

// OpenDB connects to Postgres when the URL looks like a Postgres DSN and
// falls back to a local SQLite file otherwise, then migrates and seeds the
// registered-office catalog.
func OpenDB(databaseURL string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") ||
		strings.HasPrefix(databaseURL, "postgresql://") ||
		strings.Contains(databaseURL, "host=") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedLocations(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Location{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedLocations inserts the default office catalog on first boot.
func SeedLocations(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Location{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count locations: %w", err)
	}
	if count > 0 {
		return nil
	}

	offices := []models.Location{
		{Pincode: "500001", Name: "Hyderabad Office"},
		{Pincode: "600001", Name: "Chennai Office"},
		{Pincode: "400001", Name: "Mumbai Office"},
		{Pincode: "110001", Name: "Delhi Office"},
		{Pincode: "560001", Name: "Bangalore Office"},
	}
	if err := db.Create(&offices).Error; err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	return nil
}
