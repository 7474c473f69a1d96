package database

import (
	"dayflow-app/dayflow/models"

	"gorm.io/gorm"
)

// RunMigrations runs database migrations to ensure tables are up to date
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Note{},
		&models.Todo{},
		&models.Reminder{},
	)
}
