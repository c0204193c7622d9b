package database

import (
	"log"

	"task-tracker/tasktracker/models"

	"gorm.io/gorm"
)

// RunMigrations ensures the employees and tasks tables, their indexes and the
// cascading foreign key are in place.
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.Employee{},
		&models.Task{},
	)

	if err != nil {
		log.Printf("Migration failed: %v", err)
		return err
	}

	return nil
}
