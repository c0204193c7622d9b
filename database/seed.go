package database

import (
	"log"

	"task-tracker/tasktracker/models"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// Seed inserts a fixed set of sample employees and tasks on first run. It is
// idempotent: as soon as any employee row exists it does nothing.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("Seeding sample employees and tasks...")

	return db.Transaction(func(tx *gorm.DB) error {
		employees := []models.Employee{
			{Name: "Alice Johnson", Email: "alice.johnson@example.com", Department: "Engineering", Position: "Backend Developer"},
			{Name: "Bob Smith", Email: "bob.smith@example.com", Department: "Engineering", Position: "Frontend Developer"},
			{Name: "Carol White", Email: "carol.white@example.com", Department: "Design", Position: "UX Designer"},
			{Name: "David Brown", Email: "david.brown@example.com", Department: "Marketing", Position: "Content Strategist"},
		}
		if err := tx.Create(&employees).Error; err != nil {
			return err
		}

		tasks := []models.Task{
			{
				Title:       "Set up CI pipeline",
				Description: strPtr("Configure the build and test pipeline for the main repository"),
				Status:      models.TaskStatusInProgress,
				Priority:    models.TaskPriorityHigh,
				EmployeeID:  employees[0].ID,
				DueDate:     strPtr("2025-02-15"),
			},
			{
				Title:       "Review API error responses",
				Description: strPtr("Audit all endpoints for consistent error payloads"),
				Status:      models.TaskStatusPending,
				Priority:    models.TaskPriorityMedium,
				EmployeeID:  employees[0].ID,
			},
			{
				Title:      "Redesign dashboard layout",
				Status:     models.TaskStatusPending,
				Priority:   models.TaskPriorityMedium,
				EmployeeID: employees[2].ID,
				DueDate:    strPtr("2025-03-01"),
			},
			{
				Title:       "Fix mobile navigation",
				Description: strPtr("Menu overlaps content on small screens"),
				Status:      models.TaskStatusCompleted,
				Priority:    models.TaskPriorityHigh,
				EmployeeID:  employees[1].ID,
			},
			{
				Title:      "Draft Q2 campaign brief",
				Status:     models.TaskStatusPending,
				Priority:   models.TaskPriorityLow,
				EmployeeID: employees[3].ID,
				DueDate:    strPtr("2025-04-10"),
			},
		}
		return tx.Create(&tasks).Error
	})
}
