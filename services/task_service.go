package services

import (
	"errors"
	"time"

	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/models"

	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	GetTasks(db *database.Database, filter TaskFilter) ([]TaskWithEmployee, error)
	GetTaskById(db *database.Database, id uint) (TaskDetail, error)
	CreateTask(db *database.Database, input CreateTaskInput) (models.Task, error)
	UpdateTask(db *database.Database, id uint, input UpdateTaskInput) (models.Task, error)
	DeleteTask(db *database.Database, id uint) error
}

type TaskService struct{}

func (s *TaskService) GetTasks(db *database.Database, filter TaskFilter) ([]TaskWithEmployee, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := db.DB.Model(&models.Task{}).
		Select("tasks.*, employees.name AS employee_name").
		Joins("JOIN employees ON employees.id = tasks.employee_id")

	if filter.Status != nil {
		query = query.Where("tasks.status = ?", *filter.Status)
	}
	if filter.EmployeeID != nil {
		query = query.Where("tasks.employee_id = ?", *filter.EmployeeID)
	}

	tasks := []TaskWithEmployee{}
	if err := query.Order("tasks.created_at DESC").Scan(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) GetTaskById(db *database.Database, id uint) (TaskDetail, error) {
	var task TaskDetail
	err := db.DB.Model(&models.Task{}).
		Select("tasks.*, employees.name AS employee_name, employees.email AS employee_email").
		Joins("JOIN employees ON employees.id = tasks.employee_id").
		Where("tasks.id = ?", id).
		First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskDetail{}, ErrTaskNotFound
		}
		return TaskDetail{}, err
	}
	return task, nil
}

// CreateTask inserts a task with defaults applied. The referenced employee is
// verified inside the same transaction as the insert, and the foreign key
// remains the authoritative check.
func (s *TaskService) CreateTask(db *database.Database, input CreateTaskInput) (models.Task, error) {
	if err := input.Validate(); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      models.TaskStatusPending,
		EmployeeID:  input.EmployeeID,
		DueDate:     input.DueDate,
		Priority:    models.TaskPriorityMedium,
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Employee{}).Where("id = ?", input.EmployeeID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrEmployeeReference
		}

		if err := tx.Create(&task).Error; err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrEmployeeReference
			}
			return err
		}
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

// UpdateTask applies only the supplied fields and refreshes updated_at on
// every call, including an empty patch.
func (s *TaskService) UpdateTask(db *database.Database, id uint, input UpdateTaskInput) (models.Task, error) {
	if err := input.Validate(); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTaskNotFound
			}
			return err
		}

		if input.EmployeeID != nil {
			var count int64
			if err := tx.Model(&models.Employee{}).Where("id = ?", *input.EmployeeID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrEmployeeReference
			}
		}

		updates := map[string]interface{}{
			"updated_at": time.Now(),
		}
		if input.Title != nil {
			updates["title"] = *input.Title
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Status != nil {
			updates["status"] = *input.Status
		}
		if input.EmployeeID != nil {
			updates["employee_id"] = *input.EmployeeID
		}
		if input.DueDate != nil {
			updates["due_date"] = *input.DueDate
		}
		if input.Priority != nil {
			updates["priority"] = *input.Priority
		}

		if err := tx.Model(&task).Updates(updates).Error; err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrEmployeeReference
			}
			return err
		}

		return tx.First(&task, id).Error
	})
	if err != nil {
		return models.Task{}, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(db *database.Database, id uint) error {
	result := db.DB.Delete(&models.Task{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

var TaskServiceInstance TaskServiceInterface = &TaskService{}
