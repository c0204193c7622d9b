package services

import (
	"errors"

	"task-tracker/tasktracker/database"
	"task-tracker/tasktracker/models"

	"gorm.io/gorm"
)

type EmployeeServiceInterface interface {
	GetAllEmployees(db *database.Database) ([]models.Employee, error)
	GetEmployeeById(db *database.Database, id uint) (models.Employee, error)
	GetEmployeeWithTasks(db *database.Database, id uint) (models.Employee, error)
	CreateEmployee(db *database.Database, input CreateEmployeeInput) (models.Employee, error)
	UpdateEmployee(db *database.Database, id uint, input UpdateEmployeeInput) (models.Employee, error)
	DeleteEmployee(db *database.Database, id uint) error
}

type EmployeeService struct{}

func (s *EmployeeService) GetAllEmployees(db *database.Database) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := db.DB.Order("name ASC").Find(&employees).Error; err != nil {
		return nil, err
	}
	for i := range employees {
		if employees[i].Tasks == nil {
			employees[i].Tasks = []models.Task{}
		}
	}
	return employees, nil
}

func (s *EmployeeService) GetEmployeeById(db *database.Database, id uint) (models.Employee, error) {
	var employee models.Employee
	if err := db.DB.First(&employee, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, err
	}
	return employee, nil
}

func (s *EmployeeService) GetEmployeeWithTasks(db *database.Database, id uint) (models.Employee, error) {
	var employee models.Employee
	err := db.DB.
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&employee, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Employee{}, ErrEmployeeNotFound
		}
		return models.Employee{}, err
	}
	if employee.Tasks == nil {
		employee.Tasks = []models.Task{}
	}
	return employee, nil
}

func (s *EmployeeService) CreateEmployee(db *database.Database, input CreateEmployeeInput) (models.Employee, error) {
	if err := input.Validate(); err != nil {
		return models.Employee{}, err
	}

	employee := models.Employee{
		Name:       input.Name,
		Email:      input.Email,
		Department: input.Department,
		Position:   input.Position,
	}

	if err := db.DB.Create(&employee).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return models.Employee{}, ErrDuplicateEmail
		}
		return models.Employee{}, err
	}

	return employee, nil
}

func (s *EmployeeService) UpdateEmployee(db *database.Database, id uint, input UpdateEmployeeInput) (models.Employee, error) {
	if err := input.Validate(); err != nil {
		return models.Employee{}, err
	}

	var employee models.Employee
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&employee, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		updates := map[string]interface{}{}
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.Department != nil {
			updates["department"] = *input.Department
		}
		if input.Position != nil {
			updates["position"] = *input.Position
		}

		// Nothing supplied: the record is returned as-is.
		if len(updates) == 0 {
			return nil
		}

		if err := tx.Model(&employee).Updates(updates).Error; err != nil {
			if database.IsUniqueViolation(err) {
				return ErrDuplicateEmail
			}
			return err
		}

		return tx.First(&employee, id).Error
	})
	if err != nil {
		return models.Employee{}, err
	}

	return employee, nil
}

// DeleteEmployee removes the employee and all of its tasks in one
// transaction, so no reader can observe a half-applied cascade.
func (s *EmployeeService) DeleteEmployee(db *database.Database, id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var employee models.Employee
		if err := tx.First(&employee, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEmployeeNotFound
			}
			return err
		}

		if err := tx.Where("employee_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Delete(&employee).Error
	})
}

var EmployeeServiceInstance EmployeeServiceInterface = &EmployeeService{}
