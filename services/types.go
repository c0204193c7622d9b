package services

import (
	"time"

	"task-tracker/tasktracker/models"
)

// CreateEmployeeInput is the create schema: every field is mandatory.
type CreateEmployeeInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// UpdateEmployeeInput is the partial schema. A nil field was not supplied and
// keeps its stored value; a non-nil field must still satisfy its rule.
type UpdateEmployeeInput struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
}

// CreateTaskInput is the create schema for tasks. Status and priority fall
// back to their defaults when not supplied.
type CreateTaskInput struct {
	Title       string               `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	EmployeeID  uint                 `json:"employeeId"`
	DueDate     *string              `json:"dueDate"`
	Priority    *models.TaskPriority `json:"priority"`
}

// UpdateTaskInput is the partial schema for tasks.
type UpdateTaskInput struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *models.TaskStatus   `json:"status"`
	EmployeeID  *uint                `json:"employeeId"`
	DueDate     *string              `json:"dueDate"`
	Priority    *models.TaskPriority `json:"priority"`
}

// TaskFilter narrows task listings. Both filters AND-combine when set.
type TaskFilter struct {
	Status     *models.TaskStatus
	EmployeeID *uint
}

// TaskWithEmployee is a task row joined with its owner's name.
type TaskWithEmployee struct {
	ID           uint                `json:"id"`
	Title        string              `json:"title"`
	Description  *string             `json:"description"`
	Status       models.TaskStatus   `json:"status"`
	EmployeeID   uint                `json:"employeeId"`
	EmployeeName string              `json:"employeeName"`
	DueDate      *string             `json:"dueDate"`
	Priority     models.TaskPriority `json:"priority"`
	CreatedAt    time.Time           `json:"createdAt"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}

// TaskDetail is a single task joined with its owner's name and email.
type TaskDetail struct {
	TaskWithEmployee
	EmployeeEmail string `json:"employeeEmail"`
}

// StatusCounts breaks the task total down by status.
type StatusCounts struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

// EmployeeTaskCount is one row of the per-employee breakdown. Employees with
// zero tasks are included.
type EmployeeTaskCount struct {
	EmployeeID uint   `json:"employeeId"`
	Name       string `json:"name"`
	TaskCount  int64  `json:"taskCount"`
}

type DashboardStats struct {
	TotalTasks       int64               `json:"totalTasks"`
	CompletedTasks   int64               `json:"completedTasks"`
	CompletionRate   int                 `json:"completionRate"`
	StatusCounts     StatusCounts        `json:"statusCounts"`
	TasksPerEmployee []EmployeeTaskCount `json:"tasksPerEmployee"`
}
