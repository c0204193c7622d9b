package services

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"task-tracker/tasktracker/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Shape-only: calendar validity of the digits is not checked.
	dueDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

func checkRequiredString(messages []string, value, field string, maxLen int) []string {
	if value == "" {
		return append(messages, fmt.Sprintf("%s is required", field))
	}
	if utf8.RuneCountInString(value) > maxLen {
		return append(messages, fmt.Sprintf("%s must be at most %d characters", field, maxLen))
	}
	return messages
}

func checkEmail(messages []string, email string) []string {
	if email == "" {
		return append(messages, "email is required")
	}
	if !emailPattern.MatchString(email) {
		return append(messages, "email must be a valid email address")
	}
	return messages
}

func checkDescription(messages []string, description *string) []string {
	if description != nil && utf8.RuneCountInString(*description) > 1000 {
		return append(messages, "description must be at most 1000 characters")
	}
	return messages
}

func checkStatus(messages []string, status *models.TaskStatus) []string {
	if status != nil && !models.ValidTaskStatus(*status) {
		return append(messages, "status must be one of: pending, in-progress, completed")
	}
	return messages
}

func checkPriority(messages []string, priority *models.TaskPriority) []string {
	if priority != nil && !models.ValidTaskPriority(*priority) {
		return append(messages, "priority must be one of: low, medium, high")
	}
	return messages
}

func checkDueDate(messages []string, dueDate *string) []string {
	if dueDate != nil && !dueDatePattern.MatchString(*dueDate) {
		return append(messages, "dueDate must match YYYY-MM-DD")
	}
	return messages
}

// Validate checks every rule of the employee create schema and reports all
// violations together.
func (in CreateEmployeeInput) Validate() error {
	var messages []string
	messages = checkRequiredString(messages, in.Name, "name", 100)
	messages = checkEmail(messages, in.Email)
	messages = checkRequiredString(messages, in.Department, "department", 100)
	messages = checkRequiredString(messages, in.Position, "position", 100)
	return validationError(messages)
}

// Validate checks the supplied fields of the employee partial schema.
func (in UpdateEmployeeInput) Validate() error {
	var messages []string
	if in.Name != nil {
		messages = checkRequiredString(messages, *in.Name, "name", 100)
	}
	if in.Email != nil {
		messages = checkEmail(messages, *in.Email)
	}
	if in.Department != nil {
		messages = checkRequiredString(messages, *in.Department, "department", 100)
	}
	if in.Position != nil {
		messages = checkRequiredString(messages, *in.Position, "position", 100)
	}
	return validationError(messages)
}

// Validate checks every rule of the task create schema and reports all
// violations together.
func (in CreateTaskInput) Validate() error {
	var messages []string
	messages = checkRequiredString(messages, in.Title, "title", 200)
	messages = checkDescription(messages, in.Description)
	messages = checkStatus(messages, in.Status)
	if in.EmployeeID == 0 {
		messages = append(messages, "employeeId is required and must be a positive integer")
	}
	messages = checkDueDate(messages, in.DueDate)
	messages = checkPriority(messages, in.Priority)
	return validationError(messages)
}

// Validate checks the supplied fields of the task partial schema.
func (in UpdateTaskInput) Validate() error {
	var messages []string
	if in.Title != nil {
		messages = checkRequiredString(messages, *in.Title, "title", 200)
	}
	messages = checkDescription(messages, in.Description)
	messages = checkStatus(messages, in.Status)
	if in.EmployeeID != nil && *in.EmployeeID == 0 {
		messages = append(messages, "employeeId must be a positive integer")
	}
	messages = checkDueDate(messages, in.DueDate)
	messages = checkPriority(messages, in.Priority)
	return validationError(messages)
}

// Validate rejects unknown status values in task listing filters.
func (f TaskFilter) Validate() error {
	var messages []string
	messages = checkStatus(messages, f.Status)
	return validationError(messages)
}
