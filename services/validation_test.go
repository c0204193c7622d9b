package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"task-tracker/tasktracker/models"
)

func TestValidationError_JoinsMessages(t *testing.T) {
	err := &ValidationError{Messages: []string{"name is required", "email is required"}}
	assert.Equal(t, "name is required, email is required", err.Error())
}

func TestCreateEmployeeInput_EmailFormat(t *testing.T) {
	input := CreateEmployeeInput{
		Name:       "Alice",
		Email:      "not-an-email",
		Department: "Engineering",
		Position:   "Developer",
	}

	err := input.Validate()
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "email must be a valid email address")
}

func TestCreateEmployeeInput_NameLengthBound(t *testing.T) {
	long := make([]rune, 101)
	for i := range long {
		long[i] = 'a'
	}

	input := CreateEmployeeInput{
		Name:       string(long),
		Email:      "alice@example.com",
		Department: "Engineering",
		Position:   "Developer",
	}

	err := input.Validate()
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "name must be at most 100 characters")
}

func TestUpdateEmployeeInput_PresentFieldsStillValidated(t *testing.T) {
	empty := ""
	err := UpdateEmployeeInput{Name: &empty}.Validate()

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "name is required")

	assert.NoError(t, UpdateEmployeeInput{}.Validate())
}

func TestDueDate_ShapeOnly(t *testing.T) {
	valid := "2025-01-15"
	assert.NoError(t, UpdateTaskInput{DueDate: &valid}.Validate())

	// Shape-only check: an impossible month still passes, matching the
	// original behavior.
	impossibleMonth := "2025-13-01"
	assert.NoError(t, UpdateTaskInput{DueDate: &impossibleMonth}.Validate())

	for _, malformed := range []string{"2025-1-15", "15-01-2025", "2025/01/15", "tomorrow"} {
		d := malformed
		err := UpdateTaskInput{DueDate: &d}.Validate()
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr, "expected %q to fail", malformed)
	}
}

func TestUpdateTaskInput_EnumMembership(t *testing.T) {
	badStatus := models.TaskStatus("done")
	badPriority := models.TaskPriority("urgent")

	err := UpdateTaskInput{Status: &badStatus, Priority: &badPriority}.Validate()
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Messages, 2)

	goodStatus := models.TaskStatusCompleted
	goodPriority := models.TaskPriorityHigh
	assert.NoError(t, UpdateTaskInput{Status: &goodStatus, Priority: &goodPriority}.Validate())
}

func TestCreateTaskInput_DescriptionLengthBound(t *testing.T) {
	long := make([]rune, 1001)
	for i := range long {
		long[i] = 'd'
	}
	description := string(long)

	input := CreateTaskInput{
		Title:       "Task",
		Description: &description,
		EmployeeID:  1,
	}

	err := input.Validate()
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Messages, "description must be at most 1000 characters")
}
