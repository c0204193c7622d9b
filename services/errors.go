package services

import (
	"errors"
	"strings"
)

// Common errors
var (
	ErrEmployeeNotFound  = errors.New("employee not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrDuplicateEmail    = errors.New("an employee with this email already exists")
	ErrEmployeeReference = errors.New("referenced employee does not exist")
)

// ValidationError carries every field rule the input violated, not just the
// first one.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func validationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
