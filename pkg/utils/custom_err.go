package utils

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized       = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrWorkoutNotFound    = errors.New("workout not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrInvalidGoalTarget  = errors.New("goal target must be greater than zero")
	ErrDatabaseError      = errors.New("database error")
)

// ValidationError reports a single rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// DatabaseError wraps a storage failure so callers can match ErrDatabaseError
// while the cause is kept for the server log.
func DatabaseError(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrDatabaseError, err)
}
