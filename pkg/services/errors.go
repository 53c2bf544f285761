package services

import (
	"errors"
	"fmt"
)

// Sentinel errors the API layer maps to HTTP statuses. Services wrap these
// with %w and entity context; handlers match with errors.Is.
var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrInvalidInput  = errors.New("invalid input")

	// ErrConflict means the entity's current state forbids the requested
	// transition (e.g. cancelling a completed workflow).
	ErrConflict = errors.New("conflicting state")
)

// ValidationError names the specific request field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
