// package service implements business logic for the application
package service

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every input validation failure
var ErrValidation = errors.New("validation error")

// ValidationError describes an invalid request field
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap makes errors.Is(err, ErrValidation) hold
func (e *ValidationError) Unwrap() error { return ErrValidation }

func required(field string) error {
	return &ValidationError{Field: field, Message: "is required"}
}
