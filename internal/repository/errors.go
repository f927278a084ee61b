// package repository provides data access and error types
package repository

import (
	"fmt"
)

// ErrTodoNotFound is returned when a todo with the specified ID does not exist
type ErrTodoNotFound struct {
	ID string
}

// Error implements the error interface
func (e ErrTodoNotFound) Error() string {
	return fmt.Sprintf("todo with id %s not found", e.ID)
}

// ErrListNotFound is returned when a list with the specified ID does not exist
type ErrListNotFound struct {
	ID string
}

// Error implements the error interface
func (e ErrListNotFound) Error() string {
	return fmt.Sprintf("list with id %s not found", e.ID)
}

// ErrListReference is returned when a todo names a list that does not exist
type ErrListReference struct {
	ListID string
}

// Error implements the error interface
func (e ErrListReference) Error() string {
	return fmt.Sprintf("todo references unknown list %s", e.ListID)
}

// ErrDuplicateID is returned when seeding a record whose id is already taken
type ErrDuplicateID struct {
	Kind string
	ID   string
}

// Error implements the error interface
func (e ErrDuplicateID) Error() string {
	return fmt.Sprintf("duplicate %s id %s", e.Kind, e.ID)
}
