package model

import (
	"time"
)

// TodoList is a named grouping of todo items
type TodoList struct {
	ID          string    `json:"id" yaml:"id" doc:"Unique identifier for the list" example:"1"`
	Name        string    `json:"name" yaml:"name" doc:"Name of the list" example:"Work"`
	Description string    `json:"description" yaml:"description" doc:"Description of the list" example:"Work tasks"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt" doc:"When the list was created" example:"2023-01-01T12:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt" doc:"When the list was last updated" example:"2023-01-02T12:00:00Z"`
}

// CreateListRequest is used when creating a new list
type CreateListRequest struct {
	Name        string `json:"name" doc:"Name of the list" example:"Work"`
	Description string `json:"description" doc:"Description of the list" example:"Work tasks"`
}

// UpdateListRequest is used when updating an existing list.
// Only non-nil fields are applied.
type UpdateListRequest struct {
	Name        *string `json:"name,omitempty" doc:"Name of the list" example:"Home"`
	Description *string `json:"description,omitempty" doc:"Description of the list" example:"Chores"`
}
