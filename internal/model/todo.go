// package model contains the data models for the todo lists application
package model

import (
	"time"
)

// Todo represents a todo item in the system
type Todo struct {
	ID          string    `json:"id" yaml:"id" doc:"Unique identifier for the todo item" example:"1"`
	Title       string    `json:"title" yaml:"title" doc:"Title of the todo item" example:"Buy groceries"`
	Description string    `json:"description" yaml:"description" doc:"Detailed description of the todo item" example:"Need to buy milk, eggs, and bread"`
	Completed   bool      `json:"completed" yaml:"completed" doc:"Whether the todo item is completed" example:"false"`
	ListID      string    `json:"listId,omitempty" yaml:"listId" doc:"Identifier of the list owning the todo item" example:"1"`
	CreatedAt   time.Time `json:"createdAt" yaml:"createdAt" doc:"When the todo item was created" example:"2023-01-01T12:00:00Z"`
	UpdatedAt   time.Time `json:"updatedAt" yaml:"updatedAt" doc:"When the todo item was last updated" example:"2023-01-02T12:00:00Z"`
}

// TodoFilter narrows down the todos returned by a listing
type TodoFilter struct {
	ListID string
}

// Matches reports whether the todo passes the filter
func (f TodoFilter) Matches(todo Todo) bool {
	return f.ListID == "" || todo.ListID == f.ListID
}

// CreateTodoRequest is used when creating a new todo item
type CreateTodoRequest struct {
	Title       string `json:"title" doc:"Title of the todo item" example:"Buy groceries"`
	Description string `json:"description,omitempty" doc:"Detailed description of the todo item" example:"Need to buy milk, eggs, and bread"`
	Completed   bool   `json:"completed,omitempty" doc:"Initial completion state" example:"false"`
	ListID      string `json:"listId,omitempty" doc:"Identifier of an existing list" example:"1"`
}

// UpdateTodoRequest is used when updating an existing todo item.
// Only non-nil fields are applied.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty" doc:"Title of the todo item" example:"Buy groceries"`
	Description *string `json:"description,omitempty" doc:"Detailed description of the todo item" example:"Need to buy milk, eggs, and bread"`
	Completed   *bool   `json:"completed,omitempty" doc:"Whether the todo item is completed" example:"true"`
	ListID      *string `json:"listId,omitempty" doc:"Identifier of the list owning the todo item" example:"2"`
}

// Summary counts todos by completion state
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
}

// Summarize computes the completion summary of the given todos
func Summarize(todos []Todo) Summary {
	s := Summary{Total: len(todos)}
	for _, todo := range todos {
		if todo.Completed {
			s.Completed++
		}
	}
	s.Pending = s.Total - s.Completed

	return s
}

// ErrorResponse represents an error returned by the API
type ErrorResponse struct {
	Error string `json:"error" doc:"Error message" example:"List not found"`
}
