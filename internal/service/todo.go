package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cirocosta/todolists/internal/model"
	"github.com/cirocosta/todolists/internal/repository"
)

// TodoService handles business logic for todo operations
type TodoService struct {
	repo repository.TodoRepository
}

// NewTodoService creates a new todo service with the given repository
func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{
		repo: repo,
	}
}

// ListTodos returns all todos, or the todos of a single list when listID is set
func (s *TodoService) ListTodos(ctx context.Context, listID string) ([]model.Todo, error) {
	return s.repo.ListTodos(ctx, model.TodoFilter{ListID: strings.TrimSpace(listID)})
}

// GetTodo returns a todo by ID
func (s *TodoService) GetTodo(ctx context.Context, id string) (model.Todo, error) {
	if id == "" {
		return model.Todo{}, required("id")
	}

	return s.repo.GetTodo(ctx, id)
}

// CreateTodo creates a new todo
func (s *TodoService) CreateTodo(ctx context.Context, req model.CreateTodoRequest) (model.Todo, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Todo{}, required("title")
	}

	todo, err := s.repo.CreateTodo(ctx, model.Todo{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Completed:   req.Completed,
		ListID:      strings.TrimSpace(req.ListID),
	})
	if err != nil {
		return model.Todo{}, fmt.Errorf("create todo: %w", err)
	}

	return todo, nil
}

// UpdateTodo applies a partial update to an existing todo
func (s *TodoService) UpdateTodo(ctx context.Context, id string, req model.UpdateTodoRequest) (model.Todo, error) {
	if id == "" {
		return model.Todo{}, required("id")
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return model.Todo{}, &ValidationError{Field: "title", Message: "must not be empty"}
		}
		req.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		req.Description = &description
	}

	todo, err := s.repo.UpdateTodo(ctx, id, req)
	if err != nil {
		return model.Todo{}, fmt.Errorf("update todo %s: %w", id, err)
	}

	return todo, nil
}

// DeleteTodo deletes a todo
func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	if id == "" {
		return required("id")
	}

	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}

	return nil
}
