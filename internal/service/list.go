package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/cirocosta/todolists/internal/model"
	"github.com/cirocosta/todolists/internal/repository"
)

// ListService handles business logic for todo list operations
type ListService struct {
	repo repository.ListRepository
}

// NewListService creates a new list service with the given repository
func NewListService(repo repository.ListRepository) *ListService {
	return &ListService{
		repo: repo,
	}
}

// ListLists returns all lists
func (s *ListService) ListLists(ctx context.Context) ([]model.TodoList, error) {
	return s.repo.ListLists(ctx)
}

// GetList returns a list by ID
func (s *ListService) GetList(ctx context.Context, id string) (model.TodoList, error) {
	if id == "" {
		return model.TodoList{}, required("id")
	}

	return s.repo.GetList(ctx, id)
}

// CreateList creates a new list. Both name and description are required.
func (s *ListService) CreateList(ctx context.Context, req model.CreateListRequest) (model.TodoList, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return model.TodoList{}, required("name")
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return model.TodoList{}, required("description")
	}

	list, err := s.repo.CreateList(ctx, model.TodoList{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return model.TodoList{}, fmt.Errorf("create list: %w", err)
	}

	return list, nil
}

// UpdateList applies a partial update to an existing list
func (s *ListService) UpdateList(ctx context.Context, id string, req model.UpdateListRequest) (model.TodoList, error) {
	if id == "" {
		return model.TodoList{}, required("id")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return model.TodoList{}, &ValidationError{Field: "name", Message: "must not be empty"}
		}
		req.Name = &name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		req.Description = &description
	}

	list, err := s.repo.UpdateList(ctx, id, req)
	if err != nil {
		return model.TodoList{}, fmt.Errorf("update list %s: %w", id, err)
	}

	return list, nil
}

// DeleteList deletes a list along with its todos
func (s *ListService) DeleteList(ctx context.Context, id string) error {
	if id == "" {
		return required("id")
	}

	if err := s.repo.DeleteList(ctx, id); err != nil {
		return fmt.Errorf("delete list %s: %w", id, err)
	}

	return nil
}
