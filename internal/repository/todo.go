package repository

import (
	"context"

	"github.com/cirocosta/todolists/internal/model"
)

// ListTodos returns todos in insertion order, restricted by the filter
func (s *InMemoryStore) ListTodos(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	todos := make([]model.Todo, 0, len(s.todoOrder))
	for _, id := range s.todoOrder {
		todo := s.todos[id]
		if filter.Matches(todo) {
			todos = append(todos, todo)
		}
	}

	return todos, nil
}

// GetTodo returns a specific todo by ID
func (s *InMemoryStore) GetTodo(ctx context.Context, id string) (model.Todo, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	todo, exists := s.todos[id]
	if !exists {
		return model.Todo{}, ErrTodoNotFound{ID: id}
	}

	return todo, nil
}

// CreateTodo stores a new todo. The list it names, if any, must exist.
func (s *InMemoryStore) CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if todo.ListID != "" {
		if _, exists := s.lists[todo.ListID]; !exists {
			return model.Todo{}, ErrListReference{ListID: todo.ListID}
		}
	}

	now := s.timestamp()
	todo.ID = nextID(&s.todoSeq, s.todos)
	todo.CreatedAt = now
	todo.UpdatedAt = now

	s.todos[todo.ID] = todo
	s.todoOrder = append(s.todoOrder, todo.ID)

	return todo, nil
}

// UpdateTodo merges the patch into an existing todo
func (s *InMemoryStore) UpdateTodo(ctx context.Context, id string, patch model.UpdateTodoRequest) (model.Todo, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	todo, exists := s.todos[id]
	if !exists {
		return model.Todo{}, ErrTodoNotFound{ID: id}
	}

	if patch.Title != nil {
		todo.Title = *patch.Title
	}
	if patch.Description != nil {
		todo.Description = *patch.Description
	}
	if patch.Completed != nil {
		todo.Completed = *patch.Completed
	}
	if patch.ListID != nil {
		todo.ListID = *patch.ListID
	}
	todo.UpdatedAt = s.timestamp()

	s.todos[id] = todo

	return todo, nil
}

// DeleteTodo removes a todo
func (s *InMemoryStore) DeleteTodo(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.todos[id]; !exists {
		return ErrTodoNotFound{ID: id}
	}

	delete(s.todos, id)
	s.todoOrder = removeID(s.todoOrder, id)

	return nil
}
