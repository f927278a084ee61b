package repository

import (
	"context"

	"github.com/cirocosta/todolists/internal/model"
)

// ListLists returns all lists in insertion order
func (s *InMemoryStore) ListLists(ctx context.Context) ([]model.TodoList, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	lists := make([]model.TodoList, 0, len(s.listOrder))
	for _, id := range s.listOrder {
		lists = append(lists, s.lists[id])
	}

	return lists, nil
}

// GetList returns a specific list by ID
func (s *InMemoryStore) GetList(ctx context.Context, id string) (model.TodoList, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	list, exists := s.lists[id]
	if !exists {
		return model.TodoList{}, ErrListNotFound{ID: id}
	}

	return list, nil
}

// CreateList stores a new list
func (s *InMemoryStore) CreateList(ctx context.Context, list model.TodoList) (model.TodoList, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	now := s.timestamp()
	list.ID = nextID(&s.listSeq, s.lists)
	list.CreatedAt = now
	list.UpdatedAt = now

	s.lists[list.ID] = list
	s.listOrder = append(s.listOrder, list.ID)

	return list, nil
}

// UpdateList merges the patch into an existing list
func (s *InMemoryStore) UpdateList(ctx context.Context, id string, patch model.UpdateListRequest) (model.TodoList, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	list, exists := s.lists[id]
	if !exists {
		return model.TodoList{}, ErrListNotFound{ID: id}
	}

	if patch.Name != nil {
		list.Name = *patch.Name
	}
	if patch.Description != nil {
		list.Description = *patch.Description
	}
	list.UpdatedAt = s.timestamp()

	s.lists[id] = list

	return list, nil
}

// DeleteList removes a list and every todo that belongs to it
func (s *InMemoryStore) DeleteList(ctx context.Context, id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.lists[id]; !exists {
		return ErrListNotFound{ID: id}
	}

	kept := s.todoOrder[:0]
	for _, todoID := range s.todoOrder {
		if s.todos[todoID].ListID == id {
			delete(s.todos, todoID)
			continue
		}
		kept = append(kept, todoID)
	}
	s.todoOrder = kept

	delete(s.lists, id)
	s.listOrder = removeID(s.listOrder, id)

	return nil
}
