package api

import (
	"context"

	"github.com/cirocosta/todolists/internal/model"
)

// NopService implements TodoService and ListService without doing anything.
// It backs routers built solely for OpenAPI document generation.
type NopService struct{}

// NewNopService creates a new no-op service
func NewNopService() *NopService {
	return &NopService{}
}

func (s *NopService) ListTodos(ctx context.Context, listID string) ([]model.Todo, error) {
	return []model.Todo{}, nil
}

func (s *NopService) GetTodo(ctx context.Context, id string) (model.Todo, error) {
	return model.Todo{}, nil
}

func (s *NopService) CreateTodo(ctx context.Context, req model.CreateTodoRequest) (model.Todo, error) {
	return model.Todo{}, nil
}

func (s *NopService) UpdateTodo(ctx context.Context, id string, req model.UpdateTodoRequest) (model.Todo, error) {
	return model.Todo{}, nil
}

func (s *NopService) DeleteTodo(ctx context.Context, id string) error {
	return nil
}

func (s *NopService) ListLists(ctx context.Context) ([]model.TodoList, error) {
	return []model.TodoList{}, nil
}

func (s *NopService) GetList(ctx context.Context, id string) (model.TodoList, error) {
	return model.TodoList{}, nil
}

func (s *NopService) CreateList(ctx context.Context, req model.CreateListRequest) (model.TodoList, error) {
	return model.TodoList{}, nil
}

func (s *NopService) UpdateList(ctx context.Context, id string, req model.UpdateListRequest) (model.TodoList, error) {
	return model.TodoList{}, nil
}

func (s *NopService) DeleteList(ctx context.Context, id string) error {
	return nil
}

// Document returns the OpenAPI document of the API without serving it
func Document() map[string]any {
	nop := NewNopService()
	return NewRouter(nop, nop).OpenAPI()
}
