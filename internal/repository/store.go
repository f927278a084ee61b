// package repository provides data access interfaces and implementations
package repository

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/cirocosta/todolists/internal/model"
)

// TodoRepository defines the interface for todo data access
type TodoRepository interface {
	// ListTodos returns the todos matching the filter
	ListTodos(ctx context.Context, filter model.TodoFilter) ([]model.Todo, error)

	// GetTodo returns a specific todo by ID
	GetTodo(ctx context.Context, id string) (model.Todo, error)

	// CreateTodo stores a new todo, assigning its ID and timestamps
	CreateTodo(ctx context.Context, todo model.Todo) (model.Todo, error)

	// UpdateTodo merges the patch into an existing todo
	UpdateTodo(ctx context.Context, id string, patch model.UpdateTodoRequest) (model.Todo, error)

	// DeleteTodo removes a todo
	DeleteTodo(ctx context.Context, id string) error
}

// ListRepository defines the interface for todo list data access
type ListRepository interface {
	// ListLists returns all lists
	ListLists(ctx context.Context) ([]model.TodoList, error)

	// GetList returns a specific list by ID
	GetList(ctx context.Context, id string) (model.TodoList, error)

	// CreateList stores a new list, assigning its ID and timestamps
	CreateList(ctx context.Context, list model.TodoList) (model.TodoList, error)

	// UpdateList merges the patch into an existing list
	UpdateList(ctx context.Context, id string, patch model.UpdateListRequest) (model.TodoList, error)

	// DeleteList removes a list together with every todo referencing it
	DeleteList(ctx context.Context, id string) error
}

// StoreOption configures an InMemoryStore
type StoreOption func(*InMemoryStore)

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) StoreOption {
	return func(s *InMemoryStore) {
		s.now = now
	}
}

// InMemoryStore implements TodoRepository and ListRepository with in-memory maps.
//
// Every method holds the mutex for its whole duration, so a list deletion and
// the removal of its todos are observed as a single step.
type InMemoryStore struct {
	mutex sync.RWMutex

	todos     map[string]model.Todo
	todoOrder []string
	todoSeq   uint64

	lists     map[string]model.TodoList
	listOrder []string
	listSeq   uint64

	now func() time.Time
}

// NewInMemoryStore creates a new empty in-memory store
func NewInMemoryStore(opts ...StoreOption) *InMemoryStore {
	s := &InMemoryStore{
		todos: make(map[string]model.Todo),
		lists: make(map[string]model.TodoList),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Counts returns the number of todos and lists currently stored
func (s *InMemoryStore) Counts() (todos, lists int) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.todos), len(s.lists)
}

func (s *InMemoryStore) timestamp() time.Time {
	return s.now().UTC()
}

// nextID advances seq until it yields a decimal id not present in taken.
func nextID[V any](seq *uint64, taken map[string]V) string {
	for {
		*seq++
		id := strconv.FormatUint(*seq, 10)
		if _, exists := taken[id]; !exists {
			return id
		}
	}
}

// observeID moves seq past id when id is a decimal number.
func observeID(seq *uint64, id string) {
	n, err := strconv.ParseUint(id, 10, 64)
	if err == nil && n > *seq {
		*seq = n
	}
}

func removeID(order []string, id string) []string {
	if i := slices.Index(order, id); i >= 0 {
		return slices.Delete(order, i, i+1)
	}
	return order
}
