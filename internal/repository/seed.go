package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cirocosta/todolists/internal/model"
)

// Seed holds records preloaded into a store at startup
type Seed struct {
	Lists []model.TodoList `json:"lists" yaml:"lists"`
	Todos []model.Todo     `json:"todos" yaml:"todos"`
}

// LoadSeed reads a seed file. JSON files may hold either a {"lists","todos"}
// object or a bare array of todos; YAML files hold the object form.
func LoadSeed(path string) (Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file '%s': %w", path, err)
	}

	var seed Seed
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seed); err != nil {
			return Seed{}, fmt.Errorf("decode yaml seed '%s': %w", path, err)
		}
	case ".json":
		seed, err = decodeJSONSeed(data)
		if err != nil {
			return Seed{}, fmt.Errorf("decode json seed '%s': %w", path, err)
		}
	default:
		return Seed{}, fmt.Errorf("unsupported seed file extension %q", ext)
	}

	return seed, nil
}

func decodeJSONSeed(data []byte) (Seed, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var todos []model.Todo
		if err := json.Unmarshal(trimmed, &todos); err != nil {
			return Seed{}, err
		}
		return Seed{Todos: todos}, nil
	}

	var seed Seed
	if err := json.Unmarshal(trimmed, &seed); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// Seed loads the given records into the store. The whole seed is validated
// before anything is written: ids must be unique and every todo list
// reference must point at a list that exists once the seed is applied.
func (s *InMemoryStore) Seed(ctx context.Context, seed Seed) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	listIDs := make(map[string]struct{}, len(seed.Lists))
	for _, list := range seed.Lists {
		if list.ID == "" {
			return fmt.Errorf("seed list %q has no id", list.Name)
		}
		if _, exists := s.lists[list.ID]; exists {
			return ErrDuplicateID{Kind: "list", ID: list.ID}
		}
		if _, exists := listIDs[list.ID]; exists {
			return ErrDuplicateID{Kind: "list", ID: list.ID}
		}
		listIDs[list.ID] = struct{}{}
	}

	todoIDs := make(map[string]struct{}, len(seed.Todos))
	for _, todo := range seed.Todos {
		if todo.ID == "" {
			return fmt.Errorf("seed todo %q has no id", todo.Title)
		}
		if _, exists := s.todos[todo.ID]; exists {
			return ErrDuplicateID{Kind: "todo", ID: todo.ID}
		}
		if _, exists := todoIDs[todo.ID]; exists {
			return ErrDuplicateID{Kind: "todo", ID: todo.ID}
		}
		todoIDs[todo.ID] = struct{}{}

		if todo.ListID == "" {
			continue
		}
		_, seeded := listIDs[todo.ListID]
		_, stored := s.lists[todo.ListID]
		if !seeded && !stored {
			return ErrListReference{ListID: todo.ListID}
		}
	}

	now := s.timestamp()
	for _, list := range seed.Lists {
		if list.CreatedAt.IsZero() {
			list.CreatedAt = now
		}
		if list.UpdatedAt.IsZero() {
			list.UpdatedAt = list.CreatedAt
		}
		s.lists[list.ID] = list
		s.listOrder = append(s.listOrder, list.ID)
		observeID(&s.listSeq, list.ID)
	}
	for _, todo := range seed.Todos {
		if todo.CreatedAt.IsZero() {
			todo.CreatedAt = now
		}
		if todo.UpdatedAt.IsZero() {
			todo.UpdatedAt = todo.CreatedAt
		}
		s.todos[todo.ID] = todo
		s.todoOrder = append(s.todoOrder, todo.ID)
		observeID(&s.todoSeq, todo.ID)
	}

	return nil
}
