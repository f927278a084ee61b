package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cirocosta/todolists/internal/model"
	"github.com/cirocosta/todolists/internal/repository"
)

// The list service is exercised against the real in-memory store so the
// cascade travels through the same path the API uses.
func TestListService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := repository.NewInMemoryStore()
	lists := NewListService(store)
	todos := NewTodoService(store)

	list, err := lists.CreateList(ctx, model.CreateListRequest{Name: " Work ", Description: " Work tasks "})
	require.NoError(t, err)
	assert.Equal(t, "Work", list.Name)
	assert.Equal(t, "Work tasks", list.Description)

	_, err = todos.CreateTodo(ctx, model.CreateTodoRequest{Title: "A", ListID: list.ID})
	require.NoError(t, err)

	updated, err := lists.UpdateList(ctx, list.ID, model.UpdateListRequest{Description: ptr(" Office ")})
	require.NoError(t, err)
	assert.Equal(t, "Office", updated.Description)
	assert.Equal(t, "Work", updated.Name)

	all, err := lists.ListLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.TodoList{updated}, all)

	require.NoError(t, lists.DeleteList(ctx, list.ID))

	remaining, err := todos.ListTodos(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, remaining)

	_, err = lists.GetList(ctx, list.ID)
	require.ErrorIs(t, err, repository.ErrListNotFound{ID: list.ID})

	err = lists.DeleteList(ctx, list.ID)
	require.ErrorIs(t, err, repository.ErrListNotFound{ID: list.ID})
}

func TestListServiceValidation(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		run       func(svc *ListService) error
		wantField string
	}{
		"create without name": {
			run: func(svc *ListService) error {
				_, err := svc.CreateList(context.Background(), model.CreateListRequest{Description: "d"})
				return err
			},
			wantField: "name",
		},
		"create without description": {
			run: func(svc *ListService) error {
				_, err := svc.CreateList(context.Background(), model.CreateListRequest{Name: "n"})
				return err
			},
			wantField: "description",
		},
		"update with blank name": {
			run: func(svc *ListService) error {
				_, err := svc.UpdateList(context.Background(), "1", model.UpdateListRequest{Name: ptr("  ")})
				return err
			},
			wantField: "name",
		},
		"get without id": {
			run: func(svc *ListService) error {
				_, err := svc.GetList(context.Background(), "")
				return err
			},
			wantField: "id",
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := repository.NewInMemoryStore()
			err := tc.run(NewListService(store))

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.wantField, validationErr.Field)

			_, lists := store.Counts()
			assert.Zero(t, lists)
		})
	}
}
