package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTodoFilterMatches(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		filter TodoFilter
		todo   Todo
		want   bool
	}{
		"empty filter matches list-less todo": {
			filter: TodoFilter{},
			todo:   Todo{ID: "1"},
			want:   true,
		},
		"empty filter matches listed todo": {
			filter: TodoFilter{},
			todo:   Todo{ID: "1", ListID: "7"},
			want:   true,
		},
		"same list": {
			filter: TodoFilter{ListID: "7"},
			todo:   Todo{ID: "1", ListID: "7"},
			want:   true,
		},
		"other list": {
			filter: TodoFilter{ListID: "7"},
			todo:   Todo{ID: "1", ListID: "8"},
			want:   false,
		},
		"scoped filter skips list-less todo": {
			filter: TodoFilter{ListID: "7"},
			todo:   Todo{ID: "1"},
			want:   false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.filter.Matches(tc.todo))
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Summary{}, Summarize(nil))
	assert.Equal(t, Summary{Total: 3, Completed: 1, Pending: 2}, Summarize([]Todo{
		{ID: "1", Completed: true},
		{ID: "2"},
		{ID: "3"},
	}))
}
