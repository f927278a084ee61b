package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		key  Key
		want string
	}{
		"unscoped todos": {key: TodosKey(""), want: `["todos","list",{}]`},
		"scoped todos":   {key: TodosKey("3"), want: `["todos","list",{"listId":"3"}]`},
		"one todo":       {key: TodoKey("7"), want: `["todos","one",{"id":"7"}]`},
		"lists":          {key: ListsKey(), want: `["lists","list",{}]`},
		"one list":       {key: ListKey("2"), want: `["lists","one",{"id":"2"}]`},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.key.String())
		})
	}
}

func TestKeyEquality(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TodosKey("1"), TodosKey("1"))
	assert.True(t, TodosKey("1") == TodosKey("1"))
	assert.False(t, TodosKey("1") == TodosKey("2"))
	assert.False(t, TodosKey("") == TodosKey("1"))
	assert.False(t, TodoKey("1") == ListKey("1"))
	assert.False(t, TodoKey("1") == Key{Namespace: NamespaceTodos, Tag: TagList, Scope: Scope{ID: "1"}})

	m := map[Key]int{TodosKey("1"): 1}
	assert.Equal(t, 1, m[TodosKey("1")])
}

func TestPrefixMatches(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		prefix Prefix
		key    Key
		want   bool
	}{
		"all todos matches collection":     {prefix: AllTodos, key: TodosKey("1"), want: true},
		"all todos matches item":           {prefix: AllTodos, key: TodoKey("1"), want: true},
		"all todos skips lists":            {prefix: AllTodos, key: ListsKey(), want: false},
		"collections match unscoped":       {prefix: TodoCollections, key: TodosKey(""), want: true},
		"collections match scoped":         {prefix: TodoCollections, key: TodosKey("9"), want: true},
		"collections skip items":           {prefix: TodoCollections, key: TodoKey("9"), want: false},
		"lists namespace matches list key": {prefix: Prefix{Namespace: NamespaceLists}, key: ListKey("1"), want: true},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.prefix.Matches(tc.key))
		})
	}
}
