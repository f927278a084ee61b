// package query provides structured cache keys and a cache for read results
package query

import (
	"encoding/json"
)

// Namespace groups keys by entity kind
type Namespace string

const (
	NamespaceTodos Namespace = "todos"
	NamespaceLists Namespace = "lists"
)

// Tag distinguishes collection reads from single item reads
type Tag string

const (
	TagList Tag = "list"
	TagOne  Tag = "one"
)

// Scope narrows a key. Empty fields are unset.
type Scope struct {
	ListID string
	ID     string
}

// Key identifies a cached read. Keys are comparable: two keys are equal
// iff namespace, tag and scope are equal.
type Key struct {
	Namespace Namespace
	Tag       Tag
	Scope     Scope
}

// TodosKey names the todo collection, scoped to a list when listID is set
func TodosKey(listID string) Key {
	return Key{Namespace: NamespaceTodos, Tag: TagList, Scope: Scope{ListID: listID}}
}

// TodoKey names a single todo
func TodoKey(id string) Key {
	return Key{Namespace: NamespaceTodos, Tag: TagOne, Scope: Scope{ID: id}}
}

// ListsKey names the list collection
func ListsKey() Key {
	return Key{Namespace: NamespaceLists, Tag: TagList}
}

// ListKey names a single list
func ListKey(id string) Key {
	return Key{Namespace: NamespaceLists, Tag: TagOne, Scope: Scope{ID: id}}
}

// String renders the key in its array form, e.g. ["todos","list",{"listId":"1"}]
func (k Key) String() string {
	scope := map[string]string{}
	if k.Scope.ListID != "" {
		scope["listId"] = k.Scope.ListID
	}
	if k.Scope.ID != "" {
		scope["id"] = k.Scope.ID
	}

	// maps marshal with sorted keys, so the output is deterministic
	data, _ := json.Marshal([]any{k.Namespace, k.Tag, scope})
	return string(data)
}

// Prefix matches every key under a namespace, and under a tag when Tag is set
type Prefix struct {
	Namespace Namespace
	Tag       Tag
}

// Matches reports whether key falls under the prefix
func (p Prefix) Matches(key Key) bool {
	if key.Namespace != p.Namespace {
		return false
	}
	return p.Tag == "" || key.Tag == p.Tag
}

// AllTodos matches every todo key
var AllTodos = Prefix{Namespace: NamespaceTodos}

// TodoCollections matches every todo collection key, scoped or not
var TodoCollections = Prefix{Namespace: NamespaceTodos, Tag: TagList}
