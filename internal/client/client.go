// package client reads and writes todos and lists over the HTTP API, caching
// reads under structured keys and invalidating them after writes
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/cirocosta/todolists/internal/model"
	"github.com/cirocosta/todolists/internal/query"
)

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// Client talks to the todo lists API
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *query.Cache
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCache shares a query cache between clients
func WithCache(cache *query.Cache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger sets the logger used for invalidation events
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the API served at baseURL
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = query.NewCache(query.WithCacheLogger(c.logger))
	}

	return c
}

// Cache returns the cache holding read results
func (c *Client) Cache() *query.Cache {
	return c.cache
}

// Todos returns all todos, or those of one list when listID is set
func (c *Client) Todos(ctx context.Context, listID string) ([]model.Todo, error) {
	return read[[]model.Todo](ctx, c, query.TodosKey(listID))
}

// Todo returns a single todo
func (c *Client) Todo(ctx context.Context, id string) (model.Todo, error) {
	return read[model.Todo](ctx, c, query.TodoKey(id))
}

// Lists returns all lists
func (c *Client) Lists(ctx context.Context) ([]model.TodoList, error) {
	return read[[]model.TodoList](ctx, c, query.ListsKey())
}

// List returns a single list
func (c *Client) List(ctx context.Context, id string) (model.TodoList, error) {
	return read[model.TodoList](ctx, c, query.ListKey(id))
}

// Refresh discards the cached result for key and reads it again
func (c *Client) Refresh(ctx context.Context, key query.Key) error {
	c.cache.Invalidate(key)
	_, err := c.fetch(ctx, key)
	return err
}

// CreateTodo creates a todo
func (c *Client) CreateTodo(ctx context.Context, req model.CreateTodoRequest) (model.Todo, error) {
	var todo model.Todo
	if err := c.mutate(ctx, http.MethodPost, "/todos", req, &todo); err != nil {
		return model.Todo{}, err
	}

	c.invalidate(ctx, "create todo", query.TodosKey(todo.ListID), query.TodosKey(""))
	return todo, nil
}

// UpdateTodo applies a partial update to a todo
func (c *Client) UpdateTodo(ctx context.Context, id string, req model.UpdateTodoRequest) (model.Todo, error) {
	var todo model.Todo
	if err := c.mutate(ctx, http.MethodPut, todoPath(id), req, &todo); err != nil {
		return model.Todo{}, err
	}

	// the todo may have moved between lists, so every collection is suspect
	c.cache.InvalidatePrefix(query.TodoCollections)
	c.invalidate(ctx, "update todo", query.TodoKey(id))
	return todo, nil
}

// DeleteTodo deletes a todo
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	if err := c.mutate(ctx, http.MethodDelete, todoPath(id), nil, nil); err != nil {
		return err
	}

	c.cache.InvalidatePrefix(query.TodoCollections)
	c.cache.Remove(query.TodoKey(id))
	c.logger.DebugContext(ctx, "cache invalidated", slog.String("op", "delete todo"), slog.String("id", id))
	return nil
}

// CreateList creates a list
func (c *Client) CreateList(ctx context.Context, req model.CreateListRequest) (model.TodoList, error) {
	var list model.TodoList
	if err := c.mutate(ctx, http.MethodPost, "/lists", req, &list); err != nil {
		return model.TodoList{}, err
	}

	c.invalidate(ctx, "create list", query.ListsKey())
	return list, nil
}

// UpdateList applies a partial update to a list
func (c *Client) UpdateList(ctx context.Context, id string, req model.UpdateListRequest) (model.TodoList, error) {
	var list model.TodoList
	if err := c.mutate(ctx, http.MethodPut, listPath(id), req, &list); err != nil {
		return model.TodoList{}, err
	}

	c.invalidate(ctx, "update list", query.ListsKey(), query.ListKey(id))
	return list, nil
}

// DeleteList deletes a list. The server removes its todos as well, so every
// todo read is invalidated.
func (c *Client) DeleteList(ctx context.Context, id string) error {
	if err := c.mutate(ctx, http.MethodDelete, listPath(id), nil, nil); err != nil {
		return err
	}

	c.cache.InvalidatePrefix(query.AllTodos)
	c.cache.Remove(query.ListKey(id))
	c.invalidate(ctx, "delete list", query.ListsKey())
	return nil
}

func (c *Client) invalidate(ctx context.Context, op string, keys ...query.Key) {
	c.cache.Invalidate(keys...)

	if c.logger.Enabled(ctx, slog.LevelDebug) {
		names := make([]string, 0, len(keys))
		for _, key := range keys {
			names = append(names, key.String())
		}
		c.logger.DebugContext(ctx, "cache invalidated", slog.String("op", op), slog.Any("keys", names))
	}
}

// read returns the decoded value cached under key, fetching it when needed
func read[T any](ctx context.Context, c *Client, key query.Key) (T, error) {
	var v T

	body, err := c.fetch(ctx, key)
	if err != nil {
		return v, err
	}

	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("decode %s: %w", key, err)
	}
	return v, nil
}

func (c *Client) fetch(ctx context.Context, key query.Key) ([]byte, error) {
	path, err := keyPath(key)
	if err != nil {
		return nil, err
	}

	return c.cache.Fetch(ctx, key, func(ctx context.Context) ([]byte, error) {
		return c.do(ctx, http.MethodGet, path, nil)
	})
}

// mutate sends a write and decodes the response into out when set
func (c *Client) mutate(ctx context.Context, method, path string, in, out any) error {
	body, err := c.do(ctx, method, path, in)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in any) ([]byte, error) {
	var reqBody io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.StatusCode, body),
		}
	}

	return body, nil
}

// errorMessage prefers the API's {"error": ...} body over the status text
func errorMessage(status int, body []byte) string {
	var errResp model.ErrorResponse
	if json.Unmarshal(body, &errResp) == nil && errResp.Error != "" {
		return errResp.Error
	}
	return http.StatusText(status)
}

func todoPath(id string) string {
	return "/todos/" + url.PathEscape(id)
}

func listPath(id string) string {
	return "/lists/" + url.PathEscape(id)
}

// keyPath maps a key onto the GET request that fills it
func keyPath(key query.Key) (string, error) {
	switch {
	case key.Namespace == query.NamespaceTodos && key.Tag == query.TagList:
		if key.Scope.ListID == "" {
			return "/todos", nil
		}
		return "/todos?" + url.Values{"listId": {key.Scope.ListID}}.Encode(), nil
	case key.Namespace == query.NamespaceTodos && key.Tag == query.TagOne:
		return todoPath(key.Scope.ID), nil
	case key.Namespace == query.NamespaceLists && key.Tag == query.TagList:
		return "/lists", nil
	case key.Namespace == query.NamespaceLists && key.Tag == query.TagOne:
		return listPath(key.Scope.ID), nil
	default:
		return "", fmt.Errorf("no endpoint for key %s", key)
	}
}
