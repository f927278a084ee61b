package api

import (
	"log/slog"
	"net/http"

	"github.com/cirocosta/todolists/internal/model"
)

// TodoHandler handles HTTP requests for todo operations
type TodoHandler struct {
	todoService TodoService
	logger      *slog.Logger
}

// NewTodoHandler creates a new todo handler with the given service
func NewTodoHandler(todoService TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
		logger:      logger,
	}
}

// ListTodos handles GET /todos
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := h.todoService.ListTodos(r.Context(), r.URL.Query().Get("listId"))
	if err != nil {
		writeServiceError(w, r, h.logger, "list todos", err)
		return
	}

	writeJSON(w, todos, http.StatusOK)
}

// GetTodo handles GET /todos/{id}
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	todo, err := h.todoService.GetTodo(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.logger, "get todo", err)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// CreateTodo handles POST /todos
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := h.todoService.CreateTodo(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, "create todo", err)
		return
	}

	writeJSON(w, todo, http.StatusCreated)
}

// UpdateTodo handles PUT /todos/{id}
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateTodoRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	todo, err := h.todoService.UpdateTodo(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, r, h.logger, "update todo", err)
		return
	}

	writeJSON(w, todo, http.StatusOK)
}

// DeleteTodo handles DELETE /todos/{id}
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	if err := h.todoService.DeleteTodo(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, h.logger, "delete todo", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
