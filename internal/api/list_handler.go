package api

import (
	"log/slog"
	"net/http"

	"github.com/cirocosta/todolists/internal/model"
)

// ListHandler handles HTTP requests for list operations
type ListHandler struct {
	listService ListService
	logger      *slog.Logger
}

// NewListHandler creates a new list handler with the given service
func NewListHandler(listService ListService, logger *slog.Logger) *ListHandler {
	return &ListHandler{
		listService: listService,
		logger:      logger,
	}
}

// ListLists handles GET /lists
func (h *ListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.listService.ListLists(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, "list lists", err)
		return
	}

	writeJSON(w, lists, http.StatusOK)
}

// GetList handles GET /lists/{id}
func (h *ListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := h.listService.GetList(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, h.logger, "get list", err)
		return
	}

	writeJSON(w, list, http.StatusOK)
}

// CreateList handles POST /lists
func (h *ListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req model.CreateListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list, err := h.listService.CreateList(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, h.logger, "create list", err)
		return
	}

	writeJSON(w, list, http.StatusCreated)
}

// UpdateList handles PUT /lists/{id}
func (h *ListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	list, err := h.listService.UpdateList(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writeServiceError(w, r, h.logger, "update list", err)
		return
	}

	writeJSON(w, list, http.StatusOK)
}

// DeleteList handles DELETE /lists/{id}, removing the list's todos too
func (h *ListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.listService.DeleteList(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, h.logger, "delete list", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
