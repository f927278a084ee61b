package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cirocosta/todolists/internal/model"
	"github.com/cirocosta/todolists/internal/repository"
	"github.com/cirocosta/todolists/internal/service"
)

const (
	msgInvalidRequest = "invalid request format"
	msgListNotFound   = "List not found"
	msgInternal       = "internal server error"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code
func writeError(w http.ResponseWriter, message string, statusCode int) {
	writeJSON(w, model.ErrorResponse{Error: message}, statusCode)
}

// decodeJSON reads the request body into dst, answering 400 when it is malformed
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, msgInvalidRequest, http.StatusBadRequest)
		return false
	}
	return true
}

// writeServiceError maps a service error onto its HTTP representation.
// Not found answers with an empty body.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, err error) {
	var (
		todoNotFound repository.ErrTodoNotFound
		listNotFound repository.ErrListNotFound
		listRef      repository.ErrListReference
		validation   *service.ValidationError
	)

	switch {
	case errors.As(err, &todoNotFound), errors.As(err, &listNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.As(err, &listRef):
		writeError(w, msgListNotFound, http.StatusBadRequest)
	case errors.As(err, &validation):
		writeError(w, validation.Error(), http.StatusUnprocessableEntity)
	default:
		logger.ErrorContext(r.Context(), "request failed",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		writeError(w, msgInternal, http.StatusInternalServerError)
	}
}
