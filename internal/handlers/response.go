package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/job-listings/internal/logger"
	"github.com/sbilibin2017/job-listings/internal/middlewares"
	"github.com/sbilibin2017/job-listings/internal/models"
)

const (
	msgInvalidBody = "invalid request body"
	msgInvalidID   = "invalid id"
	msgInternal    = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

// decodeBody decodes the JSON request body into dst and answers 400 when it
// cannot. It reports whether the handler should continue.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Warnw("failed to decode request body",
			"request_id", middlewares.RequestIDFromContext(r.Context()), "path", r.URL.Path, "error", err)
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// writeServiceError maps a service error onto its HTTP status. resource names
// the collection in not-found messages.
func writeServiceError(w http.ResponseWriter, r *http.Request, resource string, err error) {
	var vErr *models.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{
			Error:      "validation failed",
			Violations: vErr.Violations,
		})
	case errors.Is(err, models.ErrInvalidID):
		writeError(w, http.StatusBadRequest, msgInvalidID)
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, resource+" not found")
	case errors.Is(err, models.ErrUsernameTaken):
		writeError(w, http.StatusConflict, models.ErrUsernameTaken.Error())
	default:
		logger.Log.Errorw("request failed",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"method", r.Method, "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
	}
}
