// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/gamedash/internal/adapters/api"
	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
)

// responder carries the JSON helpers shared by every handler
type responder struct {
	logger *slog.Logger
}

func (h responder) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.Any("error", err))
	}
}

func (h responder) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// respondFailure maps a service error onto a status code. Upstream errors
// pass the backend's message through; anything unrecognised is logged and
// reported with fallback.
func (h responder) respondFailure(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		ve     *domain.ValidationError
		apiErr *api.APIError
		failed *services.SyncFailedError
	)

	switch {
	case errors.As(err, &ve):
		h.respondError(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrInvalidID):
		h.respondError(w, http.StatusBadRequest, "Invalid ID")
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrSyncInProgress):
		h.respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &apiErr):
		h.logger.WarnContext(r.Context(), "upstream request failed",
			slog.Int("upstream_status", apiErr.StatusCode),
			slog.String("detail", apiErr.Detail))
		h.respondError(w, http.StatusBadGateway, apiErr.Detail)
	case errors.As(err, &failed):
		h.respondError(w, http.StatusBadGateway, failed.Message)
	default:
		h.logger.ErrorContext(r.Context(), fallback, slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, fallback)
	}
}

// pathID parses a positive integer path parameter
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
