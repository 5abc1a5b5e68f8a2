// internal/handlers/sync.go
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
	"github.com/ammerola/gamedash/internal/core/services"
)

// SyncRunner is the part of the orchestrator the gateway drives
type SyncRunner interface {
	Start(ctx context.Context, req domain.SyncRequest, cb services.SyncCallbacks) (*services.Session, error)
	Cancel() bool
	Snapshot() services.SyncSnapshot
}

var _ SyncRunner = (*services.Orchestrator)(nil)

// SyncHandler starts, inspects and cancels backend syncs
type SyncHandler struct {
	responder
	runner SyncRunner
	api    ports.SyncAPI
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(runner SyncRunner, api ports.SyncAPI, logger *slog.Logger) *SyncHandler {
	return &SyncHandler{
		responder: responder{logger: logger.With(slog.String("handler", "sync"))},
		runner:    runner,
		api:       api,
	}
}

// StartSync handles POST /api/v1/sync. The request comes from the query
// string (limit, all) or a JSON body; query values win.
func (h *SyncHandler) StartSync(w http.ResponseWriter, r *http.Request) {
	var req domain.SyncRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	q := r.URL.Query()
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		req.Limit = limit
	}
	if v := q.Get("all"); v != "" {
		all, err := strconv.ParseBool(v)
		if err != nil {
			h.respondError(w, http.StatusBadRequest, "all must be a boolean")
			return
		}
		req.All = all
	}

	// The session outlives the request but keeps its logging values
	ctx := context.WithoutCancel(r.Context())
	sess, err := h.runner.Start(ctx, req, services.SyncCallbacks{
		OnError: func(err error) {
			h.logger.WarnContext(ctx, "background sync ended with error", slog.Any("error", err))
		},
	})
	if err != nil {
		h.respondFailure(w, r, err, "Failed to start sync")
		return
	}

	h.logger.InfoContext(r.Context(), "sync started",
		slog.String("session_id", sess.ID()),
		slog.Int("limit", req.Limit),
		slog.Bool("all", req.All))
	h.respondJSON(w, http.StatusAccepted, h.runner.Snapshot())
}

// CurrentSync handles GET /api/v1/sync/current
func (h *SyncHandler) CurrentSync(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.runner.Snapshot())
}

// CancelSync handles DELETE /api/v1/sync/current
func (h *SyncHandler) CancelSync(w http.ResponseWriter, r *http.Request) {
	if !h.runner.Cancel() {
		h.respondError(w, http.StatusNotFound, "No sync in progress")
		return
	}
	h.logger.InfoContext(r.Context(), "sync cancelled by request")
	h.respondJSON(w, http.StatusOK, h.runner.Snapshot())
}

// LastSync handles GET /api/v1/sync/last
func (h *SyncHandler) LastSync(w http.ResponseWriter, r *http.Request) {
	last, err := h.api.LastSync(r.Context())
	if err != nil {
		h.respondFailure(w, r, err, "Failed to read last sync")
		return
	}
	h.respondJSON(w, http.StatusOK, last)
}
