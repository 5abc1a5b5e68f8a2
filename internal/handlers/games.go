// internal/handlers/games.go
package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ammerola/gamedash/internal/adapters/export"
	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// GamesHandler serves the catalog list view
type GamesHandler struct {
	responder
	catalog  ports.CatalogService
	pageSize int
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(catalog ports.CatalogService, pageSize int, logger *slog.Logger) *GamesHandler {
	return &GamesHandler{
		responder: responder{logger: logger.With(slog.String("handler", "games"))},
		catalog:   catalog,
		pageSize:  pageSize,
	}
}

// ListGames handles GET /api/v1/games
func (h *GamesHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	view, err := h.catalog.View(r.Context(), parseQueryState(r, h.pageSize))
	if err != nil {
		h.respondFailure(w, r, err, "Failed to list games")
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

// DeleteGame handles DELETE /api/v1/games/{id}
func (h *GamesHandler) DeleteGame(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid game ID")
		return
	}

	if err := h.catalog.DeleteGame(ctx, id); err != nil {
		h.respondFailure(w, r, err, "Failed to delete game")
		return
	}

	h.logger.InfoContext(ctx, "game deleted", slog.Int64("game_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// LastSync handles GET /api/v1/games/last-sync. The body is null when no
// sync has completed or the backend could not say.
func (h *GamesHandler) LastSync(w http.ResponseWriter, r *http.Request) {
	last, err := h.catalog.LastSync(r.Context())
	if err != nil {
		h.respondFailure(w, r, err, "Failed to read last sync")
		return
	}
	h.respondJSON(w, http.StatusOK, last)
}

// ExportGames handles GET /api/v1/games/export
func (h *GamesHandler) ExportGames(w http.ResponseWriter, r *http.Request) {
	records, err := h.catalog.Records(r.Context(), parseQueryState(r, h.pageSize))
	if err != nil {
		h.respondFailure(w, r, err, "Failed to export games")
		return
	}
	writeExport(w, r, h.responder, domain.KindGame, records)
}

// writeExport renders records as an xlsx attachment
func writeExport(w http.ResponseWriter, r *http.Request, h responder, kind domain.RecordKind, records []domain.Record) {
	ctx := r.Context()

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, records); err != nil {
		h.logger.ErrorContext(ctx, "failed to generate export", slog.Any("error", err))
		h.respondError(w, http.StatusInternalServerError, "Failed to generate Excel file")
		return
	}

	filename := export.FileName(kind, time.Now())
	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response", slog.Any("error", err))
		return
	}

	h.logger.InfoContext(ctx, "export completed",
		slog.String("kind", string(kind)),
		slog.Int("total_rows", len(records)),
		slog.String("filename", filename))
}
