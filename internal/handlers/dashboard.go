// internal/handlers/dashboard.go
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// DashboardHandler serves the analytics endpoints
type DashboardHandler struct {
	responder
	service ports.DashboardService
	now     func() time.Time
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service ports.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		responder: responder{logger: logger.With(slog.String("handler", "dashboard"))},
		service:   service,
		now:       time.Now,
	}
}

// Overview is the landing payload: summary cards and the genre with the
// widest price gap over the default range.
type Overview struct {
	Summary     *domain.Summary       `json:"summary"`
	TopGapGenre string                `json:"top_gap_genre"`
	Range       domain.AnalyticsRange `json:"range"`
}

// GetOverview handles GET /api/v1/dashboard
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rng, ok := parseAnalyticsRange(r, domain.DefaultAnalyticsRange(h.now()))
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid date range")
		return
	}

	summary, err := h.service.Summary(ctx)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to load dashboard")
		return
	}

	gaps, err := h.service.PriceGapByGenre(ctx, rng)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to load dashboard")
		return
	}

	h.respondJSON(w, http.StatusOK, Overview{
		Summary:     summary,
		TopGapGenre: domain.TopGapGenre(gaps),
		Range:       rng,
	})
}

// GetSummary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		h.respondFailure(w, r, err, "Failed to load summary")
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

// GetPriceRatio handles GET /api/v1/dashboard/price-ratio?genre=
func (h *DashboardHandler) GetPriceRatio(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.PriceRatio(r.Context(), r.URL.Query().Get("genre"))
	if err != nil {
		h.respondFailure(w, r, err, "Failed to load price ratio")
		return
	}
	h.respondJSON(w, http.StatusOK, rows)
}

func (h *DashboardHandler) GetPriceRangeByGenre(w http.ResponseWriter, r *http.Request) {
	serveRange(h, w, r, h.service.PriceRangeByGenre)
}

func (h *DashboardHandler) GetGamesByDate(w http.ResponseWriter, r *http.Request) {
	serveRange(h, w, r, h.service.GamesByDate)
}

func (h *DashboardHandler) GetAvgRatingByGenre(w http.ResponseWriter, r *http.Request) {
	serveRange(h, w, r, h.service.AvgRatingByGenre)
}

func (h *DashboardHandler) GetPriceGapByGenre(w http.ResponseWriter, r *http.Request) {
	serveRange(h, w, r, h.service.PriceGapByGenre)
}

func (h *DashboardHandler) GetSalesByDate(w http.ResponseWriter, r *http.Request) {
	serveRange(h, w, r, h.service.SalesByDate)
}

func (h *DashboardHandler) GetMaxPriceByDate(w http.ResponseWriter, r *http.Request) {
	serveRange(h, w, r, h.service.MaxPriceByDate)
}

// serveRange answers a date-ranged analytics endpoint
func serveRange[T any](h *DashboardHandler, w http.ResponseWriter, r *http.Request,
	load func(context.Context, domain.AnalyticsRange) ([]T, error)) {

	rng, ok := parseAnalyticsRange(r, domain.DefaultAnalyticsRange(h.now()))
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid date range")
		return
	}

	rows, err := load(r.Context(), rng)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to load analytics")
		return
	}
	if rows == nil {
		rows = []T{}
	}
	h.respondJSON(w, http.StatusOK, rows)
}
