// internal/handlers/sales.go
package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// SalesHandler serves the store list view and its mutations
type SalesHandler struct {
	responder
	sales    ports.SalesService
	pageSize int
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(sales ports.SalesService, pageSize int, logger *slog.Logger) *SalesHandler {
	return &SalesHandler{
		responder: responder{logger: logger.With(slog.String("handler", "sales"))},
		sales:     sales,
		pageSize:  pageSize,
	}
}

// SaleRequest is the create/update body. our_price may be sent as a JSON
// number or string.
type SaleRequest struct {
	GameID   *int64          `json:"game_id"`
	OurPrice json.RawMessage `json:"our_price"`
}

// ToInput converts the request, keeping the price as raw text
func (req SaleRequest) ToInput() domain.SaleInput {
	in := domain.SaleInput{GameID: req.GameID}

	raw := bytes.TrimSpace(req.OurPrice)
	if len(raw) == 0 || string(raw) == "null" {
		return in
	}
	text := string(raw)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	in.Price = &text
	return in
}

// ListSales handles GET /api/v1/sales
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	view, err := h.sales.View(r.Context(), parseQueryState(r, h.pageSize))
	if err != nil {
		h.respondFailure(w, r, err, "Failed to list sales")
		return
	}
	h.respondJSON(w, http.StatusOK, view)
}

// CreateSale handles POST /api/v1/sales
func (h *SalesHandler) CreateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sale, err := h.sales.Create(ctx, req.ToInput())
	if err != nil {
		h.respondFailure(w, r, err, "Failed to create sale")
		return
	}

	h.logger.InfoContext(ctx, "sale created",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("game_id", sale.GameID))
	h.respondJSON(w, http.StatusCreated, sale)
}

// UpdateSale handles PATCH /api/v1/sales/{id}
func (h *SalesHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid sale ID")
		return
	}

	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	sale, err := h.sales.Update(ctx, id, req.ToInput())
	if err != nil {
		h.respondFailure(w, r, err, "Failed to update sale")
		return
	}

	h.logger.InfoContext(ctx, "sale updated", slog.Int64("sale_id", id))
	h.respondJSON(w, http.StatusOK, sale)
}

// DeleteSale handles DELETE /api/v1/sales/{id}
func (h *SalesHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r, "id")
	if !ok {
		h.respondError(w, http.StatusBadRequest, "Invalid sale ID")
		return
	}

	if err := h.sales.Delete(ctx, id); err != nil {
		h.respondFailure(w, r, err, "Failed to delete sale")
		return
	}

	h.logger.InfoContext(ctx, "sale deleted", slog.Int64("sale_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// Candidates handles GET /api/v1/sales/candidates?search=
func (h *SalesHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	records, err := h.sales.Candidates(r.Context(), search)
	if err != nil {
		h.respondFailure(w, r, err, "Failed to search games")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{"items": records})
}

// ExportSales handles GET /api/v1/sales/export
func (h *SalesHandler) ExportSales(w http.ResponseWriter, r *http.Request) {
	records, err := h.sales.Records(r.Context(), parseQueryState(r, h.pageSize))
	if err != nil {
		h.respondFailure(w, r, err, "Failed to export sales")
		return
	}
	writeExport(w, r, h.responder, domain.KindSale, records)
}
