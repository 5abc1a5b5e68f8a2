// internal/handlers/router.go
package handlers

import (
	"context"
	"net/http"

	"github.com/ammerola/gamedash/internal/handlers/middleware"
	"github.com/ammerola/gamedash/internal/pkg/config"
	"github.com/ammerola/gamedash/internal/pkg/logger"
)

const apiV1 = "/api/v1"

// Routes groups the gateway's handlers
type Routes struct {
	Games     *GamesHandler
	Sales     *SalesHandler
	Sync      *SyncHandler
	Dashboard *DashboardHandler
	Health    *HealthHandler
}

// NewRouter registers every route and wraps the mux in the middleware
// chain. ctx bounds background middleware work such as limiter sweeping.
func NewRouter(ctx context.Context, routes Routes, cfg *config.Config, log *logger.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterRoutes(mux, routes)

	chain := []func(http.Handler) http.Handler{
		middleware.RequestID(cfg.Security.RequestIDHeader),
		middleware.Logger(log),
		middleware.Recovery(log.Logger),
	}
	if cfg.Security.SecureHeaders {
		chain = append(chain, middleware.SecureHeaders)
	}
	if len(cfg.Security.AllowedOrigins) > 0 {
		chain = append(chain, middleware.CORS(cfg.Security.AllowedOrigins))
	}
	if cfg.Security.RateLimitRequests > 0 {
		chain = append(chain, middleware.RateLimit(ctx, cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration))
	}

	return middleware.Chain(mux, chain...)
}

// RegisterRoutes uses Go 1.22 method-specific patterns
func RegisterRoutes(mux *http.ServeMux, r Routes) {
	mux.HandleFunc("GET /health", r.Health.Health)
	mux.HandleFunc("GET /ready", r.Health.Readiness)
	mux.HandleFunc("GET "+apiV1+"/health", r.Health.Health)

	mux.HandleFunc("GET "+apiV1+"/games", r.Games.ListGames)
	mux.HandleFunc("GET "+apiV1+"/games/last-sync", r.Games.LastSync)
	mux.HandleFunc("GET "+apiV1+"/games/export", r.Games.ExportGames)
	mux.HandleFunc("DELETE "+apiV1+"/games/{id}", r.Games.DeleteGame)

	mux.HandleFunc("GET "+apiV1+"/sales", r.Sales.ListSales)
	mux.HandleFunc("POST "+apiV1+"/sales", r.Sales.CreateSale)
	mux.HandleFunc("GET "+apiV1+"/sales/candidates", r.Sales.Candidates)
	mux.HandleFunc("GET "+apiV1+"/sales/export", r.Sales.ExportSales)
	mux.HandleFunc("PATCH "+apiV1+"/sales/{id}", r.Sales.UpdateSale)
	mux.HandleFunc("DELETE "+apiV1+"/sales/{id}", r.Sales.DeleteSale)

	mux.HandleFunc("POST "+apiV1+"/sync", r.Sync.StartSync)
	mux.HandleFunc("GET "+apiV1+"/sync/current", r.Sync.CurrentSync)
	mux.HandleFunc("DELETE "+apiV1+"/sync/current", r.Sync.CancelSync)
	mux.HandleFunc("GET "+apiV1+"/sync/last", r.Sync.LastSync)

	mux.HandleFunc("GET "+apiV1+"/dashboard", r.Dashboard.GetOverview)
	mux.HandleFunc("GET "+apiV1+"/dashboard/summary", r.Dashboard.GetSummary)
	mux.HandleFunc("GET "+apiV1+"/dashboard/price-range-by-genre", r.Dashboard.GetPriceRangeByGenre)
	mux.HandleFunc("GET "+apiV1+"/dashboard/games-by-date", r.Dashboard.GetGamesByDate)
	mux.HandleFunc("GET "+apiV1+"/dashboard/avg-rating-by-genre", r.Dashboard.GetAvgRatingByGenre)
	mux.HandleFunc("GET "+apiV1+"/dashboard/price-gap-by-genre", r.Dashboard.GetPriceGapByGenre)
	mux.HandleFunc("GET "+apiV1+"/dashboard/sales-by-date", r.Dashboard.GetSalesByDate)
	mux.HandleFunc("GET "+apiV1+"/dashboard/max-price-by-date", r.Dashboard.GetMaxPriceByDate)
	mux.HandleFunc("GET "+apiV1+"/dashboard/price-ratio", r.Dashboard.GetPriceRatio)
}
