// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/ammerola/gamedash/internal/core/domain"
)

// ListView is one rendered page of a list view together with the
// navigation metadata the presentation layer needs.
type ListView struct {
	Items         []domain.Record   `json:"items"`
	Page          int               `json:"page"`
	PageSize      int               `json:"page_size"`
	TotalCount    int               `json:"total_count"`
	TotalPages    int               `json:"total_pages"`
	PageNumbers   []int             `json:"page_numbers"`
	ActiveFilters int               `json:"active_filters"`
	Genres        []string          `json:"genres"`
	Query         domain.QueryState `json:"query"`
}

// CatalogService serves the games list view
type CatalogService interface {
	View(ctx context.Context, q domain.QueryState) (*ListView, error)
	Records(ctx context.Context, q domain.QueryState) ([]domain.Record, error)
	DeleteGame(ctx context.Context, id int64) error
	LastSync(ctx context.Context) (*domain.SyncLog, error)
}

// SalesService serves the store list view and its mutations
type SalesService interface {
	View(ctx context.Context, q domain.QueryState) (*ListView, error)
	Records(ctx context.Context, q domain.QueryState) ([]domain.Record, error)
	Create(ctx context.Context, in domain.SaleInput) (*domain.Sale, error)
	Update(ctx context.Context, id int64, in domain.SaleInput) (*domain.Sale, error)
	Delete(ctx context.Context, id int64) error
	Candidates(ctx context.Context, search string) ([]domain.Record, error)
}

// DashboardService reads analytics through the cache
type DashboardService interface {
	Summary(ctx context.Context) (*domain.Summary, error)
	PriceRangeByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceRangeByGenre, error)
	GamesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.GamesByDate, error)
	AvgRatingByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.AvgRatingByGenre, error)
	PriceGapByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceGapByGenre, error)
	SalesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.SalesByDate, error)
	MaxPriceByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.MaxPriceByDate, error)
	PriceRatio(ctx context.Context, genre string) ([]domain.PriceRatioItem, error)
	// Invalidate drops every cached analytics row
	Invalidate(ctx context.Context)
}
