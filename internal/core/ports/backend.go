// internal/core/ports/backend.go
package ports

import (
	"context"

	"github.com/ammerola/gamedash/internal/core/domain"
)

// GamesAPI is the catalog side of the games backend
type GamesAPI interface {
	ListGames(ctx context.Context, params domain.ListParams) (*domain.Page[domain.Game], error)
	DeleteGame(ctx context.Context, id int64) error
	// LastGamesSync returns nil when no sync has ever completed
	LastGamesSync(ctx context.Context) (*domain.SyncLog, error)
}

// SalesAPI is CRUD over the store listings
type SalesAPI interface {
	ListSales(ctx context.Context, params domain.ListParams) (*domain.Page[domain.Sale], error)
	GetSale(ctx context.Context, id int64) (*domain.Sale, error)
	CreateSale(ctx context.Context, payload domain.SalePayload) (*domain.Sale, error)
	UpdateSale(ctx context.Context, id int64, payload domain.SalePayload) (*domain.Sale, error)
	DeleteSale(ctx context.Context, id int64) error
}

// SyncAPI triggers and inspects backend sync jobs
type SyncAPI interface {
	TriggerSync(ctx context.Context, limit int) (*domain.SyncTrigger, error)
	TriggerSyncAll(ctx context.Context) (*domain.SyncTrigger, error)
	SyncStatus(ctx context.Context, taskID string) (*domain.SyncStatus, error)
	LastSync(ctx context.Context) (*domain.SyncLog, error)
}

// DashboardAPI exposes the backend's aggregate analytics
type DashboardAPI interface {
	Summary(ctx context.Context) (*domain.Summary, error)
	PriceRangeByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceRangeByGenre, error)
	GamesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.GamesByDate, error)
	AvgRatingByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.AvgRatingByGenre, error)
	PriceGapByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceGapByGenre, error)
	SalesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.SalesByDate, error)
	MaxPriceByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.MaxPriceByDate, error)
	PriceRatio(ctx context.Context, genre string) ([]domain.PriceRatioItem, error)
}

// BackendAPI is the full Data Access Layer
type BackendAPI interface {
	GamesAPI
	SalesAPI
	SyncAPI
	DashboardAPI
}
