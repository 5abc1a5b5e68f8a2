// internal/core/services/dashboard.go
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// DashboardService reads analytics rows through the cache
type DashboardService struct {
	api    ports.DashboardAPI
	cache  ports.CacheRepository
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(api ports.DashboardAPI, cache ports.CacheRepository, ttl time.Duration,
	logger *slog.Logger) *DashboardService {
	return &DashboardService{
		api:    api,
		cache:  cache,
		ttl:    ttl,
		logger: logger.With(slog.String("service", "dashboard")),
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*domain.Summary, error) {
	var out *domain.Summary
	err := s.cache.GetOrSet(ctx, ports.BuildKey(ports.PrefixDashboard, "summary"), &out,
		func() (interface{}, error) { return s.api.Summary(ctx) }, s.ttl)
	return out, err
}

func (s *DashboardService) PriceRangeByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceRangeByGenre, error) {
	return cachedRows(ctx, s, "price-range-by-genre", r, s.api.PriceRangeByGenre)
}

func (s *DashboardService) GamesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.GamesByDate, error) {
	return cachedRows(ctx, s, "games-by-date", r, s.api.GamesByDate)
}

func (s *DashboardService) AvgRatingByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.AvgRatingByGenre, error) {
	return cachedRows(ctx, s, "avg-rating-by-genre", r, s.api.AvgRatingByGenre)
}

func (s *DashboardService) PriceGapByGenre(ctx context.Context, r domain.AnalyticsRange) ([]domain.PriceGapByGenre, error) {
	return cachedRows(ctx, s, "price-gap-by-genre", r, s.api.PriceGapByGenre)
}

func (s *DashboardService) SalesByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.SalesByDate, error) {
	return cachedRows(ctx, s, "sales-by-date", r, s.api.SalesByDate)
}

func (s *DashboardService) MaxPriceByDate(ctx context.Context, r domain.AnalyticsRange) ([]domain.MaxPriceByDate, error) {
	return cachedRows(ctx, s, "max-price-by-date", r, s.api.MaxPriceByDate)
}

// PriceRatio is keyed by genre; an empty genre covers every game
func (s *DashboardService) PriceRatio(ctx context.Context, genre string) ([]domain.PriceRatioItem, error) {
	out := []domain.PriceRatioItem{}
	key := ports.BuildKey(ports.PrefixDashboard, "price-ratio", genre)
	err := s.cache.GetOrSet(ctx, key, &out, func() (interface{}, error) {
		return s.api.PriceRatio(ctx, genre)
	}, s.ttl)
	return out, err
}

// Invalidate drops every cached analytics row
func (s *DashboardService) Invalidate(ctx context.Context) {
	pattern := ports.BuildKey(ports.PrefixDashboard, "*")
	if err := s.cache.DeletePattern(ctx, pattern); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate dashboard cache", slog.Any("error", err))
	}
}

func cachedRows[T any](ctx context.Context, s *DashboardService, endpoint string, r domain.AnalyticsRange,
	fetch func(context.Context, domain.AnalyticsRange) ([]T, error)) ([]T, error) {
	out := []T{}
	key := ports.BuildKey(ports.PrefixDashboard, endpoint, r.From, r.To)
	err := s.cache.GetOrSet(ctx, key, &out, func() (interface{}, error) {
		return fetch(ctx, r)
	}, s.ttl)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load dashboard rows",
			slog.String("endpoint", endpoint),
			slog.Any("error", err))
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
