// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// DefaultFetchPageSize is the backend page fetched per list view
const DefaultFetchPageSize = 100

const lastSyncTTL = 30 * time.Second

// CatalogService serves the games list view. One backend page is fetched
// per request; narrowing, ordering and paging happen locally.
type CatalogService struct {
	api         ports.GamesAPI
	cache       ports.CacheRepository
	invalidator ports.CacheInvalidator
	fetchSize   int
	logger      *slog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(api ports.GamesAPI, cache ports.CacheRepository, invalidator ports.CacheInvalidator,
	fetchSize int, logger *slog.Logger) *CatalogService {
	if fetchSize < 1 {
		fetchSize = DefaultFetchPageSize
	}
	return &CatalogService{
		api:         api,
		cache:       cache,
		invalidator: invalidator,
		fetchSize:   fetchSize,
		logger:      logger.With(slog.String("service", "catalog")),
	}
}

// View returns one page of the filtered and sorted catalog
func (s *CatalogService) View(ctx context.Context, q domain.QueryState) (*ports.ListView, error) {
	records, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}

	view := BuildView(records, q)

	s.logger.DebugContext(ctx, "catalog view built",
		slog.Int("fetched", len(records)),
		slog.Int("matched", view.TotalCount),
		slog.Int("page", view.Page))

	return view, nil
}

// Records returns the whole filtered and sorted catalog without paging.
// Every backend page is read.
func (s *CatalogService) Records(ctx context.Context, q domain.QueryState) ([]domain.Record, error) {
	games, err := fetchAll(ctx, s.listParams(q), s.api.ListGames)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	return Arrange(domain.RecordsFromGames(games), q), nil
}

// DeleteGame removes a game upstream and drops derived cached rows
func (s *CatalogService) DeleteGame(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	if err := s.api.DeleteGame(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game %d: %w", id, err)
	}

	s.invalidator.InvalidateAfterMutation(ctx)

	s.logger.InfoContext(ctx, "deleted game", slog.Int64("game_id", id))
	return nil
}

// LastSync is best effort: a backend failure is logged and reported as no
// sync at all.
func (s *CatalogService) LastSync(ctx context.Context) (*domain.SyncLog, error) {
	var last *domain.SyncLog
	key := ports.BuildKey(ports.PrefixSync, "games", "last")

	err := s.cache.GetOrSet(ctx, key, &last, func() (interface{}, error) {
		return s.api.LastGamesSync(ctx)
	}, lastSyncTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "last sync lookup failed", slog.Any("error", err))
		return nil, nil
	}
	return last, nil
}

func (s *CatalogService) listParams(q domain.QueryState) domain.ListParams {
	return domain.ListParams{
		Page:     1,
		PageSize: s.fetchSize,
		Search:   q.Filter.Search,
		Genre:    q.Filter.Genre,
		SortBy:   string(domain.SortUpdatedAt),
		SortDir:  domain.SortDesc,
	}
}

func (s *CatalogService) fetch(ctx context.Context, q domain.QueryState) ([]domain.Record, error) {
	page, err := s.api.ListGames(ctx, s.listParams(q))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	return domain.RecordsFromGames(page.Data), nil
}
