// internal/core/services/sales.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// SalesService serves the store list view and its mutations
type SalesService struct {
	sales       ports.SalesAPI
	games       ports.GamesAPI
	invalidator ports.CacheInvalidator
	fetchSize   int
	logger      *slog.Logger
}

var _ ports.SalesService = (*SalesService)(nil)

// NewSalesService creates a new sales service
func NewSalesService(sales ports.SalesAPI, games ports.GamesAPI, invalidator ports.CacheInvalidator,
	fetchSize int, logger *slog.Logger) *SalesService {
	if fetchSize < 1 {
		fetchSize = DefaultFetchPageSize
	}
	return &SalesService{
		sales:       sales,
		games:       games,
		invalidator: invalidator,
		fetchSize:   fetchSize,
		logger:      logger.With(slog.String("service", "sales")),
	}
}

// View returns one page of the filtered and sorted store listings
func (s *SalesService) View(ctx context.Context, q domain.QueryState) (*ports.ListView, error) {
	records, err := s.fetch(ctx, q)
	if err != nil {
		return nil, err
	}
	if records, err = s.joinCatalog(ctx, records, q); err != nil {
		return nil, err
	}
	return BuildView(records, q), nil
}

// Records returns every matching listing without paging
func (s *SalesService) Records(ctx context.Context, q domain.QueryState) ([]domain.Record, error) {
	sales, err := fetchAll(ctx, s.listParams(q), s.sales.ListSales)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	records, err := s.joinCatalog(ctx, domain.RecordsFromSales(sales), q)
	if err != nil {
		return nil, err
	}
	return Arrange(records, q), nil
}

// Create validates the input before anything is sent upstream
func (s *SalesService) Create(ctx context.Context, in domain.SaleInput) (*domain.Sale, error) {
	payload, err := in.Validate()
	if err != nil {
		return nil, err
	}

	sale, err := s.sales.CreateSale(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	s.invalidator.InvalidateAfterMutation(ctx)

	s.logger.InfoContext(ctx, "created sale",
		slog.Int64("sale_id", sale.ID),
		slog.Int64("game_id", sale.GameID),
		slog.String("our_price", sale.OurPrice.StringFixed(2)))

	return sale, nil
}

// Update applies a partial update; at least one field must be set
func (s *SalesService) Update(ctx context.Context, id int64, in domain.SaleInput) (*domain.Sale, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}

	payload, err := in.ValidatePartial()
	if err != nil {
		return nil, err
	}

	sale, err := s.sales.UpdateSale(ctx, id, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to update sale %d: %w", id, err)
	}

	s.invalidator.InvalidateAfterMutation(ctx)

	s.logger.InfoContext(ctx, "updated sale", slog.Int64("sale_id", id))
	return sale, nil
}

// Delete removes a store listing
func (s *SalesService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}

	if err := s.sales.DeleteSale(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", id, err)
	}

	s.invalidator.InvalidateAfterMutation(ctx)

	s.logger.InfoContext(ctx, "deleted sale", slog.Int64("sale_id", id))
	return nil
}

// Candidates lists catalog games matching search that are not yet listed
// in the store. An empty search yields no candidates.
func (s *SalesService) Candidates(ctx context.Context, search string) ([]domain.Record, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return []domain.Record{}, nil
	}

	games, err := fetchAll(ctx, domain.ListParams{
		PageSize: s.fetchSize,
		Search:   search,
		SortBy:   string(domain.SortName),
		SortDir:  domain.SortAsc,
	}, s.games.ListGames)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}

	listed, err := fetchAll(ctx, domain.ListParams{
		PageSize: s.fetchSize,
		Search:   search,
		SortBy:   string(domain.SortUpdatedAt),
		SortDir:  domain.SortDesc,
	}, s.sales.ListSales)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}

	taken := make(map[int64]struct{}, len(listed))
	for _, sale := range listed {
		taken[sale.GameID] = struct{}{}
	}

	criteria := domain.FilterCriteria{Search: search}
	out := make([]domain.Record, 0, len(games))
	for _, r := range domain.RecordsFromGames(games) {
		if _, ok := taken[r.GameID]; ok {
			continue
		}
		if MatchFilter(r, criteria) {
			out = append(out, r)
		}
	}
	return out, nil
}

// joinCatalog looks up release dates and ratings only when the query
// filters or sorts on them.
func (s *SalesService) joinCatalog(ctx context.Context, records []domain.Record, q domain.QueryState) ([]domain.Record, error) {
	if len(records) == 0 || !usesCatalogFields(q) {
		return records, nil
	}

	games, err := fetchAll(ctx, domain.ListParams{
		PageSize: s.fetchSize,
		Search:   q.Filter.Search,
		Genre:    q.Filter.Genre,
		SortBy:   string(domain.SortUpdatedAt),
		SortDir:  domain.SortDesc,
	}, s.games.ListGames)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}
	return domain.JoinGames(records, games), nil
}

func usesCatalogFields(q domain.QueryState) bool {
	return q.Filter.Released.IsSet() || q.Filter.Rating.IsSet() ||
		q.Sort.Key == domain.SortReleaseDate || q.Sort.Key == domain.SortRating
}

func (s *SalesService) listParams(q domain.QueryState) domain.ListParams {
	return domain.ListParams{
		Page:     1,
		PageSize: s.fetchSize,
		Search:   q.Filter.Search,
		Genre:    q.Filter.Genre,
		SortBy:   string(domain.SortUpdatedAt),
		SortDir:  domain.SortDesc,
	}
}

func (s *SalesService) fetch(ctx context.Context, q domain.QueryState) ([]domain.Record, error) {
	page, err := s.sales.ListSales(ctx, s.listParams(q))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	return domain.RecordsFromSales(page.Data), nil
}
