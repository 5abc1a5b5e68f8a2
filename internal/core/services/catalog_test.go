package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/gamedash/internal/adapters/redis_adapter"
	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
	"github.com/ammerola/gamedash/test/helpers"
	"github.com/ammerola/gamedash/test/mocks"
)

func gamesPage(games ...domain.Game) *domain.Page[domain.Game] {
	return &domain.Page[domain.Game]{Total: int64(len(games)), Page: 1, PageSize: 100, Data: games}
}

func TestCatalogService_View(t *testing.T) {
	games := []domain.Game{
		helpers.CreateTestGame(func(g *domain.Game) { g.ID = 1; g.Name = "Hades"; g.PriceCheap = helpers.Dec("12.50") }),
		helpers.CreateTestGame(func(g *domain.Game) { g.ID = 2; g.Name = "Celeste"; g.PriceCheap = helpers.Dec("4.99") }),
		helpers.CreateTestGame(func(g *domain.Game) { g.ID = 3; g.Name = "Outer Wilds"; g.PriceCheap = nil }),
		helpers.CreateTestGame(func(g *domain.Game) { g.ID = 4; g.Name = "Hollow Knight"; g.PriceCheap = helpers.Dec("7.49") }),
	}

	tests := []struct {
		name        string
		query       domain.QueryState
		setupMocks  func(*mocks.MockGamesAPI)
		expectedIDs []int64
		total       int
		expectedErr string
	}{
		{
			name:  "fetches_one_backend_page_and_sorts_locally",
			query: domain.NewQueryState(10, domain.SortState{Key: domain.SortPrice, Dir: domain.SortAsc}),
			setupMocks: func(m *mocks.MockGamesAPI) {
				m.EXPECT().ListGames(gomock.Any(), domain.ListParams{
					Page:     1,
					PageSize: 50,
					SortBy:   "updated_at",
					SortDir:  domain.SortDesc,
				}).Return(gamesPage(games...), nil)
			},
			expectedIDs: []int64{2, 4, 1, 3},
			total:       4,
		},
		{
			name: "search_and_genre_are_forwarded_and_applied",
			query: domain.NewQueryState(10, domain.SortState{}).WithFilter(domain.FilterCriteria{
				Search: "ho",
				Genre:  "RPG",
			}),
			setupMocks: func(m *mocks.MockGamesAPI) {
				m.EXPECT().ListGames(gomock.Any(), gomock.Cond(func(p domain.ListParams) bool {
					return p.Search == "ho" && p.Genre == "RPG"
				})).Return(gamesPage(games...), nil)
			},
			expectedIDs: []int64{4},
			total:       1,
		},
		{
			name:  "local_price_filter_drops_missing_prices",
			query: domain.NewQueryState(2, domain.SortState{}).WithFilter(domain.FilterCriteria{Price: domain.Range{Min: "5"}}),
			setupMocks: func(m *mocks.MockGamesAPI) {
				m.EXPECT().ListGames(gomock.Any(), gomock.Any()).Return(gamesPage(games...), nil)
			},
			expectedIDs: []int64{1, 4},
			total:       2,
		},
		{
			name:  "backend_error",
			query: domain.NewQueryState(10, domain.SortState{}),
			setupMocks: func(m *mocks.MockGamesAPI) {
				m.EXPECT().ListGames(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedErr: "failed to fetch games: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockGamesAPI(ctrl)
			tt.setupMocks(api)

			svc := services.NewCatalogService(api, redis_a.NopCache{}, mocks.NewMockCacheInvalidator(ctrl), 50, helpers.TestLogger())

			view, err := svc.View(context.Background(), tt.query)

			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.expectedErr)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIDs, ids(view.Items))
			assert.Equal(t, tt.total, view.TotalCount)
			assert.Equal(t, 1, view.Page)
			assert.Equal(t, []string{"RPG"}, view.Genres)
		})
	}
}

func TestCatalogService_Records(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockGamesAPI(ctrl)
	api.EXPECT().ListGames(gomock.Any(), gomock.Any()).Return(gamesPage(helpers.CreateTestGames(25)...), nil)

	svc := services.NewCatalogService(api, redis_a.NopCache{}, mocks.NewMockCacheInvalidator(ctrl), 0, helpers.TestLogger())

	q := domain.NewQueryState(10, domain.SortState{Key: domain.SortName, Dir: domain.SortDesc}).WithPage(3)
	records, err := svc.Records(context.Background(), q)

	require.NoError(t, err)
	assert.Len(t, records, 25, "records are not paged")
	assert.Equal(t, "Game 9", records[0].Name)
}

// servePages answers list calls from all, honouring Page and PageSize the
// way the backend does
func servePages[T any](all []T) func(context.Context, domain.ListParams) (*domain.Page[T], error) {
	return func(_ context.Context, p domain.ListParams) (*domain.Page[T], error) {
		start := min((p.Page-1)*p.PageSize, len(all))
		end := min(start+p.PageSize, len(all))
		return &domain.Page[T]{Total: int64(len(all)), Page: p.Page, PageSize: p.PageSize, Data: all[start:end]}, nil
	}
}

func TestCatalogService_Records_ReadsEveryBackendPage(t *testing.T) {
	tests := []struct {
		name  string
		serve func(context.Context, domain.ListParams) (*domain.Page[domain.Game], error)
		calls int
	}{
		{
			name:  "total_spans_three_pages",
			serve: servePages(helpers.CreateTestGames(250)),
			calls: 3,
		},
		{
			name: "stops_on_empty_page_when_total_overstates",
			serve: func(ctx context.Context, p domain.ListParams) (*domain.Page[domain.Game], error) {
				page, err := servePages(helpers.CreateTestGames(250))(ctx, p)
				page.Total = 500
				return page, err
			},
			calls: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockGamesAPI(ctrl)
			var pages []int
			api.EXPECT().ListGames(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, p domain.ListParams) (*domain.Page[domain.Game], error) {
					pages = append(pages, p.Page)
					return tt.serve(ctx, p)
				}).
				Times(tt.calls)

			svc := services.NewCatalogService(api, redis_a.NopCache{}, mocks.NewMockCacheInvalidator(ctrl), 100, helpers.TestLogger())

			q := domain.NewQueryState(10, domain.SortState{Key: domain.SortPrice, Dir: domain.SortDesc})
			records, err := svc.Records(context.Background(), q)

			require.NoError(t, err)
			assert.Len(t, records, 250)
			assert.Equal(t, int64(250), records[0].ID, "highest price first across pages")
			assert.Equal(t, 1, pages[0])
			assert.Equal(t, tt.calls, pages[len(pages)-1])
		})
	}
}

func TestCatalogService_Records_PageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockGamesAPI(ctrl)
	gomock.InOrder(
		api.EXPECT().ListGames(gomock.Any(), gomock.Any()).DoAndReturn(servePages(helpers.CreateTestGames(150))),
		api.EXPECT().ListGames(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")),
	)

	svc := services.NewCatalogService(api, redis_a.NopCache{}, mocks.NewMockCacheInvalidator(ctrl), 100, helpers.TestLogger())
	_, err := svc.Records(context.Background(), domain.NewQueryState(10, domain.SortState{}))

	assert.EqualError(t, err, "failed to fetch games: connection reset")
}

func TestCatalogService_DeleteGame(t *testing.T) {
	tests := []struct {
		name        string
		id          int64
		setupMocks  func(*mocks.MockGamesAPI, *mocks.MockCacheInvalidator)
		expectedErr error
	}{
		{
			name: "deletes_and_invalidates",
			id:   7,
			setupMocks: func(api *mocks.MockGamesAPI, inv *mocks.MockCacheInvalidator) {
				api.EXPECT().DeleteGame(gomock.Any(), int64(7)).Return(nil)
				inv.EXPECT().InvalidateAfterMutation(gomock.Any())
			},
		},
		{
			name:        "invalid_id_never_calls_backend",
			id:          0,
			setupMocks:  func(*mocks.MockGamesAPI, *mocks.MockCacheInvalidator) {},
			expectedErr: domain.ErrInvalidID,
		},
		{
			name: "not_found_skips_invalidation",
			id:   9,
			setupMocks: func(api *mocks.MockGamesAPI, _ *mocks.MockCacheInvalidator) {
				api.EXPECT().DeleteGame(gomock.Any(), int64(9)).Return(domain.ErrNotFound)
			},
			expectedErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			api := mocks.NewMockGamesAPI(ctrl)
			inv := mocks.NewMockCacheInvalidator(ctrl)
			tt.setupMocks(api, inv)

			svc := services.NewCatalogService(api, redis_a.NopCache{}, inv, 100, helpers.TestLogger())
			err := svc.DeleteGame(context.Background(), tt.id)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCatalogService_LastSync(t *testing.T) {
	t.Run("cached_after_first_read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockGamesAPI(ctrl)
		api.EXPECT().LastGamesSync(gomock.Any()).Return(&domain.SyncLog{
			ID:              3,
			Status:          "success",
			RecordsInserted: 12,
		}, nil).Times(1)

		tr := helpers.SetupTestRedis(t)
		cache := redis_a.NewCache(tr.Client, 0, helpers.TestLogger())
		svc := services.NewCatalogService(api, cache, mocks.NewMockCacheInvalidator(ctrl), 100, helpers.TestLogger())

		for range 2 {
			last, err := svc.LastSync(context.Background())
			require.NoError(t, err)
			require.NotNil(t, last)
			assert.Equal(t, int64(3), last.ID)
			assert.Equal(t, 12, last.RecordsInserted)
		}
		assert.True(t, tr.Server.Exists("sync:games:last"))
	})

	t.Run("never_synced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockGamesAPI(ctrl)
		api.EXPECT().LastGamesSync(gomock.Any()).Return(nil, nil)

		svc := services.NewCatalogService(api, redis_a.NopCache{}, mocks.NewMockCacheInvalidator(ctrl), 100, helpers.TestLogger())

		last, err := svc.LastSync(context.Background())
		require.NoError(t, err)
		assert.Nil(t, last)
	})

	t.Run("backend_failure_is_swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		api := mocks.NewMockGamesAPI(ctrl)
		api.EXPECT().LastGamesSync(gomock.Any()).Return(nil, errors.New("timeout"))

		svc := services.NewCatalogService(api, redis_a.NopCache{}, mocks.NewMockCacheInvalidator(ctrl), 100, helpers.TestLogger())

		last, err := svc.LastSync(context.Background())
		assert.NoError(t, err)
		assert.Nil(t, last)
	})
}
