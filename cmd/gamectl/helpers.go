package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/ammerola/gamedash/internal/adapters/api"
	redis_a "github.com/ammerola/gamedash/internal/adapters/redis_adapter"
	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
	"github.com/ammerola/gamedash/internal/pkg/config"
	"github.com/ammerola/gamedash/internal/pkg/logger"
)

// env bundles what every subcommand needs
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	client *api.Client
}

// setup loads configuration quietly; logs go to stderr in text form so
// stdout stays clean for command output.
func setup() (*env, error) {
	quiet := logger.NewLogger(&logger.LogConfig{
		Level:  "warn",
		Format: "text",
		Output: io.Discard,
	})
	cfg, err := config.Load(quiet.Logger)
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger(&logger.LogConfig{
		Level:       cfg.App.LogLevel,
		Format:      "text",
		Environment: cfg.App.Environment,
		ServiceName: "gamectl",
		Output:      os.Stderr,
	})

	client := api.NewClient(api.Config{
		BaseURL:           cfg.Backend.BaseURL,
		Timeout:           cfg.Backend.RequestTimeout,
		RequestsPerSecond: cfg.Backend.RequestsPerSecond,
		Burst:             cfg.Backend.Burst,
	}, log.Logger)

	return &env{cfg: cfg, log: log.Logger, client: client}, nil
}

// catalog builds an uncached catalog service
func (e *env) catalog() *services.CatalogService {
	var cache redis_a.NopCache
	return services.NewCatalogService(e.client, cache, redis_a.NewCacheManager(cache, e.log),
		e.cfg.Pagination.FetchPageSize, e.log)
}

// queryFlags registers the list view flags shared by list and export
type queryFlags struct {
	search, genre            *string
	ratingMin, ratingMax     *string
	priceMin, priceMax       *string
	releasedFrom, releasedTo *string
	sortBy, sortDir          *string
}

func addQueryFlags(fs *flag.FlagSet) *queryFlags {
	return &queryFlags{
		search:       fs.String("search", "", "Name substring (case-insensitive)"),
		genre:        fs.String("genre", "", "Exact genre"),
		ratingMin:    fs.String("rating-min", "", "Minimum rating"),
		ratingMax:    fs.String("rating-max", "", "Maximum rating"),
		priceMin:     fs.String("price-min", "", "Minimum price"),
		priceMax:     fs.String("price-max", "", "Maximum price"),
		releasedFrom: fs.String("released-from", "", "Released on or after YYYY-MM-DD"),
		releasedTo:   fs.String("released-to", "", "Released on or before YYYY-MM-DD"),
		sortBy:       fs.String("sort", "", "Sort key: name, genre, released, price, rating, updated_at"),
		sortDir:      fs.String("dir", "asc", "Sort direction: asc or desc"),
	}
}

func (f *queryFlags) state(pageSize int) domain.QueryState {
	var sort domain.SortState
	if key, ok := domain.ParseSortKey(*f.sortBy); ok && key != domain.SortNone {
		sort = domain.SortState{Key: key, Dir: domain.ParseSortDirection(*f.sortDir)}
	}
	return domain.NewQueryState(pageSize, sort).WithFilter(domain.FilterCriteria{
		Search:   *f.search,
		Genre:    *f.genre,
		Rating:   domain.Range{Min: *f.ratingMin, Max: *f.ratingMax},
		Price:    domain.Range{Min: *f.priceMin, Max: *f.priceMax},
		Released: domain.DateRange{From: *f.releasedFrom, To: *f.releasedTo},
	})
}
