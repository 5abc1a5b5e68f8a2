// internal/handlers/query.go
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ammerola/gamedash/internal/core/domain"
)

// MaxPageSize caps the page_size query parameter
const MaxPageSize = 100

// parseQueryState reads list view state from the query string. Malformed
// numbers fall back to defaults; filter bounds are passed through raw and
// judged by the filter engine.
func parseQueryState(r *http.Request, defaultPageSize int) domain.QueryState {
	q := r.URL.Query()

	pageSize := defaultPageSize
	if v, err := strconv.Atoi(q.Get("page_size")); err == nil && v > 0 {
		pageSize = min(v, MaxPageSize)
	}

	var sort domain.SortState
	if raw := q.Get("sort_by"); raw != "" {
		key, ok := domain.ParseSortKey(raw)
		if !ok {
			key = domain.SortKey(raw)
		}
		sort = domain.SortState{Key: key, Dir: domain.ParseSortDirection(q.Get("sort_dir"))}
	}

	state := domain.NewQueryState(pageSize, sort).WithFilter(domain.FilterCriteria{
		Search: strings.TrimSpace(q.Get("search")),
		Genre:  q.Get("genre"),
		Rating: domain.Range{
			Min: strings.TrimSpace(q.Get("rating_min")),
			Max: strings.TrimSpace(q.Get("rating_max")),
		},
		Price: domain.Range{
			Min: strings.TrimSpace(q.Get("price_min")),
			Max: strings.TrimSpace(q.Get("price_max")),
		},
		Released: domain.DateRange{
			From: strings.TrimSpace(q.Get("released_from")),
			To:   strings.TrimSpace(q.Get("released_to")),
		},
	})

	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		state = state.WithPage(page)
	}
	return state
}

// parseAnalyticsRange fills missing bounds from the default range
func parseAnalyticsRange(r *http.Request, def domain.AnalyticsRange) (domain.AnalyticsRange, bool) {
	q := r.URL.Query()
	rng := def
	if v := q.Get("date_from"); v != "" {
		rng.From = v
	}
	if v := q.Get("date_to"); v != "" {
		rng.To = v
	}
	return rng, rng.Valid()
}
