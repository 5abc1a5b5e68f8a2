// internal/core/domain/game.go
package domain

import (
	"github.com/shopspring/decimal"
)

// Game represents a catalog entry as served by the games backend
type Game struct {
	ID              int64            `json:"id"`
	Slug            string           `json:"slug"`
	Name            string           `json:"name"`
	Released        *string          `json:"released,omitempty"`
	Genre           *string          `json:"genre,omitempty"`
	Rating          *float64         `json:"rating,omitempty"`
	RatingsCount    *int             `json:"ratings_count,omitempty"`
	Metacritic      *int             `json:"metacritic,omitempty"`
	BackgroundImage *string          `json:"background_image,omitempty"`
	Platforms       *string          `json:"platforms,omitempty"`
	PriceCheap      *decimal.Decimal `json:"price_cheap,omitempty"`
	PriceExternal   *decimal.Decimal `json:"price_external,omitempty"`
	FetchedAt       *Timestamp       `json:"fetched_at,omitempty"`
	UpdatedAt       *Timestamp       `json:"updated_at,omitempty"`
}

// Page is the paginated envelope used by the backend list endpoints
type Page[T any] struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Data     []T   `json:"data"`
}

// ListParams are the server-side list parameters accepted by /games and /sales
type ListParams struct {
	Page     int
	PageSize int
	Search   string
	Genre    string
	SortBy   string
	SortDir  SortDirection
}

// ReleaseDate returns the YYYY-MM-DD prefix of the release timestamp, or ""
func (g *Game) ReleaseDate() string {
	return datePrefix(g.Released)
}

func datePrefix(v *string) string {
	if v == nil {
		return ""
	}
	s := *v
	if len(s) > 10 {
		s = s[:10]
	}
	return s
}
