// internal/core/domain/record.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind tells which backend resource a record was mapped from
type RecordKind string

const (
	KindGame RecordKind = "game"
	KindSale RecordKind = "sale"
)

// Placeholder is rendered in place of absent optional values
const Placeholder = "—"

// Record is the canonical row shape consumed by the filter, sort and
// pagination engines. Games and sales are mapped into it at the data
// access boundary so the engines never see resource-specific field names.
type Record struct {
	ID          int64            `json:"id"`
	Kind        RecordKind       `json:"kind"`
	GameID      int64            `json:"game_id"`
	Name        string           `json:"name"`
	Genre       *string          `json:"genre"`
	ReleaseDate string           `json:"release_date,omitempty"`
	Price       *decimal.Decimal `json:"price"`
	CheapPrice  *decimal.Decimal `json:"cheap_price"`
	NormalPrice *decimal.Decimal `json:"normal_price"`
	Rating      *float64         `json:"rating"`
	UpdatedAt   *time.Time       `json:"updated_at"`
}

// RecordFromGame maps a catalog game. A game's price is its cheapest deal.
func RecordFromGame(g Game) Record {
	return Record{
		ID:          g.ID,
		Kind:        KindGame,
		GameID:      g.ID,
		Name:        g.Name,
		Genre:       nonEmpty(g.Genre),
		ReleaseDate: g.ReleaseDate(),
		Price:       g.PriceCheap,
		CheapPrice:  g.PriceCheap,
		NormalPrice: g.PriceExternal,
		Rating:      g.Rating,
		UpdatedAt:   timeOf(g.UpdatedAt),
	}
}

// RecordFromSale maps a store listing. A sale's price is the store price;
// the catalog prices are carried for comparison.
func RecordFromSale(s Sale) Record {
	r := Record{
		ID:          s.ID,
		Kind:        KindSale,
		GameID:      s.GameID,
		Genre:       nonEmpty(s.GameGenre),
		CheapPrice:  s.PriceCheap,
		NormalPrice: s.PriceExternal,
		UpdatedAt:   timeOf(s.UpdatedAt),
	}
	if s.GameName != nil {
		r.Name = *s.GameName
	}
	price := s.OurPrice
	r.Price = &price
	return r
}

// JoinGames fills the release date and rating of sale records from their
// catalog game. The backend does not denormalise either onto a sale.
// Records whose game is not in games are returned unchanged.
func JoinGames(records []Record, games []Game) []Record {
	byID := make(map[int64]*Game, len(games))
	for i := range games {
		byID[games[i].ID] = &games[i]
	}

	out := make([]Record, len(records))
	for i, r := range records {
		if g, ok := byID[r.GameID]; ok && r.Kind == KindSale {
			if r.ReleaseDate == "" {
				r.ReleaseDate = g.ReleaseDate()
			}
			if r.Rating == nil {
				r.Rating = g.Rating
			}
		}
		out[i] = r
	}
	return out
}

// RecordsFromGames maps a slice of games
func RecordsFromGames(games []Game) []Record {
	out := make([]Record, 0, len(games))
	for _, g := range games {
		out = append(out, RecordFromGame(g))
	}
	return out
}

// RecordsFromSales maps a slice of sales
func RecordsFromSales(sales []Sale) []Record {
	out := make([]Record, 0, len(sales))
	for _, s := range sales {
		out = append(out, RecordFromSale(s))
	}
	return out
}

// Genres returns the distinct non-empty genres in first-seen order
func Genres(records []Record) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range records {
		if r.Genre == nil {
			continue
		}
		if _, ok := seen[*r.Genre]; ok {
			continue
		}
		seen[*r.Genre] = struct{}{}
		out = append(out, *r.Genre)
	}
	return out
}

// Display helpers render absent values as the placeholder

func DisplayString(v *string) string {
	if v == nil || *v == "" {
		return Placeholder
	}
	return *v
}

func DisplayPrice(v *decimal.Decimal) string {
	if v == nil {
		return Placeholder
	}
	return "$" + v.StringFixed(2)
}

func DisplayRating(v *float64) string {
	if v == nil {
		return Placeholder
	}
	return decimal.NewFromFloat(*v).StringFixed(2)
}

func DisplayDate(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

func DisplayTime(v *time.Time) string {
	if v == nil {
		return Placeholder
	}
	return v.Format(time.RFC3339)
}

func nonEmpty(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func timeOf(t *Timestamp) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	tt := t.Time
	return &tt
}
