// internal/core/domain/dashboard.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// AnalyticsRange bounds the analytics endpoints, YYYY-MM-DD inclusive
type AnalyticsRange struct {
	From string `json:"date_from"`
	To   string `json:"date_to"`
}

// DefaultAnalyticsRange is the last month up to today
func DefaultAnalyticsRange(now time.Time) AnalyticsRange {
	return AnalyticsRange{
		From: now.AddDate(0, -1, 0).Format(dateLayout),
		To:   now.Format(dateLayout),
	}
}

// Valid reports whether both bounds parse and From is not after To
func (r AnalyticsRange) Valid() bool {
	from, err := time.Parse(dateLayout, r.From)
	if err != nil {
		return false
	}
	to, err := time.Parse(dateLayout, r.To)
	if err != nil {
		return false
	}
	return !from.After(to)
}

// Summary feeds the summary cards
type Summary struct {
	TotalGames     int64           `json:"total_games"`
	TotalSales     int64           `json:"total_sales"`
	AvgGlobalPrice decimal.Decimal `json:"avg_global_price"`
	AvgOurPrice    decimal.Decimal `json:"avg_our_price"`
}

type PriceRangeByGenre struct {
	Genre     string           `json:"genre"`
	MinPrice  *decimal.Decimal `json:"min_price"`
	MaxPrice  *decimal.Decimal `json:"max_price"`
	AvgPrice  *decimal.Decimal `json:"avg_price"`
	GameCount int              `json:"game_count"`
}

type GamesByDate struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type AvgRatingByGenre struct {
	Genre     string  `json:"genre"`
	AvgRating float64 `json:"avg_rating"`
	GameCount int     `json:"game_count"`
}

type PriceGapByGenre struct {
	Genre          string           `json:"genre"`
	AvgOurPrice    decimal.Decimal  `json:"avg_our_price"`
	AvgGlobalPrice *decimal.Decimal `json:"avg_global_price"`
	AvgGap         *decimal.Decimal `json:"avg_gap"`
	GapPercent     *decimal.Decimal `json:"gap_percent"`
}

type SalesByDate struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type MaxPriceByDate struct {
	Date     string          `json:"date"`
	MaxPrice decimal.Decimal `json:"max_price"`
}

type PriceRatioItem struct {
	GameID     int64            `json:"game_id"`
	GameName   string           `json:"game_name"`
	Genre      *string          `json:"genre"`
	OurPrice   decimal.Decimal  `json:"our_price"`
	PriceCheap *decimal.Decimal `json:"price_cheap"`
	Ratio      *decimal.Decimal `json:"ratio"`
}

// TopGapGenre returns the genre whose average store price deviates most
// from the global price, in either direction. Rows without a gap are
// skipped; ties keep the later row.
func TopGapGenre(rows []PriceGapByGenre) string {
	best := ""
	var bestGap decimal.Decimal
	for _, r := range rows {
		if r.AvgGap == nil {
			continue
		}
		gap := r.AvgGap.Abs()
		if best == "" || !bestGap.GreaterThan(gap) {
			best = r.Genre
			bestGap = gap
		}
	}
	if best == "" {
		return Placeholder
	}
	return best
}
