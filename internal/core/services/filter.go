// internal/core/services/filter.go
package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ammerola/gamedash/internal/core/domain"
)

// predicate reports whether a record satisfies one criterion
type predicate func(r *domain.Record) bool

// ApplyFilter returns the records satisfying every set criterion, in input
// order. The input slice is never modified. Records with a missing value
// fail any bound set on that value, and a bound that does not parse as a
// number rejects every record.
func ApplyFilter(records []domain.Record, c domain.FilterCriteria) []domain.Record {
	preds := compileFilter(c)

	out := make([]domain.Record, 0, len(records))
	for i := range records {
		if matchAll(&records[i], preds) {
			out = append(out, records[i])
		}
	}
	return out
}

// MatchFilter reports whether a single record satisfies c
func MatchFilter(r domain.Record, c domain.FilterCriteria) bool {
	return matchAll(&r, compileFilter(c))
}

func matchAll(r *domain.Record, preds []predicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}

func compileFilter(c domain.FilterCriteria) []predicate {
	var preds []predicate

	if search := strings.TrimSpace(c.Search); search != "" {
		needle := strings.ToLower(search)
		preds = append(preds, func(r *domain.Record) bool {
			return strings.Contains(strings.ToLower(r.Name), needle)
		})
	}

	if c.Genre != "" {
		genre := c.Genre
		preds = append(preds, func(r *domain.Record) bool {
			return r.Genre != nil && *r.Genre == genre
		})
	}

	if c.Rating.IsSet() {
		preds = append(preds, rangePredicate(c.Rating, func(r *domain.Record) *decimal.Decimal {
			if r.Rating == nil {
				return nil
			}
			d := decimal.NewFromFloat(*r.Rating)
			return &d
		}))
	}

	if c.Price.IsSet() {
		preds = append(preds, rangePredicate(c.Price, func(r *domain.Record) *decimal.Decimal {
			return r.Price
		}))
	}

	if c.Released.IsSet() {
		from, to := datePrefix(c.Released.From), datePrefix(c.Released.To)
		preds = append(preds, func(r *domain.Record) bool {
			if r.ReleaseDate == "" {
				return false
			}
			if from != "" && r.ReleaseDate < from {
				return false
			}
			if to != "" && r.ReleaseDate > to {
				return false
			}
			return true
		})
	}

	return preds
}

func rangePredicate(rng domain.Range, value func(r *domain.Record) *decimal.Decimal) predicate {
	lo, loOK := parseBound(rng.Min)
	hi, hiOK := parseBound(rng.Max)
	if !loOK || !hiOK {
		return func(*domain.Record) bool { return false }
	}

	return func(r *domain.Record) bool {
		v := value(r)
		if v == nil {
			return false
		}
		if lo != nil && v.LessThan(*lo) {
			return false
		}
		if hi != nil && v.GreaterThan(*hi) {
			return false
		}
		return true
	}
}

// parseBound returns nil for an open bound and false for a malformed one
func parseBound(raw string) (*decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func datePrefix(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
