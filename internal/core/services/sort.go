// internal/core/services/sort.go
package services

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ammerola/gamedash/internal/core/domain"
)

// ApplySort returns a stably sorted copy of records. With no active key the
// input is returned as is. Missing values sort after present ones when
// ascending and before them when descending.
func ApplySort(records []domain.Record, s domain.SortState) []domain.Record {
	compare, ok := comparators[s.Key]
	if !ok {
		return records
	}

	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b domain.Record) int {
		c := compare(&a, &b)
		if s.Dir == domain.SortDesc {
			return -c
		}
		return c
	})
	return out
}

var comparators = map[domain.SortKey]func(a, b *domain.Record) int{
	domain.SortName: func(a, b *domain.Record) int {
		return compareString(&a.Name, &b.Name)
	},
	domain.SortGenre: func(a, b *domain.Record) int {
		return compareString(a.Genre, b.Genre)
	},
	domain.SortReleaseDate: func(a, b *domain.Record) int {
		return compareString(&a.ReleaseDate, &b.ReleaseDate)
	},
	domain.SortPrice: func(a, b *domain.Record) int {
		return compareNullable(a.Price, b.Price, func(x, y *decimal.Decimal) int { return x.Cmp(*y) })
	},
	domain.SortRating: func(a, b *domain.Record) int {
		return compareNullable(a.Rating, b.Rating, func(x, y *float64) int { return cmp.Compare(*x, *y) })
	},
	domain.SortUpdatedAt: func(a, b *domain.Record) int {
		return compareNullable(a.UpdatedAt, b.UpdatedAt, func(x, y *time.Time) int { return x.Compare(*y) })
	},
}

// compareNullable orders nil after every present value
func compareNullable[T any](a, b *T, compare func(x, y *T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return compare(a, b)
}

// compareString treats the empty string as missing
func compareString(a, b *string) int {
	if a != nil && *a == "" {
		a = nil
	}
	if b != nil && *b == "" {
		b = nil
	}
	return compareNullable(a, b, func(x, y *string) int { return strings.Compare(*x, *y) })
}
