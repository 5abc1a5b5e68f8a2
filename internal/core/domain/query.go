// internal/core/domain/query.go
package domain

import "strings"

// FilterField names one independently clearable criterion
type FilterField string

const (
	FilterSearch   FilterField = "search"
	FilterGenre    FilterField = "genre"
	FilterRating   FilterField = "rating"
	FilterPrice    FilterField = "price"
	FilterReleased FilterField = "released"
)

// Range is an optional numeric interval. Bounds hold the raw user input;
// an empty bound is open.
type Range struct {
	Min string `json:"min,omitempty"`
	Max string `json:"max,omitempty"`
}

// IsSet reports whether either bound is set
func (r Range) IsSet() bool {
	return r.Min != "" || r.Max != ""
}

// DateRange is an optional interval of YYYY-MM-DD dates, inclusive.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func (r DateRange) IsSet() bool {
	return r.From != "" || r.To != ""
}

// FilterCriteria is a conjunction of optional predicates over records.
// The zero value imposes no constraint.
type FilterCriteria struct {
	Search   string    `json:"search,omitempty"`
	Genre    string    `json:"genre,omitempty"`
	Rating   Range     `json:"rating"`
	Price    Range     `json:"price"`
	Released DateRange `json:"released"`
}

// IsZero reports whether no criterion is set
func (c FilterCriteria) IsZero() bool {
	return c.ActiveCount() == 0
}

// ActiveCount is the number of criteria currently set. A range counts once
// when either of its bounds is set.
func (c FilterCriteria) ActiveCount() int {
	n := 0
	for _, set := range []bool{
		strings.TrimSpace(c.Search) != "",
		c.Genre != "",
		c.Rating.IsSet(),
		c.Price.IsSet(),
		c.Released.IsSet(),
	} {
		if set {
			n++
		}
	}
	return n
}

// Clear resets a single criterion
func (c FilterCriteria) Clear(field FilterField) FilterCriteria {
	switch field {
	case FilterSearch:
		c.Search = ""
	case FilterGenre:
		c.Genre = ""
	case FilterRating:
		c.Rating = Range{}
	case FilterPrice:
		c.Price = Range{}
	case FilterReleased:
		c.Released = DateRange{}
	}
	return c
}

// ClearAll resets every criterion
func (c FilterCriteria) ClearAll() FilterCriteria {
	return FilterCriteria{}
}

// SortKey names a sortable record field
type SortKey string

const (
	SortNone        SortKey = ""
	SortName        SortKey = "name"
	SortGenre       SortKey = "genre"
	SortReleaseDate SortKey = "released"
	SortPrice       SortKey = "price"
	SortRating      SortKey = "rating"
	SortUpdatedAt   SortKey = "updated_at"
)

var sortKeys = map[string]SortKey{
	"name":         SortName,
	"genre":        SortGenre,
	"released":     SortReleaseDate,
	"release_date": SortReleaseDate,
	"price":        SortPrice,
	"our_price":    SortPrice,
	"price_cheap":  SortPrice,
	"rating":       SortRating,
	"updated_at":   SortUpdatedAt,
	"updatedat":    SortUpdatedAt,
}

// ParseSortKey maps a query value onto a SortKey
func ParseSortKey(s string) (SortKey, bool) {
	if s == "" {
		return SortNone, true
	}
	k, ok := sortKeys[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// SortDirection is asc or desc
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ParseSortDirection defaults to ascending for anything but "desc"
func ParseSortDirection(s string) SortDirection {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}
	return SortAsc
}

// SortState is the single active sort key and direction
type SortState struct {
	Key SortKey       `json:"key"`
	Dir SortDirection `json:"dir"`
}

// Toggle flips the direction when key is already active, otherwise it
// selects key in ascending order.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		if s.Dir == SortAsc {
			s.Dir = SortDesc
		} else {
			s.Dir = SortAsc
		}
		return s
	}
	return SortState{Key: key, Dir: SortAsc}
}

// QueryState bundles everything a list view needs to derive its rows.
// It is a value type: every With* method returns a modified copy, and any
// change to filters, search or sort resets the page to 1.
type QueryState struct {
	Filter   FilterCriteria `json:"filter"`
	Sort     SortState      `json:"sort"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// NewQueryState returns the state of a freshly opened list view
func NewQueryState(pageSize int, sort SortState) QueryState {
	return QueryState{Sort: sort, Page: 1, PageSize: pageSize}
}

func (q QueryState) WithFilter(f FilterCriteria) QueryState {
	q.Filter = f
	q.Page = 1
	return q
}

func (q QueryState) WithSearch(search string) QueryState {
	q.Filter.Search = search
	q.Page = 1
	return q
}

func (q QueryState) WithSort(s SortState) QueryState {
	q.Sort = s
	q.Page = 1
	return q
}

// ToggleSort applies SortState.Toggle and resets the page
func (q QueryState) ToggleSort(key SortKey) QueryState {
	return q.WithSort(q.Sort.Toggle(key))
}

// WithPage sets the requested page; clamping happens in the paginator
func (q QueryState) WithPage(page int) QueryState {
	q.Page = page
	return q
}
