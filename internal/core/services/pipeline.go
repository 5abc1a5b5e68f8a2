// internal/core/services/pipeline.go
package services

import (
	"context"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/ports"
)

// Arrange runs filter then sort over records
func Arrange(records []domain.Record, q domain.QueryState) []domain.Record {
	return ApplySort(ApplyFilter(records, q.Filter), q.Sort)
}

// BuildView runs the full filter, sort and paginate pipeline and
// returns the requested page. The returned query carries the clamped page.
func BuildView(records []domain.Record, q domain.QueryState) *ports.ListView {
	arranged := Arrange(records, q)

	p := NewPaginator(len(arranged), q.PageSize, q.Page)
	q = q.WithPage(p.Current())
	q.PageSize = p.PageSize()

	genres := domain.Genres(records)
	if genres == nil {
		genres = []string{}
	}

	return &ports.ListView{
		Items:         Paginate(arranged, p),
		Page:          p.Current(),
		PageSize:      p.PageSize(),
		TotalCount:    len(arranged),
		TotalPages:    p.TotalPages(),
		PageNumbers:   p.PageNumbers(),
		ActiveFilters: q.Filter.ActiveCount(),
		Genres:        genres,
		Query:         q,
	}
}

// fetchAll reads a backend list page by page, starting at page 1, until
// the reported total is reached or a page comes back empty.
func fetchAll[T any](ctx context.Context, params domain.ListParams,
	list func(context.Context, domain.ListParams) (*domain.Page[T], error)) ([]T, error) {
	var out []T
	for params.Page = 1; ; params.Page++ {
		page, err := list(ctx, params)
		if err != nil {
			return nil, err
		}
		out = append(out, page.Data...)
		if len(page.Data) == 0 || int64(len(out)) >= page.Total {
			return out, nil
		}
	}
}
