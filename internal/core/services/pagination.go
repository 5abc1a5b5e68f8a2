// internal/core/services/pagination.go
package services

// pageWindow is the maximum number of page links shown at once
const pageWindow = 5

// Paginator slices a list of a known length into fixed-size pages.
// The current page is always within [1, TotalPages], or 1 when there are
// no pages at all.
type Paginator struct {
	total    int
	pageSize int
	current  int
}

// NewPaginator returns a paginator positioned on page, clamped into range.
// A non-positive pageSize is treated as 1.
func NewPaginator(total, pageSize, page int) *Paginator {
	if pageSize < 1 {
		pageSize = 1
	}
	if total < 0 {
		total = 0
	}
	p := &Paginator{total: total, pageSize: pageSize}
	p.current = p.clamp(page)
	return p
}

// TotalPages is ceil(total / pageSize)
func (p *Paginator) TotalPages() int {
	return (p.total + p.pageSize - 1) / p.pageSize
}

func (p *Paginator) Current() int  { return p.current }
func (p *Paginator) PageSize() int { return p.pageSize }
func (p *Paginator) Total() int    { return p.total }

// GoToPage moves to page n. Out-of-range requests are ignored and
// reported as false.
func (p *Paginator) GoToPage(n int) bool {
	if n < 1 || n > p.TotalPages() {
		return false
	}
	p.current = n
	return true
}

// Next and Prev are GoToPage relative to the current page
func (p *Paginator) Next() bool { return p.GoToPage(p.current + 1) }
func (p *Paginator) Prev() bool { return p.GoToPage(p.current - 1) }

// Bounds returns the half-open index range of the current page
func (p *Paginator) Bounds() (start, end int) {
	start = (p.current - 1) * p.pageSize
	if start > p.total {
		start = p.total
	}
	end = start + p.pageSize
	if end > p.total {
		end = p.total
	}
	return start, end
}

// PageNumbers returns a contiguous window of up to five page numbers around
// the current page. The window is shifted rather than shrunk near either
// end, so it holds min(5, TotalPages) entries.
func (p *Paginator) PageNumbers() []int {
	total := p.TotalPages()
	start := max(1, p.current-pageWindow/2)
	end := min(total, start+pageWindow-1)
	if end-start+1 < pageWindow {
		start = max(1, end-pageWindow+1)
	}

	pages := make([]int, 0, pageWindow)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}

func (p *Paginator) clamp(page int) int {
	total := p.TotalPages()
	switch {
	case total == 0, page < 1:
		return 1
	case page > total:
		return total
	}
	return page
}

// Paginate returns the items on the paginator's current page
func Paginate[T any](items []T, p *Paginator) []T {
	start, end := p.Bounds()
	if start >= len(items) {
		return []T{}
	}
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
