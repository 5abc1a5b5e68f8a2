package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
)

// twelveRecords holds 7 RPG records priced out of order and 5 others
func twelveRecords() []domain.Record {
	rpgPrices := []string{"30", "10", "70", "20", "60", "40", "50"}
	var out []domain.Record
	for i, p := range rpgPrices {
		out = append(out, rec(int64(i+1), fmt.Sprintf("RPG %d", i+1), "RPG", p, 4, "2020-01-01"))
	}
	for i := 0; i < 5; i++ {
		id := int64(len(rpgPrices) + i + 1)
		out = append(out, rec(id, fmt.Sprintf("Other %d", i), "Action", "1", 3, "2021-01-01"))
	}
	return out
}

func TestBuildView_GenreFilterSortAndPages(t *testing.T) {
	records := twelveRecords()
	q := domain.NewQueryState(5, domain.SortState{Key: domain.SortPrice, Dir: domain.SortAsc}).
		WithFilter(domain.FilterCriteria{Genre: "RPG"})

	page1 := services.BuildView(records, q)

	assert.Equal(t, 7, page1.TotalCount)
	assert.Equal(t, 2, page1.TotalPages)
	assert.Equal(t, []int{1, 2}, page1.PageNumbers)
	assert.Equal(t, 1, page1.ActiveFilters)
	assert.Equal(t, []int64{2, 4, 1, 6, 7}, ids(page1.Items))

	page2 := services.BuildView(records, q.WithPage(2))
	assert.Equal(t, []int64{5, 3}, ids(page2.Items))
	assert.Equal(t, 2, page2.Page)
}

func TestBuildView_ClampsPageAndListsGenres(t *testing.T) {
	records := twelveRecords()

	view := services.BuildView(records, domain.NewQueryState(5, domain.SortState{}).WithPage(99))

	assert.Equal(t, 3, view.Page)
	assert.Equal(t, 3, view.Query.Page)
	assert.Len(t, view.Items, 2)
	assert.Equal(t, []string{"RPG", "Action"}, view.Genres)
}

func TestBuildView_EmptyResultIsNotAnError(t *testing.T) {
	view := services.BuildView(twelveRecords(), domain.NewQueryState(5, domain.SortState{}).
		WithSearch("no such game"))

	require.NotNil(t, view)
	assert.Empty(t, view.Items)
	assert.NotNil(t, view.Items)
	assert.Equal(t, 0, view.TotalPages)
	assert.Equal(t, 1, view.Page)
	assert.Empty(t, view.PageNumbers)
}

func TestQueryState_ChangesResetPage(t *testing.T) {
	q := domain.NewQueryState(10, domain.SortState{}).WithPage(4)

	assert.Equal(t, 1, q.WithSearch("x").Page)
	assert.Equal(t, 1, q.WithFilter(domain.FilterCriteria{Genre: "RPG"}).Page)
	assert.Equal(t, 1, q.ToggleSort(domain.SortName).Page)
	assert.Equal(t, 4, q.Page)
}
