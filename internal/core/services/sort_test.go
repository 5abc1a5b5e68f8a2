package services_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/internal/core/services"
)

func TestApplySort(t *testing.T) {
	records := sampleRecords()

	tests := []struct {
		name     string
		state    domain.SortState
		expected []int64
	}{
		{
			name:     "no_key_is_identity",
			state:    domain.SortState{},
			expected: []int64{1, 2, 3, 4, 5},
		},
		{
			name:     "unknown_key_is_identity",
			state:    domain.SortState{Key: "metascore", Dir: domain.SortAsc},
			expected: []int64{1, 2, 3, 4, 5},
		},
		{
			name:     "name_ascending",
			state:    domain.SortState{Key: domain.SortName, Dir: domain.SortAsc},
			expected: []int64{2, 3, 1, 4, 5},
		},
		{
			name:     "price_ascending_puts_missing_last",
			state:    domain.SortState{Key: domain.SortPrice, Dir: domain.SortAsc},
			expected: []int64{5, 3, 1, 2, 4},
		},
		{
			name:     "price_descending_puts_missing_first",
			state:    domain.SortState{Key: domain.SortPrice, Dir: domain.SortDesc},
			expected: []int64{4, 2, 1, 3, 5},
		},
		{
			name:     "rating_descending",
			state:    domain.SortState{Key: domain.SortRating, Dir: domain.SortDesc},
			expected: []int64{4, 3, 1, 2, 5},
		},
		{
			name:     "release_date_ascending_treats_empty_as_missing",
			state:    domain.SortState{Key: domain.SortReleaseDate, Dir: domain.SortAsc},
			expected: []int64{5, 1, 3, 2, 4},
		},
		{
			name:     "updated_at_descending",
			state:    domain.SortState{Key: domain.SortUpdatedAt, Dir: domain.SortDesc},
			expected: []int64{4, 5, 3, 2, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.ApplySort(records, tt.state)
			assert.Equal(t, tt.expected, ids(got))
		})
	}
}

func TestApplySort_IsStable(t *testing.T) {
	records := []domain.Record{
		rec(1, "A", "RPG", "10", 1, ""),
		rec(2, "B", "Action", "5", 1, ""),
		rec(3, "C", "RPG", "10", 1, ""),
		rec(4, "D", "RPG", "5", 1, ""),
		rec(5, "E", "Action", "10", 1, ""),
	}

	got := services.ApplySort(records, domain.SortState{Key: domain.SortPrice, Dir: domain.SortAsc})
	assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(got))

	got = services.ApplySort(records, domain.SortState{Key: domain.SortGenre, Dir: domain.SortDesc})
	assert.Equal(t, []int64{1, 3, 4, 2, 5}, ids(got))
}

func TestApplySort_ToggleReverses(t *testing.T) {
	records := sampleRecords()[:3]

	state := domain.SortState{}.Toggle(domain.SortName)
	assert.Equal(t, domain.SortAsc, state.Dir)
	asc := ids(services.ApplySort(records, state))

	state = state.Toggle(domain.SortName)
	assert.Equal(t, domain.SortDesc, state.Dir)
	desc := ids(services.ApplySort(records, state))

	slices.Reverse(desc)
	assert.Equal(t, asc, desc)

	assert.Equal(t, domain.SortState{Key: domain.SortPrice, Dir: domain.SortAsc}, state.Toggle(domain.SortPrice))
}

func TestApplySort_DoesNotMutateInput(t *testing.T) {
	records := sampleRecords()

	services.ApplySort(records, domain.SortState{Key: domain.SortName, Dir: domain.SortDesc})

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(records))
}
