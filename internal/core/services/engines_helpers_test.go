package services_test

import (
	"time"

	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/test/helpers"
)

// rec builds a record; empty strings and negative numbers mean "missing"
func rec(id int64, name, genre, price string, rating float64, released string) domain.Record {
	r := domain.Record{ID: id, GameID: id, Kind: domain.KindGame, Name: name, ReleaseDate: released}
	if genre != "" {
		r.Genre = helpers.Ptr(genre)
	}
	if price != "" {
		r.Price = helpers.Dec(price)
	}
	if rating >= 0 {
		r.Rating = helpers.Ptr(rating)
	}
	return r
}

func ids(records []domain.Record) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func sampleRecords() []domain.Record {
	updated := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.Record{
		rec(1, "The Witcher 3", "RPG", "9.99", 4.7, "2015-05-19"),
		rec(2, "Hades", "Action", "12.50", 4.5, "2020-09-17"),
		rec(3, "Stardew Valley", "Indie", "7.49", 4.8, "2016-02-26"),
		rec(4, "Untitled Prototype", "", "", -1, ""),
		rec(5, "Witcher 2", "RPG", "4.99", 4.1, "2011-05-17"),
	}
	for i := range records {
		if i != 3 {
			ts := updated.Add(time.Duration(i) * time.Hour)
			records[i].UpdatedAt = &ts
		}
	}
	return records
}
