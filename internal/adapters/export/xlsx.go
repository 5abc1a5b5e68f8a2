// internal/adapters/export/xlsx.go
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/gamedash/internal/core/domain"
)

// ContentType is the MIME type of WriteXLSX output
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Headers are the column titles of an exported list view
var Headers = []string{"Name", "Genre", "Released", "Price", "Global Price", "Rating", "Updated"}

// WriteXLSX writes records as a single sheet with a bold header row.
// Absent values are rendered as the placeholder.
func WriteXLSX(w io.Writer, records []domain.Record) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(sheetName(records))
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range Headers {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for _, r := range records {
		row := sheet.AddRow()
		for _, value := range Row(r) {
			row.AddCell().Value = value
		}
	}

	sheet.SetColWidth(1, 1, 40)
	sheet.SetColWidth(2, len(Headers), 15)

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

// Row renders one record in Headers order
func Row(r domain.Record) []string {
	return []string{
		nonBlank(r.Name),
		domain.DisplayString(r.Genre),
		domain.DisplayDate(r.ReleaseDate),
		domain.DisplayPrice(r.Price),
		domain.DisplayPrice(globalPrice(r)),
		domain.DisplayRating(r.Rating),
		displayUpdated(r.UpdatedAt),
	}
}

// FileName builds the attachment name for an export taken at now
func FileName(kind domain.RecordKind, now time.Time) string {
	return fmt.Sprintf("%ss_export_%s.xlsx", kind, now.Format("20060102_150405"))
}

// A sale compares against the cheapest deal, a game against the store's
// regular price.
func globalPrice(r domain.Record) *decimal.Decimal {
	if r.Kind == domain.KindSale {
		return r.CheapPrice
	}
	return r.NormalPrice
}

func sheetName(records []domain.Record) string {
	if len(records) > 0 && records[0].Kind == domain.KindSale {
		return "Sales"
	}
	return "Games"
}

func nonBlank(s string) string {
	if s == "" {
		return domain.Placeholder
	}
	return s
}

func displayUpdated(t *time.Time) string {
	if t == nil {
		return domain.Placeholder
	}
	return t.UTC().Format("2006-01-02 15:04")
}
