// internal/adapters/export/xlsx_test.go
package export_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/gamedash/internal/adapters/export"
	"github.com/ammerola/gamedash/internal/core/domain"
	"github.com/ammerola/gamedash/test/helpers"
)

func TestWriteXLSX(t *testing.T) {
	game := domain.RecordFromGame(helpers.CreateTestGame())
	bare := domain.Record{ID: 2, Kind: domain.KindGame, Name: "Unknown Game"}

	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, []domain.Record{game, bare}))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)

	sheet := file.Sheets[0]
	assert.Equal(t, "Games", sheet.Name)
	assert.Equal(t, 3, sheet.MaxRow)

	for col, want := range export.Headers {
		cell, err := sheet.Cell(0, col)
		require.NoError(t, err)
		assert.Equal(t, want, cell.Value)
		assert.True(t, cell.GetStyle().Font.Bold, "header %q should be bold", want)
	}

	wantFull := []string{"The Witcher 3", "RPG", "2015-05-19", "$9.99", "$39.99", "4.66", "2024-05-01 12:00"}
	for col, want := range wantFull {
		cell, err := sheet.Cell(1, col)
		require.NoError(t, err)
		assert.Equal(t, want, cell.Value)
	}

	for col := 1; col < len(export.Headers); col++ {
		cell, err := sheet.Cell(2, col)
		require.NoError(t, err)
		assert.Equal(t, domain.Placeholder, cell.Value)
	}
}

func TestRow_SaleUsesCheapestDealAsGlobalPrice(t *testing.T) {
	sale := domain.RecordFromSale(helpers.CreateTestSale())

	row := export.Row(sale)

	assert.Equal(t, "$14.99", row[3])
	assert.Equal(t, "$9.99", row[4])
	assert.Equal(t, domain.Placeholder, row[2])
}

func TestWriteXLSX_EmptyStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteXLSX(&buf, nil))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 1, file.Sheets[0].MaxRow)
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 6, 30, 8, 5, 9, 0, time.UTC)
	assert.Equal(t, "games_export_20240630_080509.xlsx", export.FileName(domain.KindGame, now))
	assert.Equal(t, "sales_export_20240630_080509.xlsx", export.FileName(domain.KindSale, now))
}
