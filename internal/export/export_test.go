package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DialogKit/internal/model"
)

// buildTestEntries creates a small conversion log covering every base.
func buildTestEntries() []model.Conversion {
	c := model.DefaultCodec()
	return []model.Conversion{
		model.NewConversion(c, 255, model.Decimal),
		model.NewConversion(c, 0xDEADBEEF, model.Hexadecimal),
		model.NewConversion(c, 10, model.Binary),
		model.NewConversion(c, ^uint64(0), model.Decimal),
	}
}

func manyEntries(n int) []model.Conversion {
	entries := make([]model.Conversion, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, model.NewConversion(model.DefaultCodec(), uint64(i)*977, model.Decimal))
	}
	return entries
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, ExportPDF(path, buildTestEntries()))
	assertNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestExportPDF_Paginates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "long.pdf")
	require.NoError(t, ExportPDF(path, manyEntries(rowsPerPage*2+3)))
	assertNonEmptyFile(t, path)
}

func TestRowsPerPageFitsPrintableArea(t *testing.T) {
	assert.Equal(t, 25, rowsPerPage)
	used := marginTop + headerHeight + 5 + rowHeight + float64(rowsPerPage)*rowHeight + 6
	assert.LessOrEqual(t, used, pageHeight-marginBottom)
}

func TestExportPDF_Empty(t *testing.T) {
	err := ExportPDF(filepath.Join(t.TempDir(), "empty.pdf"), nil)
	assert.Error(t, err)
}

func TestExportCards_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cards.pdf")
	require.NoError(t, ExportCards(path, manyEntries(cardsPerPage+1)))
	assertNonEmptyFile(t, path)
}

func TestExportCards_Empty(t *testing.T) {
	err := ExportCards(filepath.Join(t.TempDir(), "cards.pdf"), []model.Conversion{})
	assert.Error(t, err)
}

func TestCollectCardInfos(t *testing.T) {
	entries := buildTestEntries()
	cards := CollectCardInfos(entries)

	require.Len(t, cards, len(entries))
	assert.Equal(t, "255", cards[0].Decimal)
	assert.Equal(t, "FF", cards[0].Hex)
	assert.Equal(t, "DEADBEEF", cards[1].Hex)
	assert.Equal(t, 64, cards[3].BitWidth)

	data, err := json.Marshal(cards[2])
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+entries[2].ID+`","bits":64,"dec":"10","hex":"A","bin":"1010"}`, string(data))
}

func TestChunk(t *testing.T) {
	assert.Nil(t, chunk("", 4))
	assert.Equal(t, []string{"1010"}, chunk("1010", 4))
	assert.Equal(t, []string{"1010", "1"}, chunk("10101", 4))
}

func TestExportXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.xlsx")
	entries := buildTestEntries()
	require.NoError(t, ExportXLSX(path, entries))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, len(entries)+1)
	assert.Equal(t, XLSXHeaders, rows[0])
	assert.Equal(t, entries[0].ID, rows[1][0])
	assert.Equal(t, "Decimal", rows[1][2])
	assert.Equal(t, "255", rows[1][4])
	assert.Equal(t, "FF", rows[1][5])
	assert.Equal(t, "18446744073709551615", rows[4][4])
}

func TestExportXLSX_Empty(t *testing.T) {
	err := ExportXLSX(filepath.Join(t.TempDir(), "empty.xlsx"), nil)
	assert.Error(t, err)
}
