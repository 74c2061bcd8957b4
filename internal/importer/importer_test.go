package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DialogKit/internal/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectCSVDelimiter(t *testing.T) {
	tests := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "dec,hex\n1,1\n2,2\n", ','},
		{"semicolon", "dec;hex\n1;1\n2;2\n", ';'},
		{"tab", "dec\thex\n1\t1\n", '\t'},
		{"pipe", "dec|hex\n1|1\n", '|'},
		{"single column", "255\n10\n", ','},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectCSVDelimiter([]byte(tt.data)))
		})
	}
}

func TestDetectColumns(t *testing.T) {
	m, ok := DetectColumns([]string{"Notes", "HEX", " Decimal ", "bin"})
	require.True(t, ok)
	assert.Equal(t, 2, m[model.Decimal])
	assert.Equal(t, 1, m[model.Hexadecimal])
	assert.Equal(t, 3, m[model.Binary])

	m, ok = DetectColumns([]string{"255", "foo"})
	assert.False(t, ok)
	assert.Equal(t, ColumnMapping{0, -1, -1}, m)
}

func TestImportCSVWithHeader(t *testing.T) {
	path := writeFile(t, "values.csv", "hex,binary\nFF,11111111\n0x0a,\n,101\n")

	result := ImportCSV(path, model.DefaultCodec())

	require.Empty(t, result.Errors)
	require.Len(t, result.Values, 3)
	assert.Equal(t, Value{Value: 255, Origin: model.Hexadecimal, Row: 2}, result.Values[0])
	assert.Equal(t, Value{Value: 10, Origin: model.Hexadecimal, Row: 3}, result.Values[1])
	assert.Equal(t, Value{Value: 5, Origin: model.Binary, Row: 4}, result.Values[2])
	assert.Contains(t, result.Warnings, "Detected header row, skipping")
}

func TestImportCSVWithoutHeader(t *testing.T) {
	path := writeFile(t, "plain.csv", "255\n\n10\n")

	result := ImportCSV(path, model.DefaultCodec())

	require.Empty(t, result.Errors)
	require.Len(t, result.Values, 2)
	assert.Equal(t, uint64(255), result.Values[0].Value)
	assert.Equal(t, model.Decimal, result.Values[0].Origin)
	assert.Equal(t, uint64(10), result.Values[1].Value)
}

func TestImportCSVRowErrors(t *testing.T) {
	path := writeFile(t, "bad.csv", "dec;hex\n255;FF\n10;B\nabc;\n300;12C\n")

	result := ImportCSV(path, model.Codec{BitWidth: 8})

	require.Len(t, result.Values, 1)
	assert.Equal(t, uint64(255), result.Values[0].Value)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors[0], "Line 3")
	assert.Contains(t, result.Errors[0], "disagree")
	assert.Contains(t, result.Errors[1], "Line 4")
	assert.Contains(t, result.Errors[2], "exceeds 8 bits")
	assert.Contains(t, result.Warnings, "Detected semicolon delimiter")
}

func TestImportCSVEmptyAndMissing(t *testing.T) {
	result := ImportCSV(writeFile(t, "empty.csv", "  \n"), model.DefaultCodec())
	assert.Equal(t, []string{"File is empty"}, result.Errors)

	result = ImportCSV(filepath.Join(t.TempDir(), "nope.csv"), model.DefaultCodec())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open file")

	result = ImportCSV(writeFile(t, "header.csv", "dec,hex\n"), model.DefaultCodec())
	assert.Equal(t, []string{"No data rows found"}, result.Errors)
}

func TestImportCSVFromReader(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader("bin|dec\n1010|10\n"), '|', model.DefaultCodec())

	require.Empty(t, result.Errors)
	require.Len(t, result.Values, 1)
	assert.Equal(t, uint64(10), result.Values[0].Value)
	assert.Equal(t, model.Decimal, result.Values[0].Origin, "decimal wins when several columns agree")
}

func createTestExcel(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		for j, cell := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr("Sheet1", ref, cell))
		}
	}
	path := filepath.Join(t.TempDir(), "values.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportExcel(t *testing.T) {
	path := createTestExcel(t, [][]string{
		{"Decimal", "Hexadecimal"},
		{"18446744073709551615", "FFFFFFFFFFFFFFFF"},
		{"", "DEAD"},
	})

	result := Import(path, model.DefaultCodec())

	require.Empty(t, result.Errors)
	require.Len(t, result.Values, 2)
	assert.Equal(t, ^uint64(0), result.Values[0].Value)
	assert.Equal(t, uint64(0xDEAD), result.Values[1].Value)
	assert.Equal(t, model.Hexadecimal, result.Values[1].Origin)
}

func TestImportExcelMissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "none.xlsx"), model.DefaultCodec())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Cannot open Excel file")
}
