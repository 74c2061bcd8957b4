// Package importer reads batches of numbers from CSV and Excel files for the
// base converter. It supports automatic delimiter detection and
// case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DialogKit/internal/model"
)

// Value is one number read from an import file.
type Value struct {
	Value  uint64
	Origin model.Base
	Row    int
}

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Values   []Value
	Errors   []string
	Warnings []string
}

// ColumnMapping maps each base to its column index, -1 when absent.
type ColumnMapping [3]int

// headerAliases maps each base to its accepted header names (all lowercase).
var headerAliases = map[model.Base][]string{
	model.Decimal:     {"dec", "decimal", "base10", "base 10", "number", "value"},
	model.Hexadecimal: {"hex", "hexadecimal", "base16", "base 16", "0x"},
	model.Binary:      {"bin", "binary", "base2", "base 2", "bits", "0b"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent column count across lines wins; single-column data stays comma.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// Returns the mapping and true if a header was detected, or a mapping that
// reads column 0 as decimal and false otherwise.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{-1, -1, -1}
	isHeader := false

	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for _, base := range model.Bases {
			if mapping[base] != -1 {
				continue
			}
			for _, alias := range headerAliases[base] {
				if normalized == alias {
					mapping[base] = i
					isHeader = true
					break
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{0, -1, -1}, false
	}
	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow reads every mapped cell of a row. All present cells must agree on
// the value; the first present column in base order becomes the origin.
func parseRow(codec model.Codec, row []string, mapping ColumnMapping, rowLabel string) (Value, string, bool) {
	var (
		out   Value
		found bool
	)
	for _, base := range model.Bases {
		text := getCell(row, mapping[base])
		if text == "" {
			continue
		}
		v, err := codec.Parse(base, text)
		if err != nil {
			return Value{}, fmt.Sprintf("%s: %v", rowLabel, err), false
		}
		if !found {
			out = Value{Value: v, Origin: base}
			found = true
			continue
		}
		if v != out.Value {
			return Value{}, fmt.Sprintf("%s: %s and %s columns disagree (%d vs %d)",
				rowLabel, out.Origin, base, out.Value, v), false
		}
	}
	if !found {
		return Value{}, "", false
	}
	return out, "", true
}

// ImportCSV imports values from a CSV file, detecting the delimiter and
// mapping columns by header names.
func ImportCSV(path string, codec model.Codec) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(codec, records, "Line", result.Warnings)
}

// ImportCSVFromReader imports values from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune, codec model.Codec) ImportResult {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}}
	}

	return importFromRows(codec, records, "Line", nil)
}

// ImportExcel imports values from the first sheet of an Excel workbook.
func ImportExcel(path string, codec model.Codec) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(codec, rows, "Row", nil)
}

// Import dispatches on the file extension: .xlsx/.xlsm go through
// ImportExcel, everything else is treated as CSV.
func Import(path string, codec model.Codec) ImportResult {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".xlsm") {
		return ImportExcel(path, codec)
	}
	return ImportCSV(path, codec)
}

// importFromRows is the shared import logic for both CSV and Excel data.
func importFromRows(codec model.Codec, rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")
	} else if len(rows[0]) > 1 {
		result.Warnings = append(result.Warnings, "No header row, reading first column as decimal")
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		lineNum := i + 1
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		v, errMsg, ok := parseRow(codec, row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: No value in mapped columns", rowLabel))
			continue
		}
		v.Row = lineNum
		result.Values = append(result.Values, v)
	}

	if len(result.Values) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
	}
	return result
}
