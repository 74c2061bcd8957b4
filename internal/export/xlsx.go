package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/DialogKit/internal/model"
)

// SheetName is the worksheet that holds exported conversions.
const SheetName = "Conversions"

// XLSXHeaders is the header row written by ExportXLSX.
var XLSXHeaders = []string{"ID", "Time (UTC)", "Origin", "Bit Width", "Decimal", "Hexadecimal", "Binary"}

// ExportXLSX writes the conversions to an Excel workbook. Values are stored
// as text so that 64-bit numbers keep every digit.
func ExportXLSX(path string, entries []model.Conversion) error {
	if len(entries) == 0 {
		return fmt.Errorf("no conversions to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6E6E6"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for col, h := range XLSXHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellStr(SheetName, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(XLSXHeaders), 1)
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, c := range entries {
		row := i + 2
		values := []string{
			c.ID,
			c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			c.Origin.String(),
			fmt.Sprintf("%d", c.BitWidth),
			c.Decimal,
			c.Hex,
			c.Binary,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			if err := f.SetCellStr(SheetName, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "E", "F", 22); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "G", "G", 68); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
