// Package export writes the conversion log to spreadsheet and PDF files.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/DialogKit/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	rowHeight    = 6.0
)

// reportColumns are the table columns of the conversion report. The widths
// add up to the printable width and leave room for a 64-digit binary value.
var reportColumns = []struct {
	title string
	width float64
}{
	{"ID", 20},
	{"Time (UTC)", 38},
	{"Origin", 24},
	{"Bits", 12},
	{"Decimal", 45},
	{"Hexadecimal", 36},
	{"Binary", 92},
}

// rowsPerPage is how many table rows fit under the title and column header.
var rowsPerPage = int(math.Floor((pageHeight - marginTop - headerHeight - 5 - rowHeight - marginBottom - 6) / rowHeight))

// ExportPDF generates a paginated report of the given conversions.
func ExportPDF(path string, entries []model.Conversion) error {
	if len(entries) == 0 {
		return fmt.Errorf("no conversions to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pages := (len(entries) + rowsPerPage - 1) / rowsPerPage
	for page := 0; page < pages; page++ {
		start := page * rowsPerPage
		end := start + rowsPerPage
		if end > len(entries) {
			end = len(entries)
		}
		pdf.AddPage()
		renderReportPage(pdf, entries[start:end], page+1, pages, len(entries))
	}

	return pdf.OutputFileAndClose(path)
}

// renderReportPage draws the title, table header and one slice of rows.
func renderReportPage(pdf *fpdf.Fpdf, rows []model.Conversion, page, pages, total int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Base Conversion Report (%d entries)", total)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	y := marginTop + headerHeight + 5

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	x := marginLeft
	for _, col := range reportColumns {
		pdf.SetXY(x, y)
		pdf.CellFormat(col.width, rowHeight, col.title, "1", 0, "C", true, 0, "")
		x += col.width
	}
	y += rowHeight

	for i, c := range rows {
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		cells := []string{
			c.ID,
			c.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			c.Origin.String(),
			fmt.Sprintf("%d", c.BitWidth),
			c.Decimal,
			c.Hex,
			c.Binary,
		}
		x = marginLeft
		for j, cell := range cells {
			// values are monospaced so digit columns line up
			if j >= 4 {
				pdf.SetFont("Courier", "", binaryFontSize(cell))
			} else {
				pdf.SetFont("Helvetica", "", 8)
			}
			pdf.SetXY(x, y)
			pdf.CellFormat(reportColumns[j].width, rowHeight, cell, "1", 0, "R", true, 0, "")
			x += reportColumns[j].width
		}
		y += rowHeight
	}

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	footer := fmt.Sprintf("Generated by DialogKit - page %d of %d", page, pages)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, footer, "", 0, "C", false, 0, "")
}

// binaryFontSize shrinks long digit strings so a 64-bit binary value fits
// its column.
func binaryFontSize(s string) float64 {
	switch {
	case len(s) > 48:
		return 6
	case len(s) > 32:
		return 7
	default:
		return 8
	}
}
