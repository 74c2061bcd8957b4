package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/DialogKit/internal/model"
)

// CardInfo holds the data encoded into each value card's QR code.
type CardInfo struct {
	ID       string `json:"id"`
	BitWidth int    `json:"bits"`
	Decimal  string `json:"dec"`
	Hex      string `json:"hex"`
	Binary   string `json:"bin"`
}

// Card layout constants: 2 columns x 5 rows on A4 portrait.
const (
	cardMarginTop  = 15.0
	cardMarginLeft = 12.0
	cardWidth      = 93.0
	cardHeight     = 53.0
	cardCols       = 2
	cardRows       = 5
	cardsPerPage   = cardCols * cardRows
	cardQRSize     = 32.0
	cardPadding    = 3.0
)

// CollectCardInfos extracts the card payloads from conversion entries.
func CollectCardInfos(entries []model.Conversion) []CardInfo {
	cards := make([]CardInfo, 0, len(entries))
	for _, c := range entries {
		cards = append(cards, CardInfo{
			ID:       c.ID,
			BitWidth: c.BitWidth,
			Decimal:  c.Decimal,
			Hex:      c.Hex,
			Binary:   c.Binary,
		})
	}
	return cards
}

// ExportCards generates a PDF with one card per conversion. Each card lists
// the value in all three bases next to a QR code carrying the same data as
// JSON.
func ExportCards(path string, entries []model.Conversion) error {
	if len(entries) == 0 {
		return fmt.Errorf("no conversions to generate cards for")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, card := range CollectCardInfos(entries) {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}
		pos := i % cardsPerPage
		x := cardMarginLeft + float64(pos%cardCols)*cardWidth
		y := cardMarginTop + float64(pos/cardCols)*cardHeight

		if err := renderCard(pdf, x, y, i, card); err != nil {
			return fmt.Errorf("failed to render card for %s: %w", card.Decimal, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderCard draws a single card at the given position.
func renderCard(pdf *fpdf.Fpdf, x, y float64, index int, info CardInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	payload, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal card info: %w", err)
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%d_%s", index, info.ID)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imgName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imgName, x+cardWidth-cardQRSize-cardPadding, y+cardPadding, cardQRSize, cardQRSize, false, opts, 0, "")

	textX := x + cardPadding
	textW := cardWidth - cardQRSize - 3*cardPadding

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(textX, y+cardPadding)
	pdf.CellFormat(textW, 6, truncateToWidth(pdf, info.Decimal, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Courier", "", 9)
	pdf.SetXY(textX, y+cardPadding+8)
	pdf.CellFormat(textW, 4.5, truncateToWidth(pdf, "0x"+info.Hex, textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+cardPadding+14)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%d-bit  #%s", info.BitWidth, info.ID), "", 1, "L", false, 0, "")

	// binary spans the card below the QR code, wrapped in groups of 32
	pdf.SetFont("Courier", "", 7)
	pdf.SetTextColor(0, 0, 0)
	by := y + cardPadding + cardQRSize + 2
	for _, line := range chunk(info.Binary, 32) {
		pdf.SetXY(textX, by)
		pdf.CellFormat(cardWidth-2*cardPadding, 3.5, line, "", 1, "L", false, 0, "")
		by += 3.5
	}
	return nil
}

// truncateToWidth shortens s with an ellipsis until it fits w at the current font.
func truncateToWidth(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}

// chunk splits s into pieces of at most n bytes.
func chunk(s string, n int) []string {
	if s == "" {
		return nil
	}
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	return append(out, s)
}
