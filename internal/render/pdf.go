package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/tagcloud/internal/cloud"
	"github.com/piwi3910/tagcloud/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// tagColor represents an RGB fill color for a word rectangle.
type tagColor struct {
	R, G, B int
}

// tagColors cycles through the fills used on the cloud page.
var tagColors = []tagColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	drawAreaTop  = marginTop + headerHeight + 5.0
	qrSize       = 40.0
	rowHeight    = 6.0
	// qrWords bounds the word list encoded in the summary QR code.
	qrWords = 10
)

// Summary is the machine-readable digest printed as a QR code on the summary page.
type Summary struct {
	ID      string            `json:"id"`
	Canvas  string            `json:"canvas"`
	Placed  int               `json:"placed"`
	Skipped int               `json:"skipped"`
	Factor  float64           `json:"factor"`
	Top     []model.WordCount `json:"top"`
}

// Summarize builds the digest of a cloud.
func Summarize(c cloud.Cloud) Summary {
	s := Summary{
		ID:      c.ID,
		Canvas:  c.Canvas.String(),
		Placed:  len(c.Tags),
		Skipped: len(c.Skipped),
		Factor:  math.Round(c.Factor*1000) / 1000,
	}
	for i, t := range c.Tags {
		if i == qrWords {
			break
		}
		s.Top = append(s.Top, model.WordCount{Word: t.Word, Count: t.Count})
	}
	return s
}

// ExportPDF writes a two-part report: the cloud diagram on the first page,
// then a summary with the word table and a QR code of the digest.
func ExportPDF(path string, c cloud.Cloud, settings model.Settings) error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("cloud has no canvas")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	renderCloudPage(pdf, c, settings, tr)

	pdf.AddPage()
	if err := renderSummaryPage(pdf, c, settings, tr); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

// renderCloudPage draws the canvas and every tag rectangle with its word.
func renderCloudPage(pdf *fpdf.Fpdf, c cloud.Cloud, settings model.Settings, tr func(string) string) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Tag Cloud %s (%s px)", c.ID, c.Canvas)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Words: %d | Skipped: %d | Scale: %.3f | Spiral step %.2f, %.3f rad",
		len(c.Tags), len(c.Skipped), c.Factor, settings.Step, settings.DeltaAngle)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/float64(c.Canvas.Width), drawHeight/float64(c.Canvas.Height))
	canvasW := float64(c.Canvas.Width) * scale
	canvasH := float64(c.Canvas.Height) * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	bg, err := model.ParseHexColor(settings.Background)
	if err != nil {
		bg.R, bg.G, bg.B = 255, 255, 255
	}
	pdf.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, tag := range c.Tags {
		col := tagColors[i%len(tagColors)]
		w := float64(tag.Rect.Size.Width) * scale
		h := float64(tag.Rect.Size.Height) * scale
		x := offsetX + float64(tag.Rect.Origin.X)*scale
		y := offsetY + float64(tag.Rect.Origin.Y)*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.1)
		pdf.Rect(x, y, w, h, "FD")

		// The word fills its rectangle height; 1 pt = 25.4/72 mm.
		fontPt := h * 72 / 25.4 * 0.8
		if fontPt < 2 || w < 1 {
			continue
		}
		pdf.SetFont("Helvetica", "", fontPt)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetXY(x, y)
		pdf.CellFormat(w, h, tr(tag.Word), "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the word table and the QR digest, continuing the
// table on new pages when it runs past the bottom margin.
func renderSummaryPage(pdf *fpdf.Fpdf, c cloud.Cloud, settings model.Settings, tr func(string) string) error {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Tag Cloud Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	summary := Summarize(c)
	qrData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}
	imgName := "qr_summary_" + c.ID
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))
	pdf.ImageOptions(imgName, pageWidth-marginRight-qrSize, marginTop+16, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	y := marginTop + 18
	items := []struct {
		label string
		value string
	}{
		{"Cloud ID", c.ID},
		{"Canvas", c.Canvas.String() + " px"},
		{"Words Placed", fmt.Sprintf("%d", len(c.Tags))},
		{"Words Skipped", fmt.Sprintf("%d", len(c.Skipped))},
		{"Scale Factor", fmt.Sprintf("%.3f", c.Factor)},
		{"Font", fontLabel(settings)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(80, 6, tr(item.value), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}
	y += 5

	colWidths := []float64{15, 80, 25, 30, 60}
	headers := []string{"#", "Word", "Count", "Font (pt)", "Rectangle"}
	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		xPos := marginLeft
		for i, header := range headers {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[i], rowHeight, header, "1", 0, "C", true, 0, "")
			xPos += colWidths[i]
		}
		y += rowHeight
		pdf.SetFont("Helvetica", "", 9)
	}
	drawHeader()

	for i, tag := range c.Tags {
		if y+rowHeight > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
			drawHeader()
		}
		row := []string{
			fmt.Sprintf("%d", i+1),
			tr(tag.Word),
			fmt.Sprintf("%d", tag.Count),
			fmt.Sprintf("%.1f", tag.FontSize),
			tag.Rect.String(),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		xPos := marginLeft
		for j, cell := range row {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], rowHeight, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += rowHeight
	}

	if len(c.Skipped) > 0 {
		y += 8
		if y+14 > pageHeight-marginBottom {
			pdf.AddPage()
			y = marginTop
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Words that did not fit", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, w := range c.Skipped {
			if y+5 > pageHeight-marginBottom {
				pdf.AddPage()
				y = marginTop
			}
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, tr(fmt.Sprintf("- %s (count: %d)", w.Word, w.Count)), "", 0, "L", false, 0, "")
			y += 5
		}
	}

	return nil
}

func fontLabel(settings model.Settings) string {
	if settings.FontPath == "" {
		return "Go Regular"
	}
	return settings.FontPath
}
