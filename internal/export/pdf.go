package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/gridfab/gridplate/internal/model"
)

// pieceColor represents an RGB color for a placed piece.
type pieceColor struct {
	R, G, B int
}

var plateColors = []pieceColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

var spacerFill = pieceColor{R: 189, G: 189, B: 189}

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
)

// ExportPDF renders the drawer layout as a PDF: a diagram page showing
// every plate and spacer in position, followed by a piece schedule page.
func ExportPDF(path string, layout *model.Layout, pieces []model.Piece) error {
	if len(layout.Plates) == 0 {
		return fmt.Errorf("no plates to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderDiagramPage(pdf, layout)

	pdf.AddPage()
	renderSchedulePage(pdf, layout, pieces)

	return pdf.OutputFileAndClose(path)
}

// renderDiagramPage draws the drawer outline and all placed pieces to scale.
func renderDiagramPage(pdf *fpdf.Fpdf, layout *model.Layout) {
	d := layout.Drawer

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Drawer %s: %.0f x %.0f mm (%d x %d units, %s layout)",
		d.Label, d.Width, d.Depth, layout.Units.X, layout.Units.Y, layout.Strategy)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Plates: %d | Spacers: %d | Gap: %.1f x %.1f mm | Coverage: %.1f%%",
		len(layout.Plates), len(layout.SpacersX)+len(layout.SpacersY),
		layout.Gap.X, layout.Gap.Y, layout.Coverage())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom

	scale := math.Min(drawWidth/d.Width, drawHeight/d.Depth)
	canvasW := d.Width * scale
	canvasH := d.Depth * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Drawer opening background
	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	plateIdx := 0
	for _, p := range layout.Placements() {
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale
		pw := p.Width * scale
		ph := p.Depth * scale

		var col pieceColor
		var caption string
		if p.Kind == model.PieceBaseplate {
			col = plateColors[plateIdx%len(plateColors)]
			plateIdx++
			caption = fmt.Sprintf("%d: %dx%d", p.Index, p.UnitsX, p.UnitsY)
		} else {
			col = spacerFill
			caption = fmt.Sprintf("%.1fmm", math.Min(p.Width, p.Depth))
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		if pdf.GetStringWidth(caption) < pw {
			pdf.SetXY(px, py+ph/2-2)
			pdf.CellFormat(pw, 4, caption, "", 0, "C", false, 0, "")
		}
	}
}

// renderSchedulePage lists every output piece with its dimensions.
func renderSchedulePage(pdf *fpdf.Fpdf, layout *model.Layout, pieces []model.Piece) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight,
		fmt.Sprintf("Piece schedule — %d pieces", len(pieces)), "", 0, "L", false, 0, "")

	colWidths := []float64{30, 10, 22, 28, 28, 22, 90}
	headers := []string{"Kind", "#", "Units", "Width (mm)", "Depth (mm)", "Thick (mm)", "File"}

	y := marginTop + headerHeight + 4
	x := marginLeft
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.SetXY(x, y)
		pdf.CellFormat(colWidths[i], 6, h, "1", 0, "L", true, 0, "")
		x += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for _, piece := range pieces {
		units := ""
		if piece.Kind == model.PieceBaseplate {
			units = fmt.Sprintf("%d x %d", piece.UnitsX, piece.UnitsY)
		}
		cells := []string{
			string(piece.Kind),
			fmt.Sprintf("%d", piece.Index),
			units,
			fmt.Sprintf("%.1f", piece.Width),
			fmt.Sprintf("%.1f", piece.Depth),
			fmt.Sprintf("%.1f", piece.Thickness),
			piece.File,
		}
		x = marginLeft
		for i, c := range cells {
			pdf.SetXY(x, y)
			pdf.CellFormat(colWidths[i], 5.5, c, "1", 0, "L", false, 0, "")
			x += colWidths[i]
		}
		y += 5.5
		if y > pageHeight-marginBottom-6 {
			pdf.AddPage()
			y = marginTop
		}
	}

	y += 6
	pdf.SetXY(marginLeft, y)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	note := fmt.Sprintf("Plates tile %d x %d grid units; spacers cover the %.1f x %.1f mm residual gap.",
		layout.Units.X, layout.Units.Y, layout.Gap.X, layout.Gap.Y)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, note, "", 0, "L", false, 0, "")
}
