package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/tuxedo/internal/colors"
	"github.com/piwi3910/tuxedo/internal/fonts"
	"github.com/piwi3910/tuxedo/internal/shadow"
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

	chipWidth  = 24.0
	chipHeight = 14.0
	chipGapX   = 3.0
	chipGapY   = 12.0
)

// ExportPalettePDF writes the swatch sheet to path.
func ExportPalettePDF(path string) error {
	pdf := newPalettePDF()
	return pdf.OutputFileAndClose(path)
}

// WritePalettePDF writes the swatch sheet to w.
func WritePalettePDF(w io.Writer) error {
	pdf := newPalettePDF()
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering palette pdf: %w", err)
	}
	return nil
}

// newPalettePDF lays out one page of value colors, one page of semantic
// colors per appearance, then typography and shadows.
func newPalettePDF() *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.SetTitle("Tuxedo palette", true)

	pdf.AddPage()
	renderValuePage(pdf)

	for _, a := range Appearances {
		pdf.AddPage()
		renderSemanticPage(pdf, a)
	}

	pdf.AddPage()
	renderTypographyPage(pdf)

	pdf.AddPage()
	renderShadowPage(pdf)

	return pdf
}

func pageTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")
}

// chipGrid yields the top-left corner of the i-th chip.
func chipGrid(i int) (x, y float64) {
	perRow := int((pageWidth - marginLeft - marginRight + chipGapX) / (chipWidth + chipGapX))
	col := i % perRow
	row := i / perRow
	x = marginLeft + float64(col)*(chipWidth+chipGapX)
	y = marginTop + headerHeight + 4 + float64(row)*(chipHeight+chipGapY)
	return x, y
}

// drawChip fills a chip with c over a light checker so alpha stays visible.
func drawChip(pdf *fpdf.Fpdf, x, y float64, c colors.Components, label, detail string) {
	pdf.SetFillColor(220, 220, 220)
	pdf.SetDrawColor(220, 220, 220)
	pdf.Rect(x, y, chipWidth, chipHeight, "F")
	pdf.SetFillColor(255, 255, 255)
	pdf.Rect(x, y, chipWidth/2, chipHeight/2, "F")
	pdf.Rect(x+chipWidth/2, y+chipHeight/2, chipWidth/2, chipHeight/2, "F")

	n := c.NRGBA()
	pdf.SetAlpha(float64(n.A)/255.0, "Normal")
	pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
	pdf.Rect(x, y, chipWidth, chipHeight, "F")
	pdf.SetAlpha(1, "Normal")

	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, chipWidth, chipHeight, "D")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 6)
	pdf.SetXY(x, y+chipHeight+0.5)
	pdf.CellFormat(chipWidth, 3, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 5)
	pdf.SetXY(x, y+chipHeight+3.5)
	pdf.CellFormat(chipWidth, 3, detail, "", 0, "L", false, 0, "")
}

func renderValuePage(pdf *fpdf.Fpdf) {
	pageTitle(pdf, "Value colors")
	for i, v := range colors.AllValueColors() {
		x, y := chipGrid(i)
		c := v.Components()
		drawChip(pdf, x, y, c, v.Name(), c.String())
	}
}

func renderSemanticPage(pdf *fpdf.Fpdf, a colors.Appearance) {
	pageTitle(pdf, fmt.Sprintf("Semantic colors (%s)", a))
	for i, s := range colors.AllSemanticColors() {
		x, y := chipGrid(i)
		r := colors.Resolve(s, a)
		drawChip(pdf, x, y, r.Components(), s.Name(), r.String())
	}
}

func renderTypographyPage(pdf *fpdf.Fpdf) {
	pageTitle(pdf, "Typography")

	y := marginTop + headerHeight + 4
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(marginLeft, y)
	for _, h := range []struct {
		text  string
		width float64
	}{{"Style", 40}, {"Montserrat", 60}, {"Lexend", 60}, {"Size", 25}, {"Scales with", 40}} {
		pdf.CellFormat(h.width, 6, h.text, "B", 0, "L", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 9)
	for _, st := range fonts.Styles() {
		y += 7
		m := fonts.ComponentsFor(st, fonts.Montserrat)
		l := fonts.ComponentsFor(st, fonts.Lexend)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(40, 6, st.String(), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, m.Name.FileBase(), "", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, l.Name.FileBase(), "", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%gpt", m.PointSize), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, m.TextStyle.String(), "", 0, "L", false, 0, "")
	}
}

func renderShadowPage(pdf *fpdf.Fpdf) {
	pageTitle(pdf, "Shadows")

	const cardW, cardH, gap = 50.0, 28.0, 14.0
	for i, s := range shadow.All() {
		col := i % 4
		row := i / 4
		x := marginLeft + 10 + float64(col)*(cardW+gap)
		y := marginTop + headerHeight + 12 + float64(row)*(cardH+gap+10)

		c := s.Components()
		res := c.Resolve(colors.Light)

		// Approximate the blur with expanding translucent rectangles.
		const steps = 6
		for k := steps; k >= 1; k-- {
			spread := float64(res.Radius) * float64(k) / steps * 0.35
			pdf.SetAlpha(float64(res.Color.A)/255.0/steps, "Normal")
			pdf.SetFillColor(int(res.Color.R), int(res.Color.G), int(res.Color.B))
			pdf.RoundedRect(x+float64(res.Offset.X)*0.35-spread, y+float64(res.Offset.Y)*0.35-spread,
				cardW+2*spread, cardH+2*spread, 2, "1234", "F")
		}
		pdf.SetAlpha(1, "Normal")

		pdf.SetFillColor(255, 255, 255)
		pdf.SetDrawColor(230, 230, 230)
		pdf.RoundedRect(x, y, cardW, cardH, 2, "1234", "FD")

		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetXY(x+2, y+2)
		pdf.CellFormat(cardW-4, 4, s.String(), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 6)
		pdf.SetXY(x, y+cardH+3)
		pdf.CellFormat(cardW, 3, fmt.Sprintf("x %g  y %g  blur %g  radius %g", c.XOffset, c.YOffset, c.Blur, c.Radius()), "", 0, "L", false, 0, "")
	}
}
