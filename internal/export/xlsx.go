package export

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names in the token workbook.
const (
	SheetValues     = "Values"
	SheetSemantic   = "Semantic"
	SheetTypography = "Typography"
	SheetShadows    = "Shadows"
)

// ExportTokensXLSX writes the token workbook to path.
func ExportTokensXLSX(path string) error {
	f, err := BuildTokensWorkbook(BuildTokenSet())
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

// BuildTokensWorkbook lays the token set out over four sheets. Color cells
// are filled with the color they describe.
func BuildTokensWorkbook(set TokenSet) (*excelize.File, error) {
	f := excelize.NewFile()
	w := &workbook{f: f, fills: make(map[string]int)}

	if err := f.SetSheetName("Sheet1", SheetValues); err != nil {
		f.Close()
		return nil, err
	}
	for _, name := range []string{SheetSemantic, SheetTypography, SheetShadows} {
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
	}

	w.row(SheetValues, 1, "Name", "Hex", "Components", "Swatch")
	for i, v := range set.Values {
		r := i + 2
		w.row(SheetValues, r, v.Name, v.Hex, v.Description, "")
		w.fill(SheetValues, "D", r, v.Hex)
	}

	header := []any{"Name", "High contrast override"}
	for _, a := range Appearances {
		header = append(header, a.String(), a.String()+" swatch")
	}
	w.row(SheetSemantic, 1, header...)
	for i, s := range set.Semantic {
		r := i + 2
		cells := []any{s.Name, s.HighContrast}
		for _, res := range s.Resolutions {
			cells = append(cells, fmt.Sprintf("%s: %s", res.Value, res.Description), "")
		}
		w.row(SheetSemantic, r, cells...)
		for j, res := range s.Resolutions {
			col, _ := excelize.ColumnNumberToName(4 + 2*j)
			w.fill(SheetSemantic, col, r, res.Swatch)
		}
	}

	w.row(SheetTypography, 1, "Style", "Family", "Font", "Point size", "Text style")
	for i, t := range set.Fonts {
		w.row(SheetTypography, i+2, t.Style, t.Family, t.Font, t.PointSize, t.TextStyle)
	}

	w.row(SheetShadows, 1, "Name", "X", "Y", "Blur", "Radius", "Color (light)", "Opacity")
	for i, s := range set.Shadows {
		w.row(SheetShadows, i+2, s.Name, s.XOffset, s.YOffset, s.Blur, s.Radius, s.Color, s.Opacity)
	}

	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	return f, nil
}

// workbook keeps the first error so the layout code stays linear.
type workbook struct {
	f     *excelize.File
	fills map[string]int
	err   error
}

func (w *workbook) row(sheet string, r int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

// fill paints a cell with a hex color. Excel fills are opaque, so callers
// pass composited colors; an alpha byte is dropped.
func (w *workbook) fill(sheet, col string, r int, hex string) {
	if w.err != nil {
		return
	}
	rgb := strings.ToUpper(strings.TrimPrefix(hex, "#"))
	if len(rgb) > 6 {
		rgb = rgb[:6]
	}
	style, ok := w.fills[rgb]
	if !ok {
		var err error
		style, err = w.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{rgb}},
		})
		if err != nil {
			w.err = err
			return
		}
		w.fills[rgb] = style
	}
	cell := fmt.Sprintf("%s%d", col, r)
	w.err = w.f.SetCellStyle(sheet, cell, cell, style)
}
