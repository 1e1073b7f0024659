package export

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportTokensXLSX_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.xlsx")
	require.NoError(t, ExportTokensXLSX(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetValues, SheetSemantic, SheetTypography, SheetShadows}, f.GetSheetList())

	rows, err := f.GetRows(SheetValues)
	require.NoError(t, err)
	require.Len(t, rows, 60)
	assert.Equal(t, []string{"Name", "Hex", "Components", "Swatch"}, rows[0])
	assert.Equal(t, "blue1", rows[1][0])
	assert.Equal(t, "rgb(14, 110, 180)", rows[1][2])

	sem, err := f.GetRows(SheetSemantic)
	require.NoError(t, err)
	require.Len(t, sem, 34)
	assert.Equal(t, "backgroundPrimary", sem[1][0])
	assert.Equal(t, "white: w(255)", sem[1][2])
	assert.Equal(t, "black3: rgb(30, 35, 40)", sem[1][4])
}

func TestBuildTokensWorkbook_FillsSwatches(t *testing.T) {
	f, err := BuildTokensWorkbook(BuildTokenSet())
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle(SheetValues, "D3")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotEmpty(t, style.Fill.Color)
	assert.True(t, strings.HasSuffix(strings.ToUpper(style.Fill.Color[0]), "0099E5"), style.Fill.Color[0])
}

func TestBuildTokensWorkbook_TintSwatchesDiffer(t *testing.T) {
	f, err := BuildTokensWorkbook(BuildTokenSet())
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetSemantic)
	require.NoError(t, err)

	fills := make(map[string]string)
	for i, row := range rows[1:] {
		name := row[0]
		if !strings.HasPrefix(name, "blue") {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(4, i+2)
		require.NoError(t, err)
		styleID, err := f.GetCellStyle(SheetSemantic, cell)
		require.NoError(t, err)
		style, err := f.GetStyle(styleID)
		require.NoError(t, err)
		require.NotEmpty(t, style.Fill.Color, name)
		fills[name] = strings.ToUpper(style.Fill.Color[0])
	}

	require.Len(t, fills, 4)
	seen := make(map[string]string)
	for name, fill := range fills {
		if other, dup := seen[fill]; dup {
			t.Errorf("%s and %s share fill %s", name, other, fill)
		}
		seen[fill] = name
	}
}
