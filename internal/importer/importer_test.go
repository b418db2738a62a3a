package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDetectCSVDelimiter(t *testing.T) {
	cases := []struct {
		name string
		data string
		want rune
	}{
		{"comma", "label,width,depth\nkitchen,500,300\n", ','},
		{"semicolon", "label;width;depth\nkitchen;500;300\n", ';'},
		{"tab", "label\twidth\tdepth\nkitchen\t500\t300\n", '\t'},
		{"pipe", "label|width|depth\nkitchen|500|300\n", '|'},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectCSVDelimiter([]byte(tc.data)))
		})
	}
}

func TestDetectColumnsWithHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"Name", "Width", "Depth", "Thickness"})

	require.True(t, hasHeader)
	assert.Equal(t, 0, mapping.Label)
	assert.Equal(t, 1, mapping.Width)
	assert.Equal(t, 2, mapping.Depth)
	assert.Equal(t, 3, mapping.Thickness)
}

func TestDetectColumnsAliases(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"w", "d", "drawer name"})

	require.True(t, hasHeader)
	assert.Equal(t, 0, mapping.Width)
	assert.Equal(t, 1, mapping.Depth)
	assert.Equal(t, 2, mapping.Label)
	assert.Equal(t, -1, mapping.Thickness)
}

func TestDetectColumnsNoHeader(t *testing.T) {
	mapping, hasHeader := DetectColumns([]string{"kitchen", "500", "300"})

	require.False(t, hasHeader)
	assert.Equal(t, 0, mapping.Label)
	assert.Equal(t, 1, mapping.Width)
	assert.Equal(t, 2, mapping.Depth)
}

func TestImportCSVWithHeader(t *testing.T) {
	csv := "label,width,depth,thickness\nkitchen,500,300,\nworkshop,812.5,400,6.5\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Drawers, 2)

	assert.Equal(t, "kitchen", result.Drawers[0].Label)
	assert.Equal(t, 500.0, result.Drawers[0].Width)
	assert.Equal(t, 300.0, result.Drawers[0].Depth)
	assert.Zero(t, result.Drawers[0].Thickness)

	assert.Equal(t, 812.5, result.Drawers[1].Width)
	assert.Equal(t, 6.5, result.Drawers[1].Thickness)
	assert.NotEmpty(t, result.Drawers[1].ID)
}

func TestImportCSVPositionalFallback(t *testing.T) {
	csv := "left,450,290\nright,450,310\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Drawers, 2)
	assert.NotEmpty(t, result.Warnings, "should warn about assumed column order")
}

func TestImportCSVCollectsRowErrors(t *testing.T) {
	csv := "label,width,depth\ngood,500,300\nbad,abc,300\nnegative,-10,300\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Len(t, result.Drawers, 1)
	assert.Equal(t, "good", result.Drawers[0].Label)
	assert.Len(t, result.Errors, 2)
}

func TestImportCSVMissingLabelGetsGenerated(t *testing.T) {
	csv := "label,width,depth\n,500,300\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Drawers, 1)
	assert.Equal(t, "drawer-1", result.Drawers[0].Label)
	assert.NotEmpty(t, result.Warnings)
}

func TestImportCSVInvalidThicknessWarns(t *testing.T) {
	csv := "label,width,depth,thickness\nkitchen,500,300,thick\n"
	result := ImportCSVFromReader(strings.NewReader(csv), ',')

	require.Empty(t, result.Errors)
	require.Len(t, result.Drawers, 1)
	assert.Zero(t, result.Drawers[0].Thickness)
	assert.NotEmpty(t, result.Warnings)
}

func TestImportCSVFileWithSemicolons(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawers.csv")
	require.NoError(t, os.WriteFile(path, []byte("label;width;depth\nkitchen;500;300\n"), 0644))

	result := ImportCSV(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Drawers, 1)
	assert.NotEmpty(t, result.Warnings, "should note the non-comma delimiter")
}

func TestImportCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	result := ImportCSV(path)
	assert.NotEmpty(t, result.Errors)
	assert.Empty(t, result.Drawers)
}

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drawers.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Label", "Width", "Depth", "Thickness"},
		{"kitchen", 500, 300, nil},
		{"garage", 900, 600, 7},
	}
	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	result := ImportExcel(path)

	require.Empty(t, result.Errors)
	require.Len(t, result.Drawers, 2)
	assert.Equal(t, "garage", result.Drawers[1].Label)
	assert.Equal(t, 900.0, result.Drawers[1].Width)
	assert.Equal(t, 7.0, result.Drawers[1].Thickness)
}

func TestImportExcelMissingFile(t *testing.T) {
	result := ImportExcel(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.NotEmpty(t, result.Errors)
}
