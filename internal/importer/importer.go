// Package importer reads drawer lists from CSV and Excel files for
// batch planning. It supports automatic delimiter detection, flexible
// column mapping, and case-insensitive header recognition.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/gridfab/gridplate/internal/model"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Drawers  []model.Drawer
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Label     int
	Width     int
	Depth     int
	Thickness int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"label":     {"label", "name", "drawer", "drawer name", "description", "desc"},
	"width":     {"width", "w", "x"},
	"depth":     {"depth", "d", "height", "h", "length", "len", "y"},
	"thickness": {"thickness", "thick", "t", "plate thickness"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV
// delimiter. It tries comma, semicolon, tab, and pipe; the delimiter producing
// the most consistent multi-column row shape wins.
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

// DetectColumns examines a header row and returns a ColumnMapping. Matching is
// case-insensitive against known aliases. Returns the mapping and true if a
// header was detected, or a default positional mapping (label, width, depth,
// thickness) and false if not.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{Label: -1, Width: -1, Depth: -1, Thickness: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.Label == -1 {
						mapping.Label = i
					}
				case "width":
					if mapping.Width == -1 {
						mapping.Width = i
					}
				case "depth":
					if mapping.Depth == -1 {
						mapping.Depth = i
					}
				case "thickness":
					if mapping.Thickness == -1 {
						mapping.Thickness = i
					}
				}
			}
		}
	}

	if !isHeader {
		return ColumnMapping{Label: 0, Width: 1, Depth: 2, Thickness: 3}, false
	}
	return mapping, true
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseRow converts one data row into a Drawer. It returns the drawer, an
// error string (fatal for the row), and a warning string (row still usable).
func parseRow(row []string, mapping ColumnMapping, rowLabel string, count int) (model.Drawer, string, string) {
	var warning string

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("drawer-%d", count+1)
		warning = fmt.Sprintf("%s: missing label, using %q", rowLabel, label)
	}

	widthStr := getCell(row, mapping.Width)
	depthStr := getCell(row, mapping.Depth)
	if widthStr == "" || depthStr == "" {
		return model.Drawer{}, fmt.Sprintf("%s: missing width or depth", rowLabel), warning
	}

	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return model.Drawer{}, fmt.Sprintf("%s: invalid width %q", rowLabel, widthStr), warning
	}
	depth, err := strconv.ParseFloat(depthStr, 64)
	if err != nil {
		return model.Drawer{}, fmt.Sprintf("%s: invalid depth %q", rowLabel, depthStr), warning
	}
	if width <= 0 || depth <= 0 {
		return model.Drawer{}, fmt.Sprintf("%s: width and depth must be positive", rowLabel), warning
	}

	drawer := model.NewDrawer(label, width, depth)

	if thickStr := getCell(row, mapping.Thickness); thickStr != "" {
		thickness, err := strconv.ParseFloat(thickStr, 64)
		if err != nil || thickness <= 0 {
			warning = fmt.Sprintf("%s: ignoring invalid thickness %q", rowLabel, thickStr)
		} else {
			drawer.Thickness = thickness
		}
	}

	return drawer, "", warning
}

// ImportCSV imports drawers from a CSV file, auto-detecting the delimiter and
// mapping columns by header names.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", delimName))
	}

	return importCSVData(bytes.NewReader(data), delimiter, result.Warnings)
}

// ImportCSVFromReader imports drawers from a CSV reader with a known delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	return importCSVData(reader, delimiter, nil)
}

func importCSVData(reader io.Reader, delimiter rune, warnings []string) ImportResult {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("cannot read CSV: %v", err)}, Warnings: warnings}
	}
	if len(records) == 0 {
		return ImportResult{Errors: []string{"file is empty"}, Warnings: warnings}
	}

	return importFromRows(records, "line", warnings)
}

// ImportExcel imports drawers from an Excel (.xlsx) file. Reads the first
// sheet and auto-detects the column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
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
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}
	if len(rows) == 0 {
		result.Errors = append(result.Errors, "sheet is empty")
		return result
	}

	return importFromRows(rows, "row", nil)
}

// importFromRows is the shared import logic for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	mapping, hasHeader := DetectColumns(rows[0])
	start := 0
	if hasHeader {
		start = 1
	} else {
		result.Warnings = append(result.Warnings, "no header row detected, assuming label/width/depth/thickness order")
	}

	for i := start; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		drawer, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Drawers))
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Drawers = append(result.Drawers, drawer)
	}

	if len(result.Drawers) == 0 && len(result.Errors) == 0 {
		result.Errors = append(result.Errors, "no drawers found in file")
	}

	return result
}
