package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gridfab/gridplate/internal/model"
)

// excelHeaders is the piece schedule column layout.
var excelHeaders = []string{"Kind", "Index", "Units X", "Units Y", "Width (mm)", "Depth (mm)", "Thickness (mm)", "File"}

// ExportExcel writes the piece schedule as a workbook: one row per
// generated piece plus a summary block for the drawer.
func ExportExcel(path string, layout *model.Layout, pieces []model.Piece) error {
	if len(pieces) == 0 {
		return fmt.Errorf("no pieces to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pieces"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	for i, h := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for row, piece := range pieces {
		values := []interface{}{
			string(piece.Kind),
			piece.Index,
			piece.UnitsX,
			piece.UnitsY,
			piece.Width,
			piece.Depth,
			piece.Thickness,
			piece.File,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("cell name: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("write piece row %d: %w", row+1, err)
			}
		}
	}

	// Summary block two rows below the schedule.
	summaryRow := len(pieces) + 3
	summary := [][2]interface{}{
		{"Drawer", fmt.Sprintf("%s (%.0f x %.0f mm)", layout.Drawer.Label, layout.Drawer.Width, layout.Drawer.Depth)},
		{"Grid units", fmt.Sprintf("%d x %d", layout.Units.X, layout.Units.Y)},
		{"Strategy", layout.Strategy},
		{"Gap X (mm)", layout.Gap.X},
		{"Gap Y (mm)", layout.Gap.Y},
		{"Coverage (%)", layout.Coverage()},
	}
	for i, kv := range summary {
		keyCell, err := excelize.CoordinatesToCellName(1, summaryRow+i)
		if err != nil {
			return fmt.Errorf("summary cell name: %w", err)
		}
		valCell, err := excelize.CoordinatesToCellName(2, summaryRow+i)
		if err != nil {
			return fmt.Errorf("summary cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, keyCell, kv[0]); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		if err := f.SetCellValue(sheet, valCell, kv[1]); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}
	if err := f.SetColWidth(sheet, "H", "H", 36); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
