package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/gridfab/gridplate/internal/model"
)

// ExportDXF writes a 2D outline drawing of the layout: the drawer
// opening, every plate, and every spacer on their own layers. Handy for
// checking the plan against the drawer in CAD before printing.
func ExportDXF(path string, layout *model.Layout) error {
	if len(layout.Plates) == 0 {
		return fmt.Errorf("no plates to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("DRAWER", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("add DRAWER layer: %w", err)
	}
	if err := rect(d, 0, 0, layout.Drawer.Width, layout.Drawer.Depth); err != nil {
		return fmt.Errorf("draw drawer outline: %w", err)
	}

	if _, err := d.AddLayer("PLATES", color.Green, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("add PLATES layer: %w", err)
	}
	placements := layout.Placements()
	for _, p := range placements {
		if p.Kind != model.PieceBaseplate {
			continue
		}
		if err := rect(d, p.X, p.Y, p.Width, p.Depth); err != nil {
			return fmt.Errorf("draw plate %d: %w", p.Index, err)
		}
	}

	if len(layout.SpacersX) > 0 || len(layout.SpacersY) > 0 {
		if _, err := d.AddLayer("SPACERS", color.Red, table.LT_CONTINUOUS, true); err != nil {
			return fmt.Errorf("add SPACERS layer: %w", err)
		}
		for _, p := range placements {
			if p.Kind == model.PieceBaseplate {
				continue
			}
			if err := rect(d, p.X, p.Y, p.Width, p.Depth); err != nil {
				return fmt.Errorf("draw %s %d: %w", p.Kind, p.Index, err)
			}
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("save DXF: %w", err)
	}
	return nil
}

// rect draws an axis-aligned rectangle as four line entities.
func rect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return err
		}
	}
	return nil
}
