// Package engine contains the planning core: tiling a drawer opening
// with bed-sized baseplates and splitting the leftover gaps into
// printable spacer pieces.
package engine

import (
	"math"

	"github.com/gridfab/gridplate/internal/model"
)

// Planner tiles drawer openings with baseplates bounded by the printer
// bed. It is stateless; every Plan call depends only on its inputs.
type Planner struct {
	Settings model.PlanSettings
}

func New(settings model.PlanSettings) *Planner {
	return &Planner{Settings: settings}
}

// grid captures the whole-unit picture of one planning problem: how many
// units the drawer spans and how many fit on the bed per print.
type grid struct {
	unitsX, unitsY       int
	maxUnitsX, maxUnitsY int
}

// strategy is one tiling approach guarded by a fit predicate. Strategies
// are tried in order; cheaper layouts (fewer, larger plates) come first.
type strategy struct {
	name string
	fits func(g grid) bool
	tile func(g grid) []model.PlateSpec
}

var strategies = []strategy{
	{
		// The whole drawer prints as a single plate.
		name: "single-plate",
		fits: func(g grid) bool { return g.unitsX <= g.maxUnitsX && g.unitsY <= g.maxUnitsY },
		tile: tileSingle,
	},
	{
		// Only the width exceeds the bed: cut the drawer into full-depth
		// strips, each as wide as the bed allows.
		name: "split-x",
		fits: func(g grid) bool { return g.unitsY <= g.maxUnitsY },
		tile: tileSplitX,
	},
	{
		// Only the depth exceeds the bed: full-width strips stacked in Y.
		name: "split-y",
		fits: func(g grid) bool { return g.unitsX <= g.maxUnitsX },
		tile: tileSplitY,
	},
	{
		// Both axes exceed the bed: a grid of near-equal plates.
		name: "grid",
		fits: func(grid) bool { return true },
		tile: tileGrid,
	},
}

// Plan computes the plate tiling, the per-axis gap, and the drawer's
// whole-unit footprint for one drawer. The gap is the residue of
// truncating the drawer to whole units; it does not depend on how the
// plates were split.
func (p *Planner) Plan(drawer model.Drawer) (*model.Layout, error) {
	s := p.Settings
	if drawer.Width <= 0 || drawer.Depth <= 0 || s.BedWidth <= 0 || s.BedDepth <= 0 || s.UnitSize <= 0 {
		return nil, ErrInvalidDimension
	}

	g := grid{
		unitsX:    int(math.Floor(drawer.Width / s.UnitSize)),
		unitsY:    int(math.Floor(drawer.Depth / s.UnitSize)),
		maxUnitsX: int(math.Floor(s.BedWidth / s.UnitSize)),
		maxUnitsY: int(math.Floor(s.BedDepth / s.UnitSize)),
	}
	if g.unitsX < 1 || g.unitsY < 1 {
		return nil, ErrDrawerTooSmall
	}
	if g.maxUnitsX < 1 || g.maxUnitsY < 1 {
		return nil, ErrBedTooSmall
	}

	gap := model.Gap{
		X: drawer.Width - float64(g.unitsX)*s.UnitSize,
		Y: drawer.Depth - float64(g.unitsY)*s.UnitSize,
	}

	for _, st := range strategies {
		if !st.fits(g) {
			continue
		}
		return &model.Layout{
			Drawer:   drawer,
			Settings: s,
			Strategy: st.name,
			Plates:   st.tile(g),
			Units:    model.GridUnits{X: g.unitsX, Y: g.unitsY},
			Gap:      gap,
		}, nil
	}
	panic("engine: no tiling strategy matched") // the grid strategy always fits
}

func tileSingle(g grid) []model.PlateSpec {
	return []model.PlateSpec{{UnitsX: g.unitsX, UnitsY: g.unitsY}}
}

func tileSplitX(g grid) []model.PlateSpec {
	var plates []model.PlateSpec
	for remaining := g.unitsX; remaining > 0; {
		w := remaining
		if w > g.maxUnitsX {
			w = g.maxUnitsX
		}
		plates = append(plates, model.PlateSpec{UnitsX: w, UnitsY: g.unitsY})
		remaining -= w
	}
	return plates
}

func tileSplitY(g grid) []model.PlateSpec {
	var plates []model.PlateSpec
	for remaining := g.unitsY; remaining > 0; {
		d := remaining
		if d > g.maxUnitsY {
			d = g.maxUnitsY
		}
		plates = append(plates, model.PlateSpec{UnitsX: g.unitsX, UnitsY: d})
		remaining -= d
	}
	return plates
}

// tileGrid splits both axes, spreading units as evenly as possible so
// plates stay close to square instead of leaving one small remnant.
// Oversized columns and rows always come first; output file names depend
// on this order, so it must not change.
func tileGrid(g grid) []model.PlateSpec {
	numX := ceilDiv(g.unitsX, g.maxUnitsX)
	numY := ceilDiv(g.unitsY, g.maxUnitsY)

	baseX, remX := g.unitsX/numX, g.unitsX%numX
	baseY, remY := g.unitsY/numY, g.unitsY%numY

	plates := make([]model.PlateSpec, 0, numX*numY)
	for row := 0; row < numY; row++ {
		ySize := baseY
		if row < remY {
			ySize++
		}
		for col := 0; col < numX; col++ {
			xSize := baseX
			if col < remX {
				xSize++
			}
			plates = append(plates, model.PlateSpec{UnitsX: xSize, UnitsY: ySize})
		}
	}
	return plates
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
