package model

// Layout is the full planning result for one drawer: the plate tiling,
// the residual gaps, and the spacer pieces chosen for each gap axis.
type Layout struct {
	Drawer   Drawer       `json:"drawer"`
	Settings PlanSettings `json:"settings"`
	Strategy string       `json:"strategy"` // Which tiling strategy produced the plates
	Plates   []PlateSpec  `json:"plates"`   // Row-major generation order
	Units    GridUnits    `json:"units"`
	Gap      Gap          `json:"gap"`
	SpacersX []FillerSpec `json:"spacers_x,omitempty"`
	SpacersY []FillerSpec `json:"spacers_y,omitempty"`
}

// Placement positions one piece inside the drawer, in mm from the
// front-left corner. Derived from the row-major plate order; the user is
// free to arrange the physical pieces differently.
type Placement struct {
	Kind   PieceKind `json:"kind"`
	Index  int       `json:"index"` // 1-based within its kind
	X      float64   `json:"x"`     // mm
	Y      float64   `json:"y"`     // mm
	Width  float64   `json:"width"` // mm
	Depth  float64   `json:"depth"` // mm
	UnitsX int       `json:"units_x,omitempty"`
	UnitsY int       `json:"units_y,omitempty"`
}

// Placements lays the plates back onto the drawer by walking the
// row-major order with a cursor: plates fill a row until the drawer's
// unit width is exhausted, then the cursor drops to the next row. Spacer
// strips follow along the right and back edges.
func (l *Layout) Placements() []Placement {
	unit := l.Settings.UnitSize
	placements := make([]Placement, 0, len(l.Plates)+len(l.SpacersX)+len(l.SpacersY))

	var cursorX, rowY int
	rowHeight := 0
	for i, p := range l.Plates {
		if p.UnitsY > rowHeight {
			rowHeight = p.UnitsY
		}
		placements = append(placements, Placement{
			Kind:   PieceBaseplate,
			Index:  i + 1,
			X:      float64(cursorX) * unit,
			Y:      float64(rowY) * unit,
			Width:  p.WidthMM(unit),
			Depth:  p.DepthMM(unit),
			UnitsX: p.UnitsX,
			UnitsY: p.UnitsY,
		})
		cursorX += p.UnitsX
		if cursorX >= l.Units.X {
			cursorX = 0
			rowY += rowHeight
			rowHeight = 0
		}
	}

	// X-gap spacers stack along the drawer depth at the right edge.
	edgeX := float64(l.Units.X) * unit
	y := 0.0
	for i, s := range l.SpacersX {
		placements = append(placements, Placement{
			Kind:  PieceSpacerX,
			Index: i + 1,
			X:     edgeX,
			Y:     y,
			Width: s.Width,
			Depth: s.Depth,
		})
		y += s.Depth
	}

	// Y-gap spacers stack along the drawer width at the back edge.
	edgeY := float64(l.Units.Y) * unit
	x := 0.0
	for i, s := range l.SpacersY {
		placements = append(placements, Placement{
			Kind:  PieceSpacerY,
			Index: i + 1,
			X:     x,
			Y:     edgeY,
			Width: s.Depth, // Strip runs along X, so the long side is the width
			Depth: s.Width,
		})
		x += s.Depth
	}

	return placements
}

// PlateArea returns the total plate footprint in square mm.
func (l *Layout) PlateArea() float64 {
	unit := l.Settings.UnitSize
	var area float64
	for _, p := range l.Plates {
		area += p.WidthMM(unit) * p.DepthMM(unit)
	}
	return area
}

// CoveredArea returns the plate footprint plus all spacer footprints.
func (l *Layout) CoveredArea() float64 {
	area := l.PlateArea()
	for _, s := range l.SpacersX {
		area += s.Width * s.Depth
	}
	for _, s := range l.SpacersY {
		area += s.Width * s.Depth
	}
	return area
}

// DrawerArea returns the drawer opening area in square mm.
func (l *Layout) DrawerArea() float64 {
	return l.Drawer.Width * l.Drawer.Depth
}

// Coverage returns covered area as a percentage of the drawer opening.
func (l *Layout) Coverage() float64 {
	total := l.DrawerArea()
	if total <= 0 {
		return 0
	}
	return l.CoveredArea() / total * 100.0
}

// PieceCount returns the total number of physical pieces to print.
func (l *Layout) PieceCount() int {
	return len(l.Plates) + len(l.SpacersX) + len(l.SpacersY)
}
