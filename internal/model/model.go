// Package model defines the domain types shared by the layout planner,
// the geometry builder, and the exporters: drawers, grid constants,
// plate and spacer specifications, and the planned layout.
package model

import "github.com/google/uuid"

// GridConfig holds the grid-system constants. One unit is a 42mm square
// cell; every plate footprint is a whole number of units.
type GridConfig struct {
	UnitSize    float64 `json:"unit_size"`    // Grid pitch in mm
	Tolerance   float64 `json:"tolerance"`    // Clearance per side between bin base and socket (mm)
	BaseHeight  float64 `json:"base_height"`  // Height of the socket rim above the plate floor (mm)
	OuterFillet float64 `json:"outer_fillet"` // Corner radius of a plate (mm)
	WallInset   float64 `json:"wall_inset"`   // Socket rim wall thickness per cell edge (mm)
}

// DefaultGridConfig returns the standard grid constants.
func DefaultGridConfig() GridConfig {
	return GridConfig{
		UnitSize:    42.0,
		Tolerance:   0.25,
		BaseHeight:  4.75,
		OuterFillet: 4.0,
		WallInset:   2.15,
	}
}

// PlanSettings holds everything the planner needs beyond the drawer
// itself. Bed size is threaded through here explicitly so two plans with
// different beds can run side by side without shared state.
type PlanSettings struct {
	BedWidth        float64 `json:"bed_width"`         // Printer bed width in mm
	BedDepth        float64 `json:"bed_depth"`         // Printer bed depth in mm
	UnitSize        float64 `json:"unit_size"`         // Grid pitch in mm
	Thickness       float64 `json:"thickness"`         // Plate and spacer thickness in mm
	SpacerMaxLength float64 `json:"spacer_max_length"` // Longest single spacer piece (mm)
	SpacerMaxAspect float64 `json:"spacer_max_aspect"` // Max length:width ratio for a spacer piece
	GapThreshold    float64 `json:"gap_threshold"`     // Gaps below this are not worth a spacer (mm)
}

// DefaultSettings returns settings for a common 256x256mm bed.
func DefaultSettings() PlanSettings {
	return PlanSettings{
		BedWidth:        256.0,
		BedDepth:        256.0,
		UnitSize:        42.0,
		Thickness:       5.0,
		SpacerMaxLength: 150.0,
		SpacerMaxAspect: 5.0,
		GapThreshold:    0.5,
	}
}

// Drawer represents one drawer opening to cover.
type Drawer struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Width     float64 `json:"width"`               // mm
	Depth     float64 `json:"depth"`               // mm
	Thickness float64 `json:"thickness,omitempty"` // Per-drawer override, 0 means use settings
}

func NewDrawer(label string, w, d float64) Drawer {
	return Drawer{
		ID:    uuid.New().String()[:8],
		Label: label,
		Width: w,
		Depth: d,
	}
}

// PlateSpec is the footprint of one baseplate in grid units.
type PlateSpec struct {
	UnitsX int `json:"units_x"`
	UnitsY int `json:"units_y"`
}

// WidthMM returns the plate width in mm for the given grid pitch.
func (p PlateSpec) WidthMM(unitSize float64) float64 {
	return float64(p.UnitsX) * unitSize
}

// DepthMM returns the plate depth in mm for the given grid pitch.
func (p PlateSpec) DepthMM(unitSize float64) float64 {
	return float64(p.UnitsY) * unitSize
}

// FillerSpec is one spacer piece. Width is the gap side, Depth the
// running length along the gap.
type FillerSpec struct {
	Width float64 `json:"width"` // mm
	Depth float64 `json:"depth"` // mm
}

// AspectRatio returns the long-side to short-side ratio of the piece.
func (f FillerSpec) AspectRatio() float64 {
	if f.Width <= 0 || f.Depth <= 0 {
		return 0
	}
	if f.Depth > f.Width {
		return f.Depth / f.Width
	}
	return f.Width / f.Depth
}

// Gap is the sub-unit residue left after tiling whole units across each
// drawer axis. Both values are in [0, unit size).
type Gap struct {
	X float64 `json:"x"` // mm
	Y float64 `json:"y"` // mm
}

// GridUnits is the whole-unit footprint of the drawer.
type GridUnits struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PieceKind identifies what a generated piece is.
type PieceKind string

const (
	PieceBaseplate PieceKind = "baseplate"
	PieceSpacerX   PieceKind = "spacer_x" // Fills the X gap, runs along the drawer depth
	PieceSpacerY   PieceKind = "spacer_y" // Fills the Y gap, runs along the drawer width
)

// Piece is one physical piece scheduled for output: a plate or a spacer
// with its final mm dimensions and deterministic file name.
type Piece struct {
	ID        string    `json:"id"`
	Kind      PieceKind `json:"kind"`
	Index     int       `json:"index"` // 1-based within its kind
	UnitsX    int       `json:"units_x,omitempty"`
	UnitsY    int       `json:"units_y,omitempty"`
	Width     float64   `json:"width"` // mm
	Depth     float64   `json:"depth"` // mm
	Thickness float64   `json:"thickness"`
	File      string    `json:"file"`
}
