package geometry

import (
	"errors"

	"github.com/gridfab/gridplate/internal/model"
)

var (
	// ErrInvalidPiece is returned when a piece has non-positive dimensions.
	ErrInvalidPiece = errors.New("piece dimensions must be positive")
	// ErrThicknessTooThin is returned when a plate is thinner than its socket rim.
	ErrThicknessTooThin = errors.New("plate thickness must exceed the socket base height")
)

// Builder materializes planned pieces as printable solids. Plates are
// requested in grid units, spacers in raw mm.
type Builder interface {
	BuildPlate(unitsX, unitsY int, thickness float64) (*Mesh, error)
	BuildSpacer(width, depth, thickness float64) (*Mesh, error)
}

// BoxBuilder is the built-in Builder. It models a plate as a floor slab
// with a raised wall grid forming one square socket per cell, and a
// spacer as a plain box. The stepped snap profile of a CAD-built plate
// is traded for geometry that composes from axis-aligned boxes.
type BoxBuilder struct {
	Grid model.GridConfig
}

func NewBoxBuilder(grid model.GridConfig) *BoxBuilder {
	return &BoxBuilder{Grid: grid}
}

func (b *BoxBuilder) BuildPlate(unitsX, unitsY int, thickness float64) (*Mesh, error) {
	if unitsX < 1 || unitsY < 1 || thickness <= 0 {
		return nil, ErrInvalidPiece
	}
	if thickness <= b.Grid.BaseHeight {
		return nil, ErrThicknessTooThin
	}

	unit := b.Grid.UnitSize
	width := float64(unitsX) * unit
	depth := float64(unitsY) * unit
	floorHeight := thickness - b.Grid.BaseHeight

	mesh := Box(width, depth, floorHeight)

	// Wall rails run along every cell boundary. Interior rails carry the
	// rim of both neighbouring cells, so the rail is twice the per-cell
	// wall plus the bin clearance; edge rails are clamped to the plate.
	rail := 2 * (b.Grid.WallInset + b.Grid.Tolerance)
	for i := 0; i <= unitsX; i++ {
		center := float64(i) * unit
		x0 := clamp(center-rail/2, 0, width)
		x1 := clamp(center+rail/2, 0, width)
		wall := Box(x1-x0, depth, b.Grid.BaseHeight)
		wall.Translate(x0, 0, floorHeight)
		mesh.Add(wall)
	}
	for j := 0; j <= unitsY; j++ {
		center := float64(j) * unit
		y0 := clamp(center-rail/2, 0, depth)
		y1 := clamp(center+rail/2, 0, depth)
		wall := Box(width, y1-y0, b.Grid.BaseHeight)
		wall.Translate(0, y0, floorHeight)
		mesh.Add(wall)
	}

	return mesh, nil
}

func (b *BoxBuilder) BuildSpacer(width, depth, thickness float64) (*Mesh, error) {
	if width <= 0 || depth <= 0 || thickness <= 0 {
		return nil, ErrInvalidPiece
	}
	return Box(width, depth, thickness), nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
