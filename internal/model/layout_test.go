package model

import (
	"math"
	"testing"
)

func gridLayout() *Layout {
	// 500x324 drawer on a 256x256 bed: 11x7 units, 2x2 plate grid with
	// the extra units in the first column and first row.
	return &Layout{
		Drawer:   Drawer{ID: "d1", Label: "demo", Width: 500, Depth: 324},
		Settings: DefaultSettings(),
		Strategy: "grid",
		Plates: []PlateSpec{
			{UnitsX: 6, UnitsY: 4},
			{UnitsX: 5, UnitsY: 4},
			{UnitsX: 6, UnitsY: 3},
			{UnitsX: 5, UnitsY: 3},
		},
		Units: GridUnits{X: 11, Y: 7},
		Gap:   Gap{X: 38, Y: 30},
		SpacersX: []FillerSpec{
			{Width: 38, Depth: 147},
			{Width: 38, Depth: 147},
		},
		SpacersY: []FillerSpec{
			{Width: 30, Depth: 125},
			{Width: 30, Depth: 125},
			{Width: 30, Depth: 125},
			{Width: 30, Depth: 125},
		},
	}
}

func TestPlacementsRowMajorCursor(t *testing.T) {
	placements := gridLayout().Placements()

	if len(placements) != 10 {
		t.Fatalf("expected 10 placements, got %d", len(placements))
	}

	expected := []struct {
		x, y float64
	}{
		{0, 0},       // 6x4 plate
		{252, 0},     // 5x4 plate
		{0, 168},     // 6x3 plate
		{252, 168},   // 5x3 plate
	}
	for i, want := range expected {
		got := placements[i]
		if got.Kind != PieceBaseplate {
			t.Fatalf("placement %d: expected baseplate, got %s", i, got.Kind)
		}
		if got.X != want.x || got.Y != want.y {
			t.Errorf("plate %d: expected position (%.0f, %.0f), got (%.0f, %.0f)",
				i+1, want.x, want.y, got.X, got.Y)
		}
	}
}

func TestPlacementsSpacerEdges(t *testing.T) {
	placements := gridLayout().Placements()

	// X spacers sit at the right edge (11 units = 462mm) stacked in Y.
	sx := placements[4]
	if sx.Kind != PieceSpacerX || sx.X != 462 || sx.Y != 0 {
		t.Errorf("first X spacer misplaced: %+v", sx)
	}
	sx2 := placements[5]
	if sx2.Y != 147 {
		t.Errorf("second X spacer should stack at y=147, got %.1f", sx2.Y)
	}

	// Y spacers sit at the back edge (7 units = 294mm) running along X,
	// so their long side becomes the placement width.
	sy := placements[6]
	if sy.Kind != PieceSpacerY || sy.Y != 294 || sy.X != 0 {
		t.Errorf("first Y spacer misplaced: %+v", sy)
	}
	if sy.Width != 125 || sy.Depth != 30 {
		t.Errorf("Y spacer should be rotated to run along X: %+v", sy)
	}
}

func TestCoverage(t *testing.T) {
	l := gridLayout()

	plateArea := l.PlateArea()
	wantPlates := 11.0 * 7.0 * 42.0 * 42.0
	if math.Abs(plateArea-wantPlates) > 1e-6 {
		t.Errorf("expected plate area %.1f, got %.1f", wantPlates, plateArea)
	}

	if l.CoveredArea() <= plateArea {
		t.Error("covered area should include spacers")
	}
	if l.Coverage() <= 0 || l.Coverage() > 100 {
		t.Errorf("coverage out of range: %.2f", l.Coverage())
	}
	if l.PieceCount() != 10 {
		t.Errorf("expected 10 pieces, got %d", l.PieceCount())
	}
}

func TestFillerSpecAspectRatio(t *testing.T) {
	cases := []struct {
		spec FillerSpec
		want float64
	}{
		{FillerSpec{Width: 30, Depth: 150}, 5},
		{FillerSpec{Width: 150, Depth: 30}, 5},
		{FillerSpec{Width: 40, Depth: 40}, 1},
		{FillerSpec{Width: 0, Depth: 40}, 0},
	}
	for _, tc := range cases {
		if got := tc.spec.AspectRatio(); got != tc.want {
			t.Errorf("AspectRatio(%+v) = %.2f, want %.2f", tc.spec, got, tc.want)
		}
	}
}

func TestNewDrawerAssignsID(t *testing.T) {
	a := NewDrawer("kitchen", 500, 300)
	b := NewDrawer("kitchen", 500, 300)

	if a.ID == "" || len(a.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", a.ID)
	}
	if a.ID == b.ID {
		t.Error("two drawers should not share an ID")
	}
	if a.Thickness != 0 {
		t.Error("thickness override should default to zero")
	}
}

func TestPlateSpecDimensions(t *testing.T) {
	p := PlateSpec{UnitsX: 6, UnitsY: 4}
	if p.WidthMM(42) != 252 || p.DepthMM(42) != 168 {
		t.Errorf("unexpected mm dimensions: %.1f x %.1f", p.WidthMM(42), p.DepthMM(42))
	}
}
