package geometry

import (
	"math"
	"testing"

	"github.com/gridfab/gridplate/internal/model"
)

func TestBoxTriangleCountAndBounds(t *testing.T) {
	box := Box(100, 50, 5)

	if len(box.Triangles) != 12 {
		t.Fatalf("expected 12 triangles, got %d", len(box.Triangles))
	}

	min, max := box.Bounds()
	if min != (Vec3{}) {
		t.Errorf("expected min corner at origin, got %+v", min)
	}
	if max != (Vec3{X: 100, Y: 50, Z: 5}) {
		t.Errorf("unexpected max corner: %+v", max)
	}
}

func TestMeshTranslate(t *testing.T) {
	box := Box(10, 10, 10)
	box.Translate(5, -3, 2)

	min, max := box.Bounds()
	if min != (Vec3{X: 5, Y: -3, Z: 2}) {
		t.Errorf("unexpected min after translate: %+v", min)
	}
	if max != (Vec3{X: 15, Y: 7, Z: 12}) {
		t.Errorf("unexpected max after translate: %+v", max)
	}
}

func TestMeshAdd(t *testing.T) {
	a := Box(10, 10, 10)
	b := Box(5, 5, 5)
	a.Add(b)

	if len(a.Triangles) != 24 {
		t.Errorf("expected 24 triangles after add, got %d", len(a.Triangles))
	}
}

func TestBuildPlateDimensions(t *testing.T) {
	b := NewBoxBuilder(model.DefaultGridConfig())

	mesh, err := b.BuildPlate(4, 2, 5.0)
	if err != nil {
		t.Fatalf("BuildPlate failed: %v", err)
	}
	if len(mesh.Triangles) == 0 {
		t.Fatal("expected a non-empty mesh")
	}

	min, max := mesh.Bounds()
	if min.X != 0 || min.Y != 0 || min.Z != 0 {
		t.Errorf("plate should sit at the origin, min %+v", min)
	}
	if math.Abs(max.X-4*42.0) > 1e-9 || math.Abs(max.Y-2*42.0) > 1e-9 {
		t.Errorf("unexpected footprint: %.1f x %.1f", max.X, max.Y)
	}
	if math.Abs(max.Z-5.0) > 1e-9 {
		t.Errorf("expected plate height 5.0, got %.2f", max.Z)
	}
}

func TestBuildPlateInvalid(t *testing.T) {
	b := NewBoxBuilder(model.DefaultGridConfig())

	if _, err := b.BuildPlate(0, 2, 5.0); err != ErrInvalidPiece {
		t.Errorf("expected ErrInvalidPiece for zero units, got %v", err)
	}
	if _, err := b.BuildPlate(2, 2, 0); err != ErrInvalidPiece {
		t.Errorf("expected ErrInvalidPiece for zero thickness, got %v", err)
	}
	// Thinner than the socket rim leaves no floor to print.
	if _, err := b.BuildPlate(2, 2, 4.0); err != ErrThicknessTooThin {
		t.Errorf("expected ErrThicknessTooThin, got %v", err)
	}
}

func TestBuildSpacer(t *testing.T) {
	b := NewBoxBuilder(model.DefaultGridConfig())

	mesh, err := b.BuildSpacer(32, 130, 5)
	if err != nil {
		t.Fatalf("BuildSpacer failed: %v", err)
	}
	if len(mesh.Triangles) != 12 {
		t.Errorf("spacer should be a plain box, got %d triangles", len(mesh.Triangles))
	}

	_, max := mesh.Bounds()
	if max != (Vec3{X: 32, Y: 130, Z: 5}) {
		t.Errorf("unexpected spacer bounds: %+v", max)
	}

	if _, err := b.BuildSpacer(0, 130, 5); err != ErrInvalidPiece {
		t.Errorf("expected ErrInvalidPiece, got %v", err)
	}
}
