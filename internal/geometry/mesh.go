// Package geometry materializes planned pieces as triangle-soup solids
// ready for mesh export. The planner never touches this package; it only
// hands unit counts and mm dimensions across the Builder boundary.
package geometry

// Vec3 is a point or direction in mm.
type Vec3 struct {
	X, Y, Z float64
}

// Triangle is one mesh facet with an outward-facing normal.
type Triangle struct {
	Normal     Vec3
	V1, V2, V3 Vec3
}

// Mesh is a solid represented as a triangle soup. Solids built from
// overlapping axis-aligned boxes are accepted by every mainstream
// slicer, which unions them during slicing.
type Mesh struct {
	Triangles []Triangle
}

// Add appends all triangles of other to m.
func (m *Mesh) Add(other *Mesh) {
	m.Triangles = append(m.Triangles, other.Triangles...)
}

// Translate shifts the whole mesh by dx, dy, dz.
func (m *Mesh) Translate(dx, dy, dz float64) {
	for i := range m.Triangles {
		t := &m.Triangles[i]
		t.V1 = translate(t.V1, dx, dy, dz)
		t.V2 = translate(t.V2, dx, dy, dz)
		t.V3 = translate(t.V3, dx, dy, dz)
	}
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (min, max Vec3) {
	if len(m.Triangles) == 0 {
		return Vec3{}, Vec3{}
	}
	min = m.Triangles[0].V1
	max = m.Triangles[0].V1
	for _, t := range m.Triangles {
		for _, v := range []Vec3{t.V1, t.V2, t.V3} {
			min = vecMin(min, v)
			max = vecMax(max, v)
		}
	}
	return min, max
}

func translate(v Vec3, dx, dy, dz float64) Vec3 {
	return Vec3{X: v.X + dx, Y: v.Y + dy, Z: v.Z + dz}
}

func vecMin(a, b Vec3) Vec3 {
	if b.X < a.X {
		a.X = b.X
	}
	if b.Y < a.Y {
		a.Y = b.Y
	}
	if b.Z < a.Z {
		a.Z = b.Z
	}
	return a
}

func vecMax(a, b Vec3) Vec3 {
	if b.X > a.X {
		a.X = b.X
	}
	if b.Y > a.Y {
		a.Y = b.Y
	}
	if b.Z > a.Z {
		a.Z = b.Z
	}
	return a
}

// Box returns a w x d x h box with its minimum corner at the origin,
// built from 12 triangles with outward normals.
func Box(w, d, h float64) *Mesh {
	// Vertex numbering: bit 0 = +X, bit 1 = +Y, bit 2 = +Z.
	v := [8]Vec3{
		{0, 0, 0}, {w, 0, 0}, {0, d, 0}, {w, d, 0},
		{0, 0, h}, {w, 0, h}, {0, d, h}, {w, d, h},
	}
	m := &Mesh{Triangles: make([]Triangle, 0, 12)}
	quad := func(n Vec3, a, b, c, dd int) {
		m.Triangles = append(m.Triangles,
			Triangle{Normal: n, V1: v[a], V2: v[b], V3: v[c]},
			Triangle{Normal: n, V1: v[a], V2: v[c], V3: v[dd]},
		)
	}
	quad(Vec3{Z: -1}, 0, 2, 3, 1) // bottom
	quad(Vec3{Z: 1}, 4, 5, 7, 6)  // top
	quad(Vec3{Y: -1}, 0, 1, 5, 4) // front
	quad(Vec3{Y: 1}, 2, 6, 7, 3)  // back
	quad(Vec3{X: -1}, 0, 4, 6, 2) // left
	quad(Vec3{X: 1}, 1, 3, 7, 5)  // right
	return m
}
