// Package export writes the planner's output to files: one binary STL
// per piece plus optional layout documents (PDF diagram, DXF outline,
// piece schedule workbook, QR labels, run manifest).
package export

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/gridfab/gridplate/internal/geometry"
)

// WriteSTL serializes a mesh as binary STL: an 80-byte header, a uint32
// triangle count, and one 50-byte little-endian record per facet.
func WriteSTL(path string, mesh *geometry.Mesh) error {
	if mesh == nil || len(mesh.Triangles) == 0 {
		return fmt.Errorf("no triangles to write")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create STL file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	var header [80]byte
	copy(header[:], "gridplate binary STL")
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write STL header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(len(mesh.Triangles))); err != nil {
		return fmt.Errorf("write STL triangle count: %w", err)
	}

	for _, t := range mesh.Triangles {
		record := [12]float32{
			float32(t.Normal.X), float32(t.Normal.Y), float32(t.Normal.Z),
			float32(t.V1.X), float32(t.V1.Y), float32(t.V1.Z),
			float32(t.V2.X), float32(t.V2.Y), float32(t.V2.Z),
			float32(t.V3.X), float32(t.V3.Y), float32(t.V3.Z),
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("write STL facet: %w", err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("write STL attribute count: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush STL file: %w", err)
	}
	return nil
}
