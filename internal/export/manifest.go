package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gridfab/gridplate/internal/model"
)

// Manifest records everything about one generation run: the inputs, the
// planned layout, and the files produced. It is written next to the STL
// files so a run can be audited or re-printed later.
type Manifest struct {
	RunID     string        `json:"run_id"`
	CreatedAt time.Time     `json:"created_at"`
	Layout    *model.Layout `json:"layout"`
	Pieces    []model.Piece `json:"pieces"`
}

// WriteManifest persists the manifest as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	return m, nil
}
