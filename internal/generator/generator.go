// Package generator is the orchestration layer: it plans a drawer's
// plate tiling, fills significant gaps with spacers, materializes every
// piece through the geometry builder, and writes the output files.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gridfab/gridplate/internal/engine"
	"github.com/gridfab/gridplate/internal/export"
	"github.com/gridfab/gridplate/internal/geometry"
	"github.com/gridfab/gridplate/internal/model"
)

// Options selects the outputs of one generation run.
type Options struct {
	OutputDir string
	PDF       bool
	DXF       bool
	Excel     bool
	Labels    bool
	Manifest  bool
	DryRun    bool // Plan and log only, write nothing
}

// Report summarizes one completed run.
type Report struct {
	Layout    *model.Layout
	Pieces    []model.Piece
	Dir       string
	Documents []string
}

// Generator plans drawers and writes their printable pieces.
type Generator struct {
	settings model.PlanSettings
	planner  *engine.Planner
	builder  geometry.Builder
	logger   *zap.Logger
}

func New(settings model.PlanSettings, builder geometry.Builder, logger *zap.Logger) *Generator {
	return &Generator{
		settings: settings,
		planner:  engine.New(settings),
		builder:  builder,
		logger:   logger,
	}
}

// Generate runs the full pipeline for one drawer. Any builder or export
// failure aborts the run; no partially generated piece is silently
// skipped.
func (g *Generator) Generate(drawer model.Drawer, opts Options) (*Report, error) {
	layout, err := g.planner.Plan(drawer)
	if err != nil {
		return nil, fmt.Errorf("plan drawer %q: %w", drawer.Label, err)
	}

	g.logger.Info("planned drawer",
		zap.String("drawer", drawer.Label),
		zap.Float64("width", drawer.Width),
		zap.Float64("depth", drawer.Depth),
		zap.String("strategy", layout.Strategy),
		zap.Int("units_x", layout.Units.X),
		zap.Int("units_y", layout.Units.Y),
		zap.Int("plates", len(layout.Plates)),
		zap.Float64("gap_x", layout.Gap.X),
		zap.Float64("gap_y", layout.Gap.Y),
	)

	if err := g.fillGaps(layout); err != nil {
		return nil, err
	}

	thickness := drawer.Thickness
	if thickness <= 0 {
		thickness = g.settings.Thickness
	}

	pieces := schedulePieces(layout, thickness)
	report := &Report{Layout: layout, Pieces: pieces}

	if opts.DryRun {
		g.logger.Info("dry run, skipping file generation",
			zap.String("drawer", drawer.Label),
			zap.Int("pieces", len(pieces)))
		return report, nil
	}

	dir := filepath.Join(opts.OutputDir, fmt.Sprintf("drawer_%d_%d", int(drawer.Width), int(drawer.Depth)))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	report.Dir = dir

	if err := g.writePieces(dir, pieces, thickness); err != nil {
		return nil, err
	}

	docs, err := g.writeDocuments(dir, drawer, layout, pieces, opts)
	if err != nil {
		return nil, err
	}
	report.Documents = docs

	g.logger.Info("generation complete",
		zap.String("drawer", drawer.Label),
		zap.String("dir", dir),
		zap.Int("plates", len(layout.Plates)),
		zap.Int("spacers", len(layout.SpacersX)+len(layout.SpacersY)),
		zap.Strings("documents", docs),
	)
	return report, nil
}

// GenerateBatch runs every drawer in sequence, stopping at the first
// failure so a broken run never produces a misleading partial set.
func (g *Generator) GenerateBatch(drawers []model.Drawer, opts Options) ([]*Report, error) {
	reports := make([]*Report, 0, len(drawers))
	for _, d := range drawers {
		report, err := g.Generate(d, opts)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// fillGaps runs the gap filler for each axis whose residue is worth a
// spacer. The X gap runs along the plated depth; the Y strip runs the
// full drawer width so it also caps the corner left by the X gap.
func (g *Generator) fillGaps(layout *model.Layout) error {
	s := g.settings

	if layout.Gap.X >= s.GapThreshold {
		length := float64(layout.Units.Y) * s.UnitSize
		spacers, err := engine.Fill(layout.Gap.X, length, s.SpacerMaxLength, s.SpacerMaxAspect)
		if err != nil {
			return fmt.Errorf("fill X gap: %w", err)
		}
		layout.SpacersX = spacers
		g.logger.Info("filling X gap",
			zap.Float64("gap", layout.Gap.X),
			zap.Float64("length", length),
			zap.Int("pieces", len(spacers)))
	} else if layout.Gap.X > 0 {
		g.logger.Debug("X gap below threshold, skipping",
			zap.Float64("gap", layout.Gap.X),
			zap.Float64("threshold", s.GapThreshold))
	}

	if layout.Gap.Y >= s.GapThreshold {
		length := layout.Drawer.Width
		spacers, err := engine.Fill(layout.Gap.Y, length, s.SpacerMaxLength, s.SpacerMaxAspect)
		if err != nil {
			return fmt.Errorf("fill Y gap: %w", err)
		}
		layout.SpacersY = spacers
		g.logger.Info("filling Y gap",
			zap.Float64("gap", layout.Gap.Y),
			zap.Float64("length", length),
			zap.Int("pieces", len(spacers)))
	} else if layout.Gap.Y > 0 {
		g.logger.Debug("Y gap below threshold, skipping",
			zap.Float64("gap", layout.Gap.Y),
			zap.Float64("threshold", s.GapThreshold))
	}

	return nil
}

// schedulePieces assigns every piece its final mm dimensions and
// deterministic file name. Y spacers are rotated to run along the drawer
// width, so their file name and footprint swap the gap and length sides.
func schedulePieces(layout *model.Layout, thickness float64) []model.Piece {
	unit := layout.Settings.UnitSize
	pieces := make([]model.Piece, 0, layout.PieceCount())

	for i, plate := range layout.Plates {
		pieces = append(pieces, model.Piece{
			ID:        uuid.New().String()[:8],
			Kind:      model.PieceBaseplate,
			Index:     i + 1,
			UnitsX:    plate.UnitsX,
			UnitsY:    plate.UnitsY,
			Width:     plate.WidthMM(unit),
			Depth:     plate.DepthMM(unit),
			Thickness: thickness,
			File:      fmt.Sprintf("baseplate_%d_%dx%d.stl", i+1, plate.UnitsX, plate.UnitsY),
		})
	}
	for i, s := range layout.SpacersX {
		pieces = append(pieces, model.Piece{
			ID:        uuid.New().String()[:8],
			Kind:      model.PieceSpacerX,
			Index:     i + 1,
			Width:     s.Width,
			Depth:     s.Depth,
			Thickness: thickness,
			File:      fmt.Sprintf("spacer_x_%d_%.1fx%.1fmm.stl", i+1, s.Width, s.Depth),
		})
	}
	for i, s := range layout.SpacersY {
		pieces = append(pieces, model.Piece{
			ID:        uuid.New().String()[:8],
			Kind:      model.PieceSpacerY,
			Index:     i + 1,
			Width:     s.Depth,
			Depth:     s.Width,
			Thickness: thickness,
			File:      fmt.Sprintf("spacer_y_%d_%.1fx%.1fmm.stl", i+1, s.Depth, s.Width),
		})
	}
	return pieces
}

// writePieces materializes and writes one STL per scheduled piece.
func (g *Generator) writePieces(dir string, pieces []model.Piece, thickness float64) error {
	for _, piece := range pieces {
		var mesh *geometry.Mesh
		var err error
		if piece.Kind == model.PieceBaseplate {
			mesh, err = g.builder.BuildPlate(piece.UnitsX, piece.UnitsY, thickness)
		} else {
			mesh, err = g.builder.BuildSpacer(piece.Width, piece.Depth, thickness)
		}
		if err != nil {
			return fmt.Errorf("build %s %d: %w", piece.Kind, piece.Index, err)
		}

		path := filepath.Join(dir, piece.File)
		if err := export.WriteSTL(path, mesh); err != nil {
			return fmt.Errorf("export %s %d: %w", piece.Kind, piece.Index, err)
		}
		g.logger.Debug("wrote piece",
			zap.String("kind", string(piece.Kind)),
			zap.Int("index", piece.Index),
			zap.String("path", path))
	}
	return nil
}

// writeDocuments writes the optional run documents selected in opts.
func (g *Generator) writeDocuments(dir string, drawer model.Drawer, layout *model.Layout, pieces []model.Piece, opts Options) ([]string, error) {
	var docs []string

	if opts.PDF {
		path := filepath.Join(dir, "layout.pdf")
		if err := export.ExportPDF(path, layout, pieces); err != nil {
			return nil, fmt.Errorf("export layout PDF: %w", err)
		}
		docs = append(docs, path)
	}
	if opts.DXF {
		path := filepath.Join(dir, "layout.dxf")
		if err := export.ExportDXF(path, layout); err != nil {
			return nil, fmt.Errorf("export layout DXF: %w", err)
		}
		docs = append(docs, path)
	}
	if opts.Excel {
		path := filepath.Join(dir, "pieces.xlsx")
		if err := export.ExportExcel(path, layout, pieces); err != nil {
			return nil, fmt.Errorf("export piece schedule: %w", err)
		}
		docs = append(docs, path)
	}
	if opts.Labels {
		path := filepath.Join(dir, "labels.pdf")
		if err := export.ExportLabels(path, drawer, pieces); err != nil {
			return nil, fmt.Errorf("export labels: %w", err)
		}
		docs = append(docs, path)
	}
	if opts.Manifest {
		path := filepath.Join(dir, "manifest.json")
		manifest := export.Manifest{
			RunID:     uuid.New().String(),
			CreatedAt: time.Now().UTC(),
			Layout:    layout,
			Pieces:    pieces,
		}
		if err := export.WriteManifest(path, manifest); err != nil {
			return nil, fmt.Errorf("write manifest: %w", err)
		}
		docs = append(docs, path)
	}

	return docs, nil
}
