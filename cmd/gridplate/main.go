// gridplate — drawer baseplate planner
//
// Tiles a drawer opening with grid baseplates sized to the printer bed,
// fills the leftover gaps with spacer strips, and writes one STL per
// piece plus optional layout documents.
//
// Build:
//   go build -o gridplate ./cmd/gridplate
//
// Examples:
//   gridplate 500 300
//   gridplate 500 300 --bed-width 220 --bed-depth 220 --pdf --labels
//   gridplate --batch drawers.csv --output outputs/workshop
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/gridfab/gridplate/internal/config"
	"github.com/gridfab/gridplate/internal/generator"
	"github.com/gridfab/gridplate/internal/geometry"
	"github.com/gridfab/gridplate/internal/importer"
	"github.com/gridfab/gridplate/internal/logging"
	"github.com/gridfab/gridplate/internal/model"
)

func main() {
	app := kingpin.New("gridplate", "Drawer baseplate planner - tiles a drawer with printable grid baseplates and gap spacers")
	width := app.Arg("width", "Drawer width in mm").Float64()
	depth := app.Arg("depth", "Drawer depth in mm").Float64()
	configFile := app.Flag("config", "Path to YAML configuration file").String()
	bedWidth := app.Flag("bed-width", "Printer bed width in mm").Default("-1").Float64()
	bedDepth := app.Flag("bed-depth", "Printer bed depth in mm").Default("-1").Float64()
	unitSize := app.Flag("unit-size", "Grid pitch in mm").Default("-1").Float64()
	thickness := app.Flag("thickness", "Plate thickness in mm").Default("-1").Float64()
	output := app.Flag("output", "Output directory").String()
	batch := app.Flag("batch", "CSV or XLSX file listing drawers to plan").String()
	pdfOut := app.Flag("pdf", "Write a layout diagram PDF per drawer").Bool()
	dxfOut := app.Flag("dxf", "Write a layout outline DXF per drawer").Bool()
	xlsxOut := app.Flag("xlsx", "Write a piece schedule workbook per drawer").Bool()
	labelsOut := app.Flag("labels", "Write QR piece labels per drawer").Bool()
	noManifest := app.Flag("no-manifest", "Skip the run manifest JSON").Bool()
	dryRun := app.Flag("dry-run", "Plan and log only, write no files").Bool()
	verbose := app.Flag("verbose", "Verbose console logging").Short('v').Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	if *batch == "" && (*width <= 0 || *depth <= 0) {
		app.FatalUsage("provide drawer width and depth in mm, or --batch with a drawer list")
	}

	overrides := &config.CLIOverrides{ConfigFile: *configFile}
	if *bedWidth > 0 {
		overrides.BedWidth = bedWidth
	}
	if *bedDepth > 0 {
		overrides.BedDepth = bedDepth
	}
	if *unitSize > 0 {
		overrides.UnitSize = unitSize
	}
	if *thickness > 0 {
		overrides.Thickness = thickness
	}
	if *output != "" {
		overrides.OutputDir = output
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		app.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(*verbose)
	if err != nil {
		app.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	drawers, err := resolveDrawers(*batch, *width, *depth, logger)
	if err != nil {
		logger.Fatal("failed to resolve drawers", zap.Error(err))
	}

	builder := geometry.NewBoxBuilder(gridConfigFor(cfg))
	gen := generator.New(cfg.PlanSettings(), builder, logger)

	opts := generator.Options{
		OutputDir: cfg.OutputDir,
		PDF:       *pdfOut,
		DXF:       *dxfOut,
		Excel:     *xlsxOut,
		Labels:    *labelsOut,
		Manifest:  !*noManifest,
		DryRun:    *dryRun,
	}

	reports, err := gen.GenerateBatch(drawers, opts)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}

	var pieces int
	for _, r := range reports {
		pieces += len(r.Pieces)
	}
	logger.Info("all drawers done",
		zap.Int("drawers", len(reports)),
		zap.Int("pieces", pieces),
		zap.String("output", cfg.OutputDir))
}

// resolveDrawers builds the drawer list from either the batch file or
// the positional width/depth arguments.
func resolveDrawers(batch string, width, depth float64, logger *zap.Logger) ([]model.Drawer, error) {
	if batch == "" {
		label := fmt.Sprintf("drawer_%dx%d", int(width), int(depth))
		return []model.Drawer{model.NewDrawer(label, width, depth)}, nil
	}

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(batch)) {
	case ".csv":
		result = importer.ImportCSV(batch)
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(batch)
	default:
		return nil, fmt.Errorf("unsupported batch file type %q (want .csv or .xlsx)", filepath.Ext(batch))
	}

	for _, w := range result.Warnings {
		logger.Warn("batch import", zap.String("warning", w))
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("batch import: %s", strings.Join(result.Errors, "; "))
	}
	return result.Drawers, nil
}

// gridConfigFor derives the builder's grid constants from the resolved
// configuration, keeping a non-standard pitch consistent between the
// planner and the meshes.
func gridConfigFor(cfg config.Config) model.GridConfig {
	grid := model.DefaultGridConfig()
	grid.UnitSize = cfg.UnitSize
	return grid
}
