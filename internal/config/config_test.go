package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BedWidth != 256 || cfg.BedDepth != 256 {
		t.Errorf("unexpected default bed: %.0f x %.0f", cfg.BedWidth, cfg.BedDepth)
	}
	if cfg.UnitSize != 42 {
		t.Errorf("unexpected default unit size: %.1f", cfg.UnitSize)
	}
	if cfg.Thickness != 5 {
		t.Errorf("unexpected default thickness: %.1f", cfg.Thickness)
	}
	if cfg.OutputDir == "" {
		t.Error("default output directory must not be empty")
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "bed_width: 220\nbed_depth: 220\nthickness: 6.5\noutput_dir: out/test\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BedWidth != 220 || cfg.BedDepth != 220 {
		t.Errorf("YAML bed size not applied: %.0f x %.0f", cfg.BedWidth, cfg.BedDepth)
	}
	if cfg.Thickness != 6.5 {
		t.Errorf("YAML thickness not applied: %.1f", cfg.Thickness)
	}
	if cfg.OutputDir != "out/test" {
		t.Errorf("YAML output dir not applied: %q", cfg.OutputDir)
	}
	// Keys absent from the file keep their defaults.
	if cfg.UnitSize != 42 {
		t.Errorf("unit size should stay default, got %.1f", cfg.UnitSize)
	}
}

func TestLoadYAMLOverridesEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("bed_width: 220\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("GRIDPLATE_BED_WIDTH", "300")
	t.Setenv("GRIDPLATE_OUTPUT_DIR", "env/out")

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BedWidth != 220 {
		t.Errorf("YAML should override env, got %.0f", cfg.BedWidth)
	}
	// Keys the file does not set still come from the environment.
	if cfg.OutputDir != "env/out" {
		t.Errorf("env output dir not applied: %q", cfg.OutputDir)
	}
}

func TestLoadCLIOverridesEverything(t *testing.T) {
	t.Setenv("GRIDPLATE_BED_WIDTH", "300")

	bedWidth := 180.0
	outputDir := "cli/out"
	cfg, err := Load(&CLIOverrides{BedWidth: &bedWidth, OutputDir: &outputDir})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.BedWidth != 180 {
		t.Errorf("CLI flag should win, got %.0f", cfg.BedWidth)
	}
	if cfg.OutputDir != "cli/out" {
		t.Errorf("CLI output dir not applied: %q", cfg.OutputDir)
	}
}

func TestLoadIgnoresInvalidEnv(t *testing.T) {
	t.Setenv("GRIDPLATE_UNIT_SIZE", "not-a-number")
	t.Setenv("GRIDPLATE_THICKNESS", "-2")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.UnitSize != 42 || cfg.Thickness != 5 {
		t.Errorf("invalid env values must be ignored: unit %.1f thickness %.1f", cfg.UnitSize, cfg.Thickness)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadRejectsInvalidYAMLValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: ''\nbed_width: 0\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// Zero values in YAML fall through to defaults rather than failing.
	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.BedWidth != 256 {
		t.Errorf("zero YAML bed width should keep default, got %.0f", cfg.BedWidth)
	}
}

func TestPlanSettingsConversion(t *testing.T) {
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s := cfg.PlanSettings()
	if s.BedWidth != cfg.BedWidth || s.UnitSize != cfg.UnitSize || s.GapThreshold != cfg.GapThreshold {
		t.Errorf("PlanSettings does not mirror config: %+v vs %+v", s, cfg)
	}
}
