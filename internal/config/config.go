// Package config resolves runtime configuration for the generator from
// multiple sources. Precedence: CLI flags > YAML config > environment
// variables > defaults. The resolved values are handed to the planner as
// an explicit PlanSettings value; nothing here is ambient state.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gridfab/gridplate/internal/model"
)

const defaultOutputDir = "outputs/drawer"

// Config aggregates runtime configuration resolved from multiple sources.
type Config struct {
	BedWidth        float64 `yaml:"bed_width"`
	BedDepth        float64 `yaml:"bed_depth"`
	UnitSize        float64 `yaml:"unit_size"`
	Thickness       float64 `yaml:"thickness"`
	SpacerMaxLength float64 `yaml:"spacer_max_length"`
	SpacerMaxAspect float64 `yaml:"spacer_max_aspect"`
	GapThreshold    float64 `yaml:"gap_threshold"`
	OutputDir       string  `yaml:"output_dir"`
}

// yamlConfig represents the YAML configuration file structure. Zero
// values mean "not set" so absent keys fall through to lower-precedence
// sources.
type yamlConfig struct {
	BedWidth        float64 `yaml:"bed_width"`
	BedDepth        float64 `yaml:"bed_depth"`
	UnitSize        float64 `yaml:"unit_size"`
	Thickness       float64 `yaml:"thickness"`
	SpacerMaxLength float64 `yaml:"spacer_max_length"`
	SpacerMaxAspect float64 `yaml:"spacer_max_aspect"`
	GapThreshold    float64 `yaml:"gap_threshold"`
	OutputDir       string  `yaml:"output_dir"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile string
	BedWidth   *float64
	BedDepth   *float64
	UnitSize   *float64
	Thickness  *float64
	OutputDir  *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > environment variables > defaults.
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config with default values.
func defaultConfig() Config {
	s := model.DefaultSettings()
	return Config{
		BedWidth:        s.BedWidth,
		BedDepth:        s.BedDepth,
		UnitSize:        s.UnitSize,
		Thickness:       s.Thickness,
		SpacerMaxLength: s.SpacerMaxLength,
		SpacerMaxAspect: s.SpacerMaxAspect,
		GapThreshold:    s.GapThreshold,
		OutputDir:       defaultOutputDir,
	}
}

// PlanSettings converts the resolved configuration into the value the
// planner consumes.
func (c Config) PlanSettings() model.PlanSettings {
	return model.PlanSettings{
		BedWidth:        c.BedWidth,
		BedDepth:        c.BedDepth,
		UnitSize:        c.UnitSize,
		Thickness:       c.Thickness,
		SpacerMaxLength: c.SpacerMaxLength,
		SpacerMaxAspect: c.SpacerMaxAspect,
		GapThreshold:    c.GapThreshold,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.BedWidth > 0 {
		cfg.BedWidth = yamlCfg.BedWidth
	}
	if yamlCfg.BedDepth > 0 {
		cfg.BedDepth = yamlCfg.BedDepth
	}
	if yamlCfg.UnitSize > 0 {
		cfg.UnitSize = yamlCfg.UnitSize
	}
	if yamlCfg.Thickness > 0 {
		cfg.Thickness = yamlCfg.Thickness
	}
	if yamlCfg.SpacerMaxLength > 0 {
		cfg.SpacerMaxLength = yamlCfg.SpacerMaxLength
	}
	if yamlCfg.SpacerMaxAspect > 0 {
		cfg.SpacerMaxAspect = yamlCfg.SpacerMaxAspect
	}
	if yamlCfg.GapThreshold > 0 {
		cfg.GapThreshold = yamlCfg.GapThreshold
	}
	if yamlCfg.OutputDir != "" {
		cfg.OutputDir = yamlCfg.OutputDir
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	applyEnvFloat("GRIDPLATE_BED_WIDTH", &cfg.BedWidth)
	applyEnvFloat("GRIDPLATE_BED_DEPTH", &cfg.BedDepth)
	applyEnvFloat("GRIDPLATE_UNIT_SIZE", &cfg.UnitSize)
	applyEnvFloat("GRIDPLATE_THICKNESS", &cfg.Thickness)

	if dir := strings.TrimSpace(os.Getenv("GRIDPLATE_OUTPUT_DIR")); dir != "" {
		cfg.OutputDir = dir
	}
}

func applyEnvFloat(name string, target *float64) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return
	}
	if value, err := strconv.ParseFloat(raw, 64); err == nil && value > 0 {
		*target = value
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.BedWidth != nil && *overrides.BedWidth > 0 {
		cfg.BedWidth = *overrides.BedWidth
	}
	if overrides.BedDepth != nil && *overrides.BedDepth > 0 {
		cfg.BedDepth = *overrides.BedDepth
	}
	if overrides.UnitSize != nil && *overrides.UnitSize > 0 {
		cfg.UnitSize = *overrides.UnitSize
	}
	if overrides.Thickness != nil && *overrides.Thickness > 0 {
		cfg.Thickness = *overrides.Thickness
	}
	if overrides.OutputDir != nil && *overrides.OutputDir != "" {
		cfg.OutputDir = *overrides.OutputDir
	}
}

// validateConfig validates the final configuration.
func validateConfig(cfg Config) error {
	if cfg.BedWidth <= 0 || cfg.BedDepth <= 0 {
		return fmt.Errorf("bed dimensions must be positive")
	}
	if cfg.UnitSize <= 0 {
		return fmt.Errorf("unit size must be positive")
	}
	if cfg.Thickness <= 0 {
		return fmt.Errorf("thickness must be positive")
	}
	if cfg.SpacerMaxLength <= 0 || cfg.SpacerMaxAspect <= 0 {
		return fmt.Errorf("spacer constraints must be positive")
	}
	if cfg.GapThreshold < 0 {
		return fmt.Errorf("gap threshold must not be negative")
	}
	if cfg.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return nil
}
