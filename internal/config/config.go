// Package config loads optional YAML defaults for the CLI. Values here sit
// below command-line flags in precedence: flag > config file > built-in.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	pdf2img "github.com/alnah/go-pdf2img"
	"github.com/alnah/go-pdf2img/internal/fileutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrConfigTooLarge = errors.New("config file exceeds maximum size")
)

// MaxConfigSize caps config input to prevent memory exhaustion.
const MaxConfigSize = 1 << 20

// Config holds all configuration for a conversion run.
type Config struct {
	Output    OutputConfig  `yaml:"output"`
	Render    RenderConfig  `yaml:"render"`
	Archive   ArchiveConfig `yaml:"archive"`
	Overwrite bool          `yaml:"overwrite"` // replace existing per-document output directories
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // output root; each document gets a subdirectory inside
}

// RenderConfig defines page rendering and encoding options.
type RenderConfig struct {
	Zoom     float64 `yaml:"zoom"`     // render scale (1.0 = native resolution)
	Quality  int     `yaml:"quality"`  // JPEG quality, 30-95
	MaxWidth int     `yaml:"maxWidth"` // resize bound in pixels; 0 disables
	Prefix   string  `yaml:"prefix"`   // output image filename prefix
}

// ArchiveConfig defines per-document archiving options.
type ArchiveConfig struct {
	Enabled bool `yaml:"enabled"` // create one ZIP per document
}

// DefaultConfig returns configuration with built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{Dir: pdf2img.DefaultOutputDir},
		Render: RenderConfig{
			Zoom:     pdf2img.DefaultZoom,
			Quality:  pdf2img.DefaultQuality,
			MaxWidth: pdf2img.DefaultMaxWidth,
			Prefix:   pdf2img.DefaultPrefix,
		},
	}
}

// LoadConfig reads a YAML config file. Fields absent from the file keep
// their built-in defaults; unknown fields are rejected.
func LoadConfig(path string) (*Config, error) {
	if !fileutil.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied config path
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if len(data) > MaxConfigSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrConfigTooLarge, len(data), MaxConfigSize)
	}

	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}
