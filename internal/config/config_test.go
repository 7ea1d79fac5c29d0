package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	pdf2img "github.com/alnah/go-pdf2img"
	"github.com/alnah/go-pdf2img/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pdf2img.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()

	if cfg.Output.Dir != pdf2img.DefaultOutputDir {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, pdf2img.DefaultOutputDir)
	}
	if cfg.Render.Zoom != pdf2img.DefaultZoom {
		t.Errorf("Render.Zoom = %g, want %g", cfg.Render.Zoom, pdf2img.DefaultZoom)
	}
	if cfg.Render.Quality != pdf2img.DefaultQuality {
		t.Errorf("Render.Quality = %d, want %d", cfg.Render.Quality, pdf2img.DefaultQuality)
	}
	if cfg.Render.MaxWidth != pdf2img.DefaultMaxWidth {
		t.Errorf("Render.MaxWidth = %d, want %d", cfg.Render.MaxWidth, pdf2img.DefaultMaxWidth)
	}
	if cfg.Render.Prefix != pdf2img.DefaultPrefix {
		t.Errorf("Render.Prefix = %q, want %q", cfg.Render.Prefix, pdf2img.DefaultPrefix)
	}
	if cfg.Archive.Enabled || cfg.Overwrite {
		t.Error("archive and overwrite must default to off")
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "render:\n  zoom: 3.0\n  prefix: scan\narchive:\n  enabled: true\n")

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Render.Zoom != 3.0 {
		t.Errorf("Render.Zoom = %g, want 3.0", cfg.Render.Zoom)
	}
	if cfg.Render.Prefix != "scan" {
		t.Errorf("Render.Prefix = %q, want scan", cfg.Render.Prefix)
	}
	if !cfg.Archive.Enabled {
		t.Error("Archive.Enabled = false, want true")
	}

	// Untouched fields keep their defaults.
	if cfg.Render.Quality != pdf2img.DefaultQuality {
		t.Errorf("Render.Quality = %d, want default %d", cfg.Render.Quality, pdf2img.DefaultQuality)
	}
	if cfg.Output.Dir != pdf2img.DefaultOutputDir {
		t.Errorf("Output.Dir = %q, want default %q", cfg.Output.Dir, pdf2img.DefaultOutputDir)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantErr: config.ErrConfigNotFound,
		},
		{
			name:    "unknown field rejected",
			path:    func(t *testing.T) string { return writeConfig(t, "render:\n  dpi: 300\n") },
			wantErr: config.ErrConfigParse,
		},
		{
			name:    "malformed yaml",
			path:    func(t *testing.T) string { return writeConfig(t, "render: [\n") },
			wantErr: config.ErrConfigParse,
		},
		{
			name: "oversized file",
			path: func(t *testing.T) string {
				padding := bytes.Repeat([]byte("# filler\n"), config.MaxConfigSize/8)
				return writeConfig(t, "overwrite: true\n"+string(padding))
			},
			wantErr: config.ErrConfigTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.LoadConfig(tt.path(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
