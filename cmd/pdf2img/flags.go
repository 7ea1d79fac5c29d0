package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	pdf2img "github.com/alnah/go-pdf2img"
	"github.com/alnah/go-pdf2img/internal/config"
)

// convertFlags holds all CLI flags. changed reports whether a flag was set
// explicitly, which decides whether it overrides the config file.
type convertFlags struct {
	output    string
	zoom      float64
	quality   int
	maxWidth  int
	prefix    string
	zip       bool
	overwrite bool

	configPath string
	quiet      bool
	verbose    bool
	version    bool

	changed func(name string) bool
}

// parseFlags parses CLI flags and returns the remaining positional args.
func parseFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("pdf2img", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "out", "o", pdf2img.DefaultOutputDir,
		"output root directory (each PDF gets its own subfolder inside)")
	fs.Float64Var(&f.zoom, "zoom", pdf2img.DefaultZoom,
		"render scale (higher = clearer, bigger files)")
	fs.IntVar(&f.quality, "quality", pdf2img.DefaultQuality,
		fmt.Sprintf("JPEG quality (%d-%d)", pdf2img.MinQuality, pdf2img.MaxQuality))
	fs.IntVar(&f.maxWidth, "max-width", pdf2img.DefaultMaxWidth,
		"resize pages wider than this many pixels; 0 disables")
	fs.StringVar(&f.prefix, "prefix", pdf2img.DefaultPrefix,
		"output image filename prefix (e.g., 'scan' -> scan_001.jpg)")
	fs.BoolVar(&f.zip, "zip", false, "create a ZIP per PDF (inside its output folder)")
	fs.BoolVar(&f.overwrite, "overwrite", false, "replace an existing output folder")

	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file with default settings")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	f.changed = fs.Changed
	return f, fs.Args(), nil
}

// mergeFlags merges CLI flags into config. Explicitly set flags win over
// config file values.
func mergeFlags(f *convertFlags, cfg *config.Config) {
	if f.changed("out") {
		cfg.Output.Dir = f.output
	}
	if f.changed("zoom") {
		cfg.Render.Zoom = f.zoom
	}
	if f.changed("quality") {
		cfg.Render.Quality = f.quality
	}
	if f.changed("max-width") {
		cfg.Render.MaxWidth = f.maxWidth
	}
	if f.changed("prefix") {
		cfg.Render.Prefix = f.prefix
	}
	if f.zip {
		cfg.Archive.Enabled = true
	}
	if f.overwrite {
		cfg.Overwrite = true
	}
}

// printUsage writes the command usage to w.
func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprint(w, "Usage: pdf2img [flags] <input.pdf | directory>\n\n")
	fmt.Fprint(w, "Convert PDF pages to separate compressed JPG images (one per page).\n\n")
	fmt.Fprintf(w, "Flags:\n%s", fs.FlagUsages())
}
