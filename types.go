package pdf2img

import "fmt"

// JPEG quality bounds.
const (
	MinQuality     = 30
	MaxQuality     = 95
	DefaultQuality = 65
)

// Default render settings.
const (
	DefaultZoom      = 2.0
	DefaultMaxWidth  = 1600
	DefaultPrefix    = "page"
	DefaultOutputDir = "output_images"
)

// Fallback tokens used when sanitization leaves nothing usable.
const (
	fallbackStem   = "document"
	fallbackPrefix = "page"
)

// ConvertOptions configures a conversion run. Constructed once and treated
// as read-only for the whole batch.
type ConvertOptions struct {
	Zoom      float64 // render scale; 1.0 = the page's native resolution
	Quality   int     // JPEG quality, MinQuality..MaxQuality
	MaxWidth  int     // downscale pages wider than this; <= 0 disables
	Prefix    string  // output filename prefix (sanitized, fallback "page")
	Archive   bool    // bundle each document's images into a ZIP
	Overwrite bool    // clear a pre-existing output directory instead of failing
}

// DefaultOptions returns options matching the CLI defaults.
func DefaultOptions() ConvertOptions {
	return ConvertOptions{
		Zoom:     DefaultZoom,
		Quality:  DefaultQuality,
		MaxWidth: DefaultMaxWidth,
		Prefix:   DefaultPrefix,
	}
}

// Validate checks that options are usable. A non-positive MaxWidth is valid
// and means "no resizing".
func (o ConvertOptions) Validate() error {
	if o.Quality < MinQuality || o.Quality > MaxQuality {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrQualityOutOfRange, o.Quality, MinQuality, MaxQuality)
	}
	if o.Zoom <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidZoom, o.Zoom)
	}
	return nil
}

// ConvertResult describes the output of one converted document.
type ConvertResult struct {
	OutputDir  string   // per-document directory under the output root
	BaseName   string   // sanitized document stem
	ImagePaths []string // written images, in page order
}

// Option configures a Service.
type Option func(*Service)

// WithRasterizer replaces the document rasterizer (default: MuPDF).
func WithRasterizer(r Rasterizer) Option {
	return func(s *Service) { s.rasterizer = r }
}

// WithEncoder replaces the image encoder (default: JPEG).
func WithEncoder(e Encoder) Option {
	return func(s *Service) { s.encoder = e }
}

// WithArchiver replaces the archive writer (default: ZIP).
func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// WithObserver sets the progress observer (default: none).
func WithObserver(o Observer) Option {
	return func(s *Service) { s.observer = o }
}
