package pdf2img

import "errors"

// Sentinel errors for library operations.
var (
	ErrQualityOutOfRange = errors.New("quality out of range")
	ErrInvalidZoom       = errors.New("zoom must be positive")
	ErrOpenDocument      = errors.New("failed to open document")
	ErrEmptyDocument     = errors.New("no pages found in document")
	ErrOutputExists      = errors.New("output directory already exists")
	ErrRenderPage        = errors.New("failed to render page")
	ErrEncodePage        = errors.New("failed to encode page")
	ErrWritePage         = errors.New("failed to write page image")
	ErrCreateArchive     = errors.New("failed to create archive")
)
