package main

import (
	"errors"
	"os"

	pdf2img "github.com/alnah/go-pdf2img"
	"github.com/alnah/go-pdf2img/internal/config"
)

// Exit codes for the pdf2img CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // at least one document processed (per-document failures included)
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags, config, or option validation
	ExitIO      = 3 // input path missing, or no matching documents found
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrInputNotFound) ||
		errors.Is(err, ErrNoDocuments) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrNoInputPath) ||
		errors.Is(err, pdf2img.ErrQualityOutOfRange) ||
		errors.Is(err, pdf2img.ErrInvalidZoom) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) {
		return ExitUsage
	}

	return ExitGeneral
}
