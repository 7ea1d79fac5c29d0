package pdf2img

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-pdf2img/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Service runs the page-rasterization pipeline for single documents.
type Service struct {
	rasterizer Rasterizer
	encoder    Encoder
	archiver   Archiver
	observer   Observer
}

// New creates a Service with the MuPDF rasterizer, JPEG encoder, and ZIP
// archiver. Use options to substitute collaborators (e.g., in tests).
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}

	if s.rasterizer == nil {
		s.rasterizer = fitzRasterizer{}
	}
	if s.encoder == nil {
		s.encoder = jpegEncoder{}
	}
	if s.archiver == nil {
		s.archiver = zipArchiver{}
	}
	if s.observer == nil {
		s.observer = NopObserver{}
	}
	return s
}

// Convert rasterizes every page of the document at docPath into compressed
// images under outRoot/<sanitized stem>/, returning the directory and the
// written paths in page order.
//
// An existing output directory fails with ErrOutputExists unless
// opts.Overwrite is set, in which case regular files directly inside it are
// removed first (subdirectories stay). A document with zero pages fails with
// ErrEmptyDocument; the output directory created for it is left in place.
//
// The context is checked between pages, so cancellation takes effect at the
// next page boundary. A failure mid-document leaves already-written pages on
// disk.
func (s *Service) Convert(ctx context.Context, docPath, outRoot string, opts ConvertOptions) (*ConvertResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	stem := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	base := SanitizeName(stem, fallbackStem)
	outDir := filepath.Join(outRoot, base)

	if err := prepareOutputDir(outDir, opts.Overwrite); err != nil {
		return nil, err
	}

	doc, err := s.rasterizer.Open(docPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = doc.Close() }()

	total := doc.NumPages()
	if total == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, docPath)
	}

	prefix := SanitizeName(opts.Prefix, fallbackPrefix)
	s.observer.DocumentStarted(docPath, total)

	paths := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := doc.RenderPage(i, opts.Zoom)
		if err != nil {
			return nil, err
		}
		img = fitToWidth(img, opts.MaxWidth)

		name := fmt.Sprintf("%s_%03d.%s", prefix, i+1, s.encoder.Ext())
		outFile := filepath.Join(outDir, name)
		if err := s.writePage(outFile, img, opts.Quality); err != nil {
			return nil, err
		}

		paths = append(paths, outFile)
		s.observer.PageDone(i+1, total, outFile)
	}

	return &ConvertResult{OutputDir: outDir, BaseName: base, ImagePaths: paths}, nil
}

// Archive bundles the given images into a new archive at archivePath,
// reports it through the observer, and returns the archive's size in bytes.
func (s *Service) Archive(archivePath string, files []string) (int64, error) {
	if err := s.archiver.Archive(archivePath, files); err != nil {
		return 0, err
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCreateArchive, err)
	}

	s.observer.ArchiveCreated(archivePath, info.Size())
	return info.Size(), nil
}

// prepareOutputDir enforces the directory collision policy: refuse an
// existing directory unless overwrite is set, clear its files when it is,
// create it (with parents) when absent.
func prepareOutputDir(outDir string, overwrite bool) error {
	info, err := os.Stat(outDir)
	switch {
	case err == nil && !info.IsDir():
		return fmt.Errorf("%w: %s is not a directory", ErrOutputExists, outDir)
	case err == nil:
		if !overwrite {
			return fmt.Errorf("%w: %s (use the overwrite option to replace it, or choose another output root)",
				ErrOutputExists, outDir)
		}
		return fileutil.RemoveFiles(outDir)
	case errors.Is(err, fs.ErrNotExist):
		return os.MkdirAll(outDir, dirPermissions)
	default:
		return err
	}
}

// writePage encodes img and writes it to path in one shot, so a failed
// encode never leaves a truncated file behind.
func (s *Service) writePage(path string, img image.Image, quality int) error {
	var buf bytes.Buffer
	if err := s.encoder.Encode(&buf, img, quality); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePage, err)
	}
	return nil
}
