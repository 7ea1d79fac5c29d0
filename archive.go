package pdf2img

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Archiver bundles a document's images into a single archive file.
type Archiver interface {
	// Archive writes the named files into a new archive at path, replacing
	// any existing file there. Entries keep the input order and are stored
	// under their base filename only.
	Archive(path string, files []string) error
}

// zipArchiver writes deflate-compressed ZIP archives.
type zipArchiver struct{}

func (zipArchiver) Archive(path string, files []string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", ErrCreateArchive, err)
	}

	out, err := os.Create(path) // #nosec G304 -- path derives from sanitized names
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCreateArchive, err)
	}

	zw := zip.NewWriter(out)
	for _, file := range files {
		if err := addZipEntry(zw, file); err != nil {
			_ = zw.Close()
			_ = out.Close()
			return fmt.Errorf("%w: %s: %v", ErrCreateArchive, filepath.Base(file), err)
		}
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("%w: %v", ErrCreateArchive, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateArchive, err)
	}
	return nil
}

func addZipEntry(zw *zip.Writer, file string) error {
	src, err := os.Open(file) // #nosec G304 -- paths come from the pipeline's own output
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	w, err := zw.Create(filepath.Base(file))
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
