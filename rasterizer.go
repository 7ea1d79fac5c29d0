package pdf2img

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// renderBaseDPI is the resolution a zoom of 1.0 maps to. PDF user space is
// defined at 72 units per inch, so zoom*72 DPI reproduces a page at its
// native pixel dimensions scaled linearly by zoom.
const renderBaseDPI = 72.0

// Rasterizer opens documents for page rendering.
type Rasterizer interface {
	Open(path string) (Document, error)
}

// Document is an open paginated document. Callers must Close it when done.
type Document interface {
	// NumPages reports the page count.
	NumPages() int

	// RenderPage rasterizes the zero-based page at the given linear zoom
	// factor into an opaque RGB image.
	RenderPage(index int, zoom float64) (image.Image, error)

	// Close releases the underlying handle.
	Close() error
}

// fitzRasterizer renders pages with MuPDF via go-fitz.
type fitzRasterizer struct{}

func (fitzRasterizer) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenDocument, path, err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) RenderPage(index int, zoom float64) (image.Image, error) {
	img, err := d.doc.ImageDPI(index, zoom*renderBaseDPI)
	if err != nil {
		return nil, fmt.Errorf("%w: page %d: %v", ErrRenderPage, index+1, err)
	}
	return img, nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
