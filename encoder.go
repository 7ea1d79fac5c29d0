package pdf2img

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// Encoder compresses a rendered page into an output image format.
type Encoder interface {
	// Encode writes img to w at the given quality level.
	Encode(w io.Writer, img image.Image, quality int) error

	// Ext is the file extension for produced images, without the dot.
	Ext() string
}

// jpegEncoder produces baseline JPEG output. JPEG carries no alpha channel,
// so any transparency in the rendered page is dropped at this stage.
type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return fmt.Errorf("%w: %v", ErrEncodePage, err)
	}
	return nil
}

func (jpegEncoder) Ext() string {
	return "jpg"
}
