package pdf2img

import (
	"image"

	"github.com/disintegration/imaging"
)

// fitToWidth downscales img proportionally so its width equals maxWidth.
// Images at or below maxWidth pass through untouched, as does everything
// when maxWidth is zero or negative. Lanczos resampling keeps the small
// text typical of rendered pages readable after downscaling.
func fitToWidth(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 {
		return img
	}
	if img.Bounds().Dx() <= maxWidth {
		return img
	}
	return imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
}
