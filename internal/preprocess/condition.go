package preprocess

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Resize factor bounds accepted by Condition.
const (
	MinResizeFactor = 1.0
	MaxResizeFactor = 2.0
)

// denoiseSigma is the auto-computed sigma for a 5x5 Gaussian kernel.
const denoiseSigma = 1.1

// Condition produces an OCR-ready raster from a decoded upload: single
// channel grayscale, a uniform cubic rescale by resizeFactor on both axes,
// and an optional Gaussian smoothing pass to suppress scan noise before
// recognition. A resizeFactor outside [1.0, 2.0] is rejected.
func Condition(img image.Image, resizeFactor float64, denoise bool) (*image.NRGBA, error) {
	if resizeFactor < MinResizeFactor || resizeFactor > MaxResizeFactor {
		return nil, fmt.Errorf("resize factor %.2f outside [%.1f, %.1f]",
			resizeFactor, MinResizeFactor, MaxResizeFactor)
	}

	out := imaging.Grayscale(img)

	bounds := img.Bounds()
	width := int(float64(bounds.Dx())*resizeFactor + 0.5)
	height := int(float64(bounds.Dy())*resizeFactor + 0.5)
	out = imaging.Resize(out, width, height, imaging.CatmullRom)

	if denoise {
		out = imaging.Blur(out, denoiseSigma)
	}

	return out, nil
}
