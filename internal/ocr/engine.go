// Package ocr is the text-recognition boundary: it converts a conditioned
// raster image into raw multi-line text. The Tesseract implementation is
// compiled in with the "ocr" build tag and requires the Tesseract libraries
// on the system; without the tag a stub is used that fails at recognition
// time.
package ocr

import "errors"

// ErrNotEnabled is returned when OCR functions are called but OCR support
// was not compiled in. Rebuild with -tags ocr to enable it.
var ErrNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Engine converts a raster image into plain text.
type Engine interface {
	// Recognize runs text recognition over image data (PNG, JPEG, TIFF).
	Recognize(imageData []byte) (string, error)

	// Close releases engine resources.
	Close() error
}
