//go:build !ocr

package ocr

// Tesseract is the stub engine used when the "ocr" build tag is not set.
type Tesseract struct{}

// NewTesseract returns a stub engine whose Recognize calls report that OCR
// support was not compiled in.
func NewTesseract(lang string) (*Tesseract, error) {
	return &Tesseract{}, nil
}

// Recognize returns ErrNotEnabled.
func (t *Tesseract) Recognize(imageData []byte) (string, error) {
	return "", ErrNotEnabled
}

// Close is a no-op for the stub engine.
func (t *Tesseract) Close() error {
	return nil
}
