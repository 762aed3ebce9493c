//go:build ocr

package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract implements Engine by wrapping the Tesseract OCR engine via
// gosseract. Requires Tesseract to be installed on the system. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
type Tesseract struct {
	client *gosseract.Client
}

// NewTesseract creates a Tesseract engine. The page segmentation mode is
// fixed to a single uniform block of text and must be held constant for
// recognition-quality consistency across runs. lang may list multiple
// languages separated by "+" (e.g. "eng+fra"); empty keeps the default.
func NewTesseract(lang string) (*Tesseract, error) {
	client := gosseract.NewClient()

	if lang != "" {
		if err := client.SetLanguage(lang); err != nil {
			client.Close()
			return nil, fmt.Errorf("setting OCR language: %w", err)
		}
	}
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("setting page segmentation mode: %w", err)
	}

	return &Tesseract{client: client}, nil
}

// Recognize runs OCR over image data and returns the raw recognized text.
func (t *Tesseract) Recognize(imageData []byte) (string, error) {
	if err := t.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("setting image: %w", err)
	}

	text, err := t.client.Text()
	if err != nil {
		return "", fmt.Errorf("recognizing text: %w", err)
	}

	return text, nil
}

// Close releases Tesseract resources.
func (t *Tesseract) Close() error {
	if t.client != nil {
		return t.client.Close()
	}
	return nil
}
