// Package extract turns raw OCR text into normalized invoice fields.
// The extractors are pure functions of text, so they can be exercised
// against literal fixtures without an OCR engine or a database.
package extract

import "strings"

// Unknown is the sentinel value for fields that could not be detected.
const Unknown = "Unknown"

// Fields is the structured result of running all extractors over the OCR
// text of one document. Immutable once produced.
type Fields struct {
	Vendor string  `json:"vendor"`
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
}

// Run applies the vendor, date and total extractors to raw OCR text. The
// vendor is taken from the first non-blank line; date and total scan the
// full text. A Fields value is always produced: undetected fields fall back
// to their sentinels rather than failing.
func Run(text string) Fields {
	vendor := Unknown
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			vendor = NormalizeVendor(strings.TrimSpace(line))
			break
		}
	}

	return Fields{
		Vendor: vendor,
		Date:   Date(text),
		Total:  TotalAmount(text),
	}
}
