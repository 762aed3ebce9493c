package extract

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var vendorTitler = cases.Title(language.English)

// NormalizeVendor cleans up an OCR header line into a vendor name. Every
// character that is not a letter or a space is dropped, which lets the name
// survive misread punctuation and digits at the cost of losing legitimate
// digits in vendor names. Returns Unknown when nothing alphabetic remains.
func NormalizeVendor(firstLine string) string {
	if firstLine == "" {
		return Unknown
	}

	lower := strings.ToLower(firstLine)
	var b strings.Builder
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}

	words := strings.Fields(b.String())
	if len(words) == 0 {
		return Unknown
	}

	return vendorTitler.String(strings.Join(words, " "))
}
