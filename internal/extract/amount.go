package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// totalKeywords mark lines that plausibly carry an invoice total.
var totalKeywords = []string{"total", "amount", "payable", "grand"}

var (
	// keywordAmount matches a numeric token on a keyword line: an optional
	// currency prefix, comma-grouped digits and an optional 1-2 digit
	// decimal suffix. Only the digit group is captured.
	keywordAmount = regexp.MustCompile(`[₹Rs.]?\s*([\d,]+(?:\.\d{1,2})?)`)

	// strictMoney is the whole-text fallback: a strict two-decimal money
	// shape, so bare integers elsewhere in the document are not mistaken
	// for amounts.
	strictMoney = regexp.MustCompile(`[\d,]+\.\d{2}`)
)

// TotalAmount extracts the most plausible invoice total from OCR text.
// Every parseable number on a keyword line is a candidate, and the maximum
// wins: invoices repeat subtotal, tax and grand total on keyword lines, and
// the grand total is assumed to be the largest. When no keyword line yields
// a number, the whole text is scanned for strict money tokens instead.
// Returns 0.0 when nothing parses; callers cannot distinguish that from a
// legitimately zero-value invoice.
func TotalAmount(text string) float64 {
	var candidates []float64

	for _, line := range strings.Split(text, "\n") {
		if !containsKeyword(strings.ToLower(line)) {
			continue
		}
		for _, m := range keywordAmount.FindAllStringSubmatch(line, -1) {
			if v, err := parseAmount(m[1]); err == nil {
				candidates = append(candidates, v)
			}
		}
	}

	if len(candidates) == 0 {
		for _, m := range strictMoney.FindAllString(text, -1) {
			if v, err := parseAmount(m); err == nil {
				candidates = append(candidates, v)
			}
		}
	}

	var max float64
	for _, v := range candidates {
		if v > max {
			max = v
		}
	}
	return max
}

func containsKeyword(line string) bool {
	for _, k := range totalKeywords {
		if strings.Contains(line, k) {
			return true
		}
	}
	return false
}

// parseAmount parses a numeric token with thousands separators stripped.
func parseAmount(token string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(token, ",", ""), 64)
}
