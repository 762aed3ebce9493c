package extract

import "regexp"

// datePatterns are tried in fixed priority order. The first pattern that
// matches anywhere in the text wins, even if a later pattern would match at
// an earlier position: pattern priority strictly dominates position.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{2}[/-]\d{2}[/-]\d{4}`),     // 04/01/2024, 04-01-2024
	regexp.MustCompile(`\d{4}-\d{2}-\d{2}`),           // 2024-01-04
	regexp.MustCompile(`\d{2}\s+[A-Za-z]{3,}\s+\d{4}`), // 04 Jan 2024
	regexp.MustCompile(`[A-Za-z]{3,}\s+\d{2},\s*\d{4}`), // Jan 04, 2024
}

// Date returns the first date-shaped substring found in the text, verbatim
// and unreformatted, or Unknown when no pattern matches. The match is not
// validated as a calendar date; pattern shape alone suffices.
func Date(text string) string {
	for _, p := range datePatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}
	return Unknown
}
