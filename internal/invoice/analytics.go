package invoice

import (
	"sort"
	"time"
)

// VendorTotal is one row of the spending-by-vendor table.
type VendorTotal struct {
	Vendor string  `json:"vendor"`
	Total  float64 `json:"total"`
}

// TimelinePoint is one entry of the chronological spending series.
type TimelinePoint struct {
	Date  time.Time `json:"date"`
	Total float64   `json:"total"`
}

// timelineLayouts are tried in order when parsing stored date strings.
// Stored dates are free-form OCR matches, so parsing is permissive.
var timelineLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"2006-01-02",
	"02 Jan 2006",
	"02 January 2006",
	"Jan 02, 2006",
	"January 02, 2006",
}

// VendorTotals groups committed invoices by vendor and sums their totals,
// sorted by vendor name. Zero-total records are failed extractions, not real
// zero-value invoices, and are excluded from all analytics.
func VendorTotals(records []*Record) []VendorTotal {
	sums := make(map[string]float64)
	for _, rec := range records {
		if rec.Total <= 0 {
			continue
		}
		sums[rec.Vendor] += rec.Total
	}

	out := make([]VendorTotal, 0, len(sums))
	for vendor, total := range sums {
		out = append(out, VendorTotal{Vendor: vendor, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Vendor < out[j].Vendor })
	return out
}

// Timeline builds the chronologically ordered (date, total) series for
// trend display. Records whose date fails to parse, including the "Unknown"
// sentinel, are left out of the series only; they still count toward vendor
// totals. No smoothing or interpolation is applied.
func Timeline(records []*Record) []TimelinePoint {
	out := make([]TimelinePoint, 0, len(records))
	for _, rec := range records {
		if rec.Total <= 0 {
			continue
		}
		date, ok := parseRecordDate(rec.Date)
		if !ok {
			continue
		}
		out = append(out, TimelinePoint{Date: date, Total: rec.Total})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func parseRecordDate(s string) (time.Time, bool) {
	for _, layout := range timelineLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
