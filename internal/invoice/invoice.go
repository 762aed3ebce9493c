// Package invoice holds the invoice domain: the committed record model, the
// store, the record-builder service with its single pending-extraction slot,
// the analytics aggregations and the HTTP surface.
package invoice

import (
	"github.com/matdivya/receipt-and-invoice-digitiliser/internal/extract"
)

// Record is a committed invoice row. Records are append-only: created on
// commit, never updated or deleted.
type Record struct {
	ID          int64   `json:"id"`
	ReferenceNo string  `json:"reference_no"`
	Vendor      string  `json:"vendor"`
	Date        string  `json:"date"`
	Total       float64 `json:"total"`
}

// PendingExtraction is a reviewed extraction that has not been committed
// yet. At most one exists per process; commit or discard clears it.
type PendingExtraction struct {
	ReferenceNo string         `json:"reference_no"`
	Fields      extract.Fields `json:"fields"`
	Filename    string         `json:"filename"`
}
