package invoice

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/matdivya/receipt-and-invoice-digitiliser/internal/extract"
	"github.com/matdivya/receipt-and-invoice-digitiliser/internal/ocr"
	"github.com/matdivya/receipt-and-invoice-digitiliser/internal/preprocess"
)

// ErrZeroTotal rejects a commit whose extracted total is zero. A zero total
// means no plausible amount was detected; the user must re-extract with
// different preprocessing options or discard.
var ErrZeroTotal = errors.New("cannot commit invoice with zero total")

// ErrNoPending is returned when commit is attempted with no extraction in
// review.
var ErrNoPending = errors.New("no pending extraction")

const referencePrefix = "INV-"

// RefGenerator generates reference numbers for extracted invoices.
type RefGenerator interface {
	Generate() string
}

// defaultRefGenerator produces human-readable, time-ordered reference
// numbers. The random suffix keeps rapid successive extractions from
// colliding on the second-precision timestamp.
type defaultRefGenerator struct{}

func (g *defaultRefGenerator) Generate() string {
	return fmt.Sprintf("%s%s-%s",
		referencePrefix,
		time.Now().Format("20060102150405"),
		uuid.NewString()[:8],
	)
}

// Options control image conditioning before recognition.
type Options struct {
	ResizeFactor float64
	Denoise      bool
}

// DefaultOptions returns the conditioning defaults: a modest upscale and no
// smoothing.
func DefaultOptions() Options {
	return Options{ResizeFactor: 1.2}
}

// Service runs the extraction pipeline and owns the single-slot pending
// extraction. The slot is process-local and mutex-guarded; nothing reaches
// the database until Commit.
type Service struct {
	db      DB
	engine  ocr.Engine
	storage Storage
	refs    RefGenerator

	mu      sync.Mutex
	pending *PendingExtraction
}

// NewService creates a new Service with the default reference generator
func NewService(db DB, engine ocr.Engine, storage Storage) *Service {
	return &Service{
		db:      db,
		engine:  engine,
		storage: storage,
		refs:    &defaultRefGenerator{},
	}
}

// NewServiceWithDeps creates a new Service with a custom reference
// generator for testing
func NewServiceWithDeps(db DB, engine ocr.Engine, storage Storage, refs RefGenerator) *Service {
	return &Service{
		db:      db,
		engine:  engine,
		storage: storage,
		refs:    refs,
	}
}

// sanitizeFilename cleans up a filename by removing special characters and
// truncating length, so phone-generated names stay manageable on disk.
func sanitizeFilename(filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)

	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	base = strings.TrimSpace(base)

	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "upload"
	}

	return base + ext
}

// Extract runs the full pipeline for one upload: archive the original,
// rasterize (first PDF page, HEIC, or plain raster), condition the image,
// recognize text, and extract fields. On success the result replaces the
// pending slot; on any failure the slot is left untouched and the archived
// upload is removed, so a failed run never costs the user a reviewed
// extraction and never reaches the database.
func (s *Service) Extract(filename string, data []byte, contentType string, opts Options) (*PendingExtraction, error) {
	ref := s.refs.Generate()

	cleanFilename := sanitizeFilename(filename)
	savedPath, err := s.storage.Save(fmt.Sprintf("%s_%s", ref, cleanFilename), data)
	if err != nil {
		return nil, fmt.Errorf("saving upload: %w", err)
	}

	img, err := preprocess.Rasterize(data, contentType)
	if err != nil {
		slog.Error("Failed to decode upload",
			"filename", filename,
			"content_type", contentType,
			"file_size", len(data),
			"error", err,
		)
		s.storage.Delete(savedPath)
		return nil, err
	}

	conditioned, err := preprocess.Condition(img, opts.ResizeFactor, opts.Denoise)
	if err != nil {
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("conditioning image: %w", err)
	}

	pngData, err := preprocess.EncodePNG(conditioned)
	if err != nil {
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("encoding conditioned image: %w", err)
	}

	text, err := s.engine.Recognize(pngData)
	if err != nil {
		slog.Error("Failed to recognize text", "filename", filename, "error", err)
		s.storage.Delete(savedPath)
		return nil, fmt.Errorf("recognizing text: %w", err)
	}

	pending := &PendingExtraction{
		ReferenceNo: ref,
		Fields:      extract.Run(text),
		Filename:    savedPath,
	}

	s.mu.Lock()
	s.pending = pending
	s.mu.Unlock()

	return pending, nil
}

// Commit persists the pending extraction as an invoice record and clears
// the slot. A zero total is rejected with ErrZeroTotal and the slot kept, as
// is any database failure: a rejected save never loses the reviewed
// extraction.
func (s *Service) Commit() (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return nil, ErrNoPending
	}
	if s.pending.Fields.Total <= 0 {
		return nil, ErrZeroTotal
	}

	rec := &Record{
		ReferenceNo: s.pending.ReferenceNo,
		Vendor:      s.pending.Fields.Vendor,
		Date:        s.pending.Fields.Date,
		Total:       s.pending.Fields.Total,
	}

	saved, err := s.db.InsertInvoice(rec)
	if err != nil {
		return nil, fmt.Errorf("saving invoice: %w", err)
	}

	s.pending = nil
	return saved, nil
}

// Discard drops the pending extraction unconditionally.
func (s *Service) Discard() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// Pending returns the extraction currently in review, or nil.
func (s *Service) Pending() *PendingExtraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// History returns all committed invoices.
func (s *Service) History() ([]*Record, error) {
	records, err := s.db.ListInvoices()
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	return records, nil
}
