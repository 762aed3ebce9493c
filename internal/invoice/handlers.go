package invoice

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matdivya/receipt-and-invoice-digitiliser/internal/preprocess"
)

// corsError writes an error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// jsonError writes a JSON error body with CORS headers set
func jsonError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// handleIndex serves the HTML interface
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

// extractionResponse wraps a pending extraction with an optional quality
// warning for the review UI.
type extractionResponse struct {
	*PendingExtraction
	Warning string `json:"warning,omitempty"`
}

// handleExtract runs the extraction pipeline on an uploaded document
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	// Max 50MB to handle high-resolution phone photos
	maxFormSize := int64(50 << 20)
	if err := r.ParseMultipartForm(maxFormSize); err != nil {
		slog.Error("Error parsing multipart form", "error", err)
		errorMsg := "Error parsing form"
		if err.Error() == "http: request body too large" {
			errorMsg = "File is too large. Maximum size is 50MB."
		}
		jsonError(w, errorMsg, http.StatusBadRequest)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		slog.Error("Error getting file from form", "error", err)
		jsonError(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer f.Close()

	if header.Size > maxFormSize {
		jsonError(w, "File is too large. Maximum size is 50MB.", http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(f)
	if err != nil {
		slog.Error("Error reading file data", "error", err, "filename", header.Filename)
		jsonError(w, "Error reading file. Please try again.", http.StatusInternalServerError)
		return
	}

	opts, err := parseOptions(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	contentType := uploadContentType(header.Header.Get("Content-Type"), header.Filename)

	pending, err := s.service.Extract(header.Filename, data, contentType, opts)
	if err != nil {
		slog.Error("Error extracting invoice", "filename", header.Filename, "error", err)
		code := http.StatusInternalServerError
		if errors.Is(err, preprocess.ErrDecode) {
			code = http.StatusBadRequest
		}
		jsonError(w, err.Error(), code)
		return
	}

	resp := extractionResponse{PendingExtraction: pending}
	if pending.Fields.Total == 0 {
		resp.Warning = "total amount not detected"
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// parseOptions reads the preprocessing form fields; absent fields fall back
// to the defaults.
func parseOptions(r *http.Request) (Options, error) {
	opts := DefaultOptions()

	if v := r.FormValue("resize_factor"); v != "" {
		factor, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New("invalid resize_factor")
		}
		opts.ResizeFactor = factor
	}

	switch strings.ToLower(r.FormValue("denoise")) {
	case "true", "on", "1":
		opts.Denoise = true
	}

	return opts, nil
}

// uploadContentType falls back to the filename extension when the browser
// did not send a usable content type.
func uploadContentType(contentType, filename string) string {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if contentType != "" && contentType != "application/octet-stream" {
		return contentType
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".heic":
		return "image/heic"
	case ".heif":
		return "image/heif"
	default:
		return "application/octet-stream"
	}
}

// handleGetPending returns the extraction currently in review
func (s *Server) handleGetPending(w http.ResponseWriter, r *http.Request) {
	pending := s.service.Pending()
	if pending == nil {
		corsError(w, "No pending extraction", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pending); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleCommit saves the pending extraction as an invoice record
func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	record, err := s.service.Commit()
	if err != nil {
		switch {
		case errors.Is(err, ErrNoPending):
			corsError(w, "No pending extraction", http.StatusNotFound)
		case errors.Is(err, ErrZeroTotal):
			jsonError(w, "Cannot save invoice with zero total.", http.StatusConflict)
		default:
			slog.Error("Error committing invoice", "error", err)
			corsError(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(record); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleDiscard drops the pending extraction
func (s *Server) handleDiscard(w http.ResponseWriter, r *http.Request) {
	s.service.Discard()
	w.WriteHeader(http.StatusNoContent)
}

// handleListInvoices returns all committed invoices
func (s *Server) handleListInvoices(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.History()
	if err != nil {
		slog.Error("Error listing invoices", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(records); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleVendorTotals returns the spending-by-vendor table
func (s *Server) handleVendorTotals(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.History()
	if err != nil {
		slog.Error("Error listing invoices", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(VendorTotals(records)); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// handleTimeline returns the chronological spending series
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	records, err := s.service.History()
	if err != nil {
		slog.Error("Error listing invoices", "error", err)
		corsError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(Timeline(records)); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}
