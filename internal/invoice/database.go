package invoice

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB defines the interface for invoice persistence. Inserts are append-only
// and must be serialized by the implementation; full-table reads make no
// ordering guarantee beyond what the store itself provides.
type DB interface {
	// InsertInvoice appends a committed invoice and returns a copy carrying
	// the store-assigned id.
	InsertInvoice(rec *Record) (*Record, error)

	// ListInvoices returns all invoices.
	ListInvoices() ([]*Record, error)

	// Close closes the database connection
	Close() error
}

// SQLiteDB implements the DB interface using SQLite
type SQLiteDB struct {
	db *sql.DB
}

// NewSQLiteDB opens or creates the invoice database at path and initializes
// the schema. WAL mode keeps concurrent readers off the writers' backs.
func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS invoices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		reference_no TEXT,
		vendor TEXT,
		date TEXT,
		total REAL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// InsertInvoice appends a committed invoice to the invoices table.
func (s *SQLiteDB) InsertInvoice(rec *Record) (*Record, error) {
	res, err := s.db.Exec(
		"INSERT INTO invoices (reference_no, vendor, date, total) VALUES (?, ?, ?, ?)",
		rec.ReferenceNo, rec.Vendor, rec.Date, rec.Total,
	)
	if err != nil {
		return nil, fmt.Errorf("inserting invoice: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("reading inserted id: %w", err)
	}

	saved := *rec
	saved.ID = id
	return &saved, nil
}

// ListInvoices returns all invoices.
func (s *SQLiteDB) ListInvoices() ([]*Record, error) {
	rows, err := s.db.Query("SELECT id, reference_no, vendor, date, total FROM invoices")
	if err != nil {
		return nil, fmt.Errorf("querying invoices: %w", err)
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.ReferenceNo, &rec.Vendor, &rec.Date, &rec.Total); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}

	return records, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}
