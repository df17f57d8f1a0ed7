package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Ranakb/ai-document-system/pkg/types"
)

// DriverName is the SQLite driver registered by modernc.org/sqlite.
const DriverName = "sqlite"

var (
	// ErrNotFound is returned when a requested document doesn't exist.
	ErrNotFound = errors.New("document not found")
)

// Record is one processed document as stored in the catalog.
type Record struct {
	FileName    string                 `json:"file_name"`
	Category    types.Category         `json:"category"`
	Confidence  float64                `json:"confidence"`
	Reason      string                 `json:"reason,omitempty"`
	Fields      map[string]interface{} `json:"fields"`
	ProcessedAt time.Time              `json:"processed_at"`
}

// Summary aggregates catalog contents by category.
type Summary struct {
	TotalDocuments int                    `json:"total_documents"`
	ByCategory     map[types.Category]int `json:"by_category"`
}

// Catalog persists classification results in SQLite.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog database at dbPath and
// applies any pending migrations.
func Open(dbPath string) (*Catalog, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &Catalog{db: db}, nil
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Upsert inserts or replaces the record for rec.FileName.
func (c *Catalog) Upsert(ctx context.Context, rec Record) error {
	fieldsJSON, err := json.Marshal(rec.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	processedAt := rec.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now()
	}

	query := `
		INSERT INTO documents (file_name, category, confidence, reason, fields, processed_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(file_name) DO UPDATE SET
			category = excluded.category,
			confidence = excluded.confidence,
			reason = excluded.reason,
			fields = excluded.fields,
			processed_at = excluded.processed_at
	`
	// Stored as RFC 3339 text; the pure Go driver round-trips strings, not
	// time.Time values.
	_, err = c.db.ExecContext(ctx, query,
		rec.FileName, string(rec.Category), rec.Confidence, rec.Reason,
		string(fieldsJSON), processedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}
	return nil
}

// Get returns the record for fileName, or ErrNotFound.
func (c *Catalog) Get(ctx context.Context, fileName string) (*Record, error) {
	query := `
		SELECT file_name, category, confidence, reason, fields, processed_at
		FROM documents WHERE file_name = ?
	`
	rec, err := scanRecord(c.db.QueryRowContext(ctx, query, fileName))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, fileName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return rec, nil
}

// List returns all records ordered by file name.
func (c *Catalog) List(ctx context.Context) ([]Record, error) {
	query := `
		SELECT file_name, category, confidence, reason, fields, processed_at
		FROM documents ORDER BY file_name
	`
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return records, nil
}

// Summarize returns per-category counts across the catalog.
func (c *Catalog) Summarize(ctx context.Context) (*Summary, error) {
	rows, err := c.db.QueryContext(ctx,
		"SELECT category, COUNT(*) FROM documents GROUP BY category")
	if err != nil {
		return nil, fmt.Errorf("failed to summarize documents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	summary := &Summary{ByCategory: make(map[types.Category]int)}
	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary.ByCategory[types.Category(category)] = count
		summary.TotalDocuments += count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate summary: %w", err)
	}
	return summary, nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*Record, error) {
	var rec Record
	var category, fieldsJSON, processedAt string
	if err := s.Scan(&rec.FileName, &category, &rec.Confidence, &rec.Reason,
		&fieldsJSON, &processedAt); err != nil {
		return nil, err
	}
	rec.Category = types.Category(category)
	if err := json.Unmarshal([]byte(fieldsJSON), &rec.Fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339Nano, processedAt); err == nil {
		rec.ProcessedAt = ts
	}
	return &rec, nil
}
