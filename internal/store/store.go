// Package store persists uploaded result batches in a local sqlite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/p5hema2/Indexcards-OCR/internal/batch"
)

// ErrNotFound is returned when a batch does not exist.
var ErrNotFound = errors.New("batch not found")

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	results TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_batches_created_at ON batches(created_at);
`

// Store wraps the sqlite database holding batches.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// BatchRecord is a stored batch with its full result rows.
type BatchRecord struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Results   []*batch.ResultRow `json:"results"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// BatchStats summarizes the outcome of a batch's recognition run.
type BatchStats struct {
	FileCount     int     `json:"file_count"`
	FailedCount   int     `json:"failed_count"`
	TotalDuration float64 `json:"total_duration"`
}

// Stats computes the summary statistics for the record's rows.
func (r *BatchRecord) Stats() BatchStats {
	stats := BatchStats{FileCount: len(r.Results)}
	for _, row := range r.Results {
		if row.Status == batch.StatusFailed {
			stats.FailedCount++
		}
		stats.TotalDuration += row.Duration
	}
	return stats
}

// BatchSummary describes a batch without its result rows.
type BatchSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FileCount int       `json:"file_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveBatch stores a new batch and returns the stored record.
func (s *Store) SaveBatch(ctx context.Context, name string, results []*batch.ResultRow) (*BatchRecord, error) {
	data, err := json.Marshal(results)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results: %w", err)
	}

	now := time.Now().UTC()
	rec := &BatchRecord{
		ID:        uuid.NewString(),
		Name:      name,
		Results:   results,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO batches (id, name, results, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.Name, string(data), rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert batch: %w", err)
	}

	return rec, nil
}

// GetBatch fetches a batch by ID, including its result rows.
func (s *Store) GetBatch(ctx context.Context, id string) (*BatchRecord, error) {
	var rec BatchRecord
	var resultsJSON string

	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, results, created_at, updated_at FROM batches WHERE id = ?`, id).
		Scan(&rec.ID, &rec.Name, &resultsJSON, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query batch: %w", err)
	}

	if err := json.Unmarshal([]byte(resultsJSON), &rec.Results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	for _, row := range rec.Results {
		if row.EditedData == nil {
			row.EditedData = make(map[string]string)
		}
	}

	return &rec, nil
}

// ListBatches returns summaries of all batches, newest first.
func (s *Store) ListBatches(ctx context.Context) ([]BatchSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, results, created_at, updated_at FROM batches ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list batches: %w", err)
	}
	defer rows.Close()

	summaries := make([]BatchSummary, 0)
	for rows.Next() {
		var sum BatchSummary
		var resultsJSON string
		if err := rows.Scan(&sum.ID, &sum.Name, &resultsJSON, &sum.CreatedAt, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan batch row: %w", err)
		}
		var results []*batch.ResultRow
		if err := json.Unmarshal([]byte(resultsJSON), &results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal results: %w", err)
		}
		sum.FileCount = len(results)
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// UpdateCell sets the reviewed value for one field of one file in a batch.
// An empty value is stored as an explicit override hiding the recognized text.
func (s *Store) UpdateCell(ctx context.Context, batchID, filename, field, value string) error {
	rec, err := s.GetBatch(ctx, batchID)
	if err != nil {
		return err
	}

	var target *batch.ResultRow
	for _, row := range rec.Results {
		if row.Filename == filename {
			target = row
			break
		}
	}
	if target == nil {
		return fmt.Errorf("file %q not found in batch %s", filename, batchID)
	}

	target.EditedData[field] = value

	data, err := json.Marshal(rec.Results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE batches SET results = ?, updated_at = ? WHERE id = ?`,
		string(data), time.Now().UTC(), batchID)
	if err != nil {
		return fmt.Errorf("failed to update batch: %w", err)
	}
	return nil
}

// DeleteBatch removes a batch.
func (s *Store) DeleteBatch(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM batches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
