// Package storage implements the persistence layer: the unknown-niche review
// queue and the estimate history, backed by SQLite.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/nichewise/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStorage implements the service.Storage interface using SQLite.
type SQLiteStorage struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStorage creates a new SQLite storage instance.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dbPath == "" {
		return nil, errors.New("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStorage{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Migrate creates the schema if it doesn't exist yet.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS review_queue (
			query      TEXT PRIMARY KEY,
			raw_query  TEXT NOT NULL,
			hit_count  INTEGER NOT NULL DEFAULT 1,
			first_seen TIMESTAMP NOT NULL,
			last_seen  TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS estimates (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			category_id      TEXT NOT NULL,
			long_form_views  INTEGER NOT NULL,
			short_form_views INTEGER NOT NULL,
			long_form_rpm    REAL NOT NULL,
			short_form_rpm   REAL NOT NULL,
			total_revenue    REAL NOT NULL,
			created_at       TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_estimates_created_at ON estimates(created_at)`,
	}

	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}

// RecordUnknownQuery upserts an unrecognized query into the review queue,
// bumping the hit count on repeats. Keyed by the normalized form so casing
// and punctuation variants collapse into one row.
func (s *SQLiteStorage) RecordUnknownQuery(ctx context.Context, normalized, raw string) error {
	if normalized == "" {
		return errors.New("normalized query cannot be empty")
	}

	now := time.Now().UTC()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO review_queue (query, raw_query, hit_count, first_seen, last_seen)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(query) DO UPDATE SET
			hit_count = hit_count + 1,
			last_seen = excluded.last_seen`,
		normalized, raw, now, now)
	if err != nil {
		return fmt.Errorf("failed to record unknown query: %w", err)
	}

	return nil
}

// GetReviewQueue returns pending unknown niches, most-requested first.
func (s *SQLiteStorage) GetReviewQueue(ctx context.Context) ([]service.UnknownNiche, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT query, raw_query, hit_count, first_seen, last_seen
		FROM review_queue
		ORDER BY hit_count DESC, first_seen ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query review queue: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var queue []service.UnknownNiche
	for rows.Next() {
		var n service.UnknownNiche
		if err := rows.Scan(&n.Query, &n.RawQuery, &n.HitCount, &n.FirstSeen, &n.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan review queue row: %w", err)
		}
		queue = append(queue, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate review queue: %w", err)
	}

	return queue, nil
}

// ResolveUnknownQuery removes a query from the review queue once it has been
// curated into the catalog.
func (s *SQLiteStorage) ResolveUnknownQuery(ctx context.Context, normalized string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM review_queue WHERE query = ?`, normalized)
	if err != nil {
		return fmt.Errorf("failed to resolve unknown query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// SaveEstimate persists one revenue estimate.
func (s *SQLiteStorage) SaveEstimate(ctx context.Context, record *service.EstimateRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO estimates (category_id, long_form_views, short_form_views,
			long_form_rpm, short_form_rpm, total_revenue, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.CategoryID, record.LongFormViews, record.ShortFormViews,
		record.LongFormRPM, record.ShortFormRPM, record.TotalRevenue, createdAt)
	if err != nil {
		return fmt.Errorf("failed to save estimate: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		record.ID = id
	}

	return nil
}

// GetRecentEstimates returns the newest estimates, limited to limit rows.
func (s *SQLiteStorage) GetRecentEstimates(ctx context.Context, limit int) ([]service.EstimateRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category_id, long_form_views, short_form_views,
			long_form_rpm, short_form_rpm, total_revenue, created_at
		FROM estimates
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query estimates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []service.EstimateRecord
	for rows.Next() {
		var r service.EstimateRecord
		if err := rows.Scan(&r.ID, &r.CategoryID, &r.LongFormViews, &r.ShortFormViews,
			&r.LongFormRPM, &r.ShortFormRPM, &r.TotalRevenue, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan estimate row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate estimates: %w", err)
	}

	return records, nil
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}
