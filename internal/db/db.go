// Package db provides PostgreSQL persistence for parse runs. Persistence is
// optional: the parser works entirely without a database, and both the CLI
// and the server only connect when a database URL is configured.
package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-parser/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// CreateRun records the start of a parse run and returns its ID
func (db *DB) CreateRun(ctx context.Context, sourceName, contentType string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO parse_runs (source_name, content_type, status)
		 VALUES ($1, $2, 'running')
		 RETURNING id`,
		sourceName, contentType,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// CompleteRun marks a parse run as finished and stores the record produced.
// A nil record with a failed status records the failure alone.
func (db *DB) CompleteRun(ctx context.Context, runID uuid.UUID, status string, record *types.ResumeRecord) error {
	var recordJSON []byte
	if record != nil {
		var err error
		recordJSON, err = json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
	}

	_, err := db.pool.Exec(ctx,
		`UPDATE parse_runs
		 SET status = $1, record = $2, method_used = $3, completed_at = NOW()
		 WHERE id = $4`,
		status, recordJSON, methodOf(record), runID,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// GetRecord retrieves the stored record of a run, or nil when the run is
// unknown or produced none.
func (db *DB) GetRecord(ctx context.Context, runID uuid.UUID) (*types.ResumeRecord, error) {
	var recordJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT record FROM parse_runs WHERE id = $1`,
		runID,
	).Scan(&recordJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	if len(recordJSON) == 0 {
		return nil, nil
	}

	record := types.NewResumeRecord()
	if err := json.Unmarshal(recordJSON, record); err != nil {
		return nil, fmt.Errorf("failed to parse stored record: %w", err)
	}
	return record, nil
}

// GetRun retrieves a parse run by ID
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, source_name, content_type, status, COALESCE(method_used, ''), created_at, completed_at
		 FROM parse_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.SourceName, &run.ContentType, &run.Status, &run.MethodUsed, &run.CreatedAt, &run.CompletedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent parse runs
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, source_name, content_type, status, COALESCE(method_used, ''), created_at, completed_at
		 FROM parse_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.SourceName, &run.ContentType, &run.Status, &run.MethodUsed, &run.CreatedAt, &run.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func methodOf(record *types.ResumeRecord) string {
	if record == nil {
		return ""
	}
	return string(record.ParsingMetadata.MethodUsed)
}
