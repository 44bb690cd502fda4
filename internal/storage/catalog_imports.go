package storage

import (
	"context"
	"fmt"
	"time"
)

// CatalogImport records one load of exercise definitions into the catalog table.
type CatalogImport struct {
	ID                int64     `json:"id"`
	CreatedAt         time.Time `json:"created_at"`
	Source            string    `json:"source"`
	Status            string    `json:"status"`
	ExercisesReceived int       `json:"exercises_received"`
	ExercisesWritten  int64     `json:"exercises_written"`
	DurationMs        *int      `json:"duration_ms"`
	ErrorMessage      *string   `json:"error_message"`
}

// InsertCatalogImport creates a new import log entry and returns its ID.
func (db *DB) InsertCatalogImport(ctx context.Context, l CatalogImport) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO catalog_imports (source, status, exercises_received, exercises_written, duration_ms, error_message)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING id`,
		l.Source, l.Status, l.ExercisesReceived, l.ExercisesWritten, l.DurationMs, l.ErrorMessage,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting catalog import: %w", err)
	}
	return id, nil
}

// UpdateCatalogImport updates an existing entry (typically from "running" to "success" or "error").
func (db *DB) UpdateCatalogImport(ctx context.Context, id int64, l CatalogImport) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE catalog_imports SET
		 status = $2, exercises_received = $3, exercises_written = $4, duration_ms = $5, error_message = $6
		 WHERE id = $1`,
		id, l.Status, l.ExercisesReceived, l.ExercisesWritten, l.DurationMs, l.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("updating catalog import %d: %w", id, err)
	}
	return nil
}

// QueryCatalogImports returns the most recent catalog imports.
func (db *DB) QueryCatalogImports(ctx context.Context, limit int) ([]CatalogImport, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, created_at, source, status, exercises_received, exercises_written, duration_ms, error_message
		 FROM catalog_imports
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("querying catalog imports: %w", err)
	}
	defer rows.Close()

	var result []CatalogImport
	for rows.Next() {
		var l CatalogImport
		if err := rows.Scan(&l.ID, &l.CreatedAt, &l.Source, &l.Status, &l.ExercisesReceived,
			&l.ExercisesWritten, &l.DurationMs, &l.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scanning catalog import: %w", err)
		}
		result = append(result, l)
	}
	return result, rows.Err()
}
