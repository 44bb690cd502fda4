// Package localstore keeps profiles and plan history in a local SQLite file
// so the offline CLI can remember what it generated.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/storage"
)

// FileName is the database file created inside the state directory.
const FileName = "fitplan.db"

// timeLayout sorts lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	user_id    INTEGER PRIMARY KEY,
	profile    TEXT NOT NULL,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS plans (
	id                TEXT PRIMARY KEY,
	user_id           INTEGER NOT NULL,
	goal              TEXT NOT NULL,
	experience_level  TEXT NOT NULL,
	days_per_week     INTEGER NOT NULL,
	strategy          TEXT NOT NULL,
	underfill_warning INTEGER NOT NULL,
	created_at        TEXT NOT NULL,
	plan              TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS plans_user_created ON plans (user_id, created_at DESC);
CREATE TABLE IF NOT EXISTS current_plans (
	user_id INTEGER PRIMARY KEY,
	plan_id TEXT NOT NULL REFERENCES plans(id)
);`

// Store is a SQLite-backed profile and plan store. It satisfies the
// planning service's ProfileStore and PlanStore.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dir/fitplan.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, FileName))
	if err != nil {
		return nil, fmt.Errorf("opening local db: %w", err)
	}
	// One writer at a time; SQLite locks the whole file anyway.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating local schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// GetProfile returns the stored profile or storage.ErrNotFound.
func (s *Store) GetProfile(ctx context.Context, userID int) (models.UserProfile, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT profile FROM profiles WHERE user_id = ?`, userID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, storage.ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("querying profile: %w", err)
	}
	var p models.UserProfile
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return models.UserProfile{}, fmt.Errorf("decoding profile: %w", err)
	}
	return p, nil
}

// UpsertProfile stores the profile, replacing any previous one.
func (s *Store) UpsertProfile(ctx context.Context, userID int, p models.UserProfile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO profiles (user_id, profile, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)`,
		userID, string(doc))
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

// SavePlan appends the plan to history and makes it current.
func (s *Store) SavePlan(ctx context.Context, userID int, plan *models.WorkoutPlan) error {
	if plan.ID == uuid.Nil {
		return fmt.Errorf("saving plan: missing id")
	}
	doc, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO plans (id, user_id, goal, experience_level, days_per_week, strategy,
		 underfill_warning, created_at, plan)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID.String(), userID, string(plan.Goal), string(plan.ExperienceLevel), plan.DaysPerWeek,
		plan.Strategy, plan.UnderfillWarning, plan.CreatedAt.UTC().Format(timeLayout), string(doc))
	if err != nil {
		return fmt.Errorf("appending plan history: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO current_plans (user_id, plan_id) VALUES (?, ?)`,
		userID, plan.ID.String())
	if err != nil {
		return fmt.Errorf("setting current plan: %w", err)
	}
	return tx.Commit()
}

// GetCurrentPlan returns the most recently saved plan.
func (s *Store) GetCurrentPlan(ctx context.Context, userID int) (*models.WorkoutPlan, error) {
	return s.queryPlan(ctx,
		`SELECT p.plan FROM current_plans c JOIN plans p ON p.id = c.plan_id WHERE c.user_id = ?`,
		userID)
}

// GetPlan returns one plan from history.
func (s *Store) GetPlan(ctx context.Context, userID int, id uuid.UUID) (*models.WorkoutPlan, error) {
	return s.queryPlan(ctx, `SELECT plan FROM plans WHERE user_id = ? AND id = ?`, userID, id.String())
}

func (s *Store) queryPlan(ctx context.Context, query string, args ...any) (*models.WorkoutPlan, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan: %w", err)
	}
	var plan models.WorkoutPlan
	if err := json.Unmarshal([]byte(doc), &plan); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &plan, nil
}

// QueryPlanHistory returns plan summaries, newest first.
func (s *Store) QueryPlanHistory(ctx context.Context, userID, limit int) ([]models.PlanSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, goal, experience_level, days_per_week, strategy, underfill_warning, created_at
		 FROM plans WHERE user_id = ?
		 ORDER BY created_at DESC
		 LIMIT ?`,
		userID, storage.HistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying plan history: %w", err)
	}
	defer rows.Close()

	var out []models.PlanSummary
	for rows.Next() {
		var (
			ps      models.PlanSummary
			id      string
			created string
		)
		if err := rows.Scan(&id, &ps.Goal, &ps.ExperienceLevel, &ps.DaysPerWeek, &ps.Strategy,
			&ps.UnderfillWarning, &created); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		if ps.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("plan id %q: %w", id, err)
		}
		if ps.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("plan %s created_at: %w", id, err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

// PrunePlanHistory deletes plans created before cutoff, keeping current plans.
func (s *Store) PrunePlanHistory(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM plans WHERE created_at < ? AND id NOT IN (SELECT plan_id FROM current_plans)`,
		cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("pruning plan history: %w", err)
	}
	return res.RowsAffected()
}
