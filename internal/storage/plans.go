package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/meltforce/fitplan/internal/models"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 200
)

// SavePlan appends the plan to the user's history and makes it the current
// plan, in one transaction. The plan must already carry its ID.
func (db *DB) SavePlan(ctx context.Context, userID int, plan *models.WorkoutPlan) error {
	if plan.ID == uuid.Nil {
		return fmt.Errorf("saving plan: missing id")
	}
	doc, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO plan_history (id, user_id, goal, experience_level, days_per_week, strategy,
		 underfill_warning, created_at, plan)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		plan.ID, userID, string(plan.Goal), string(plan.ExperienceLevel), plan.DaysPerWeek,
		plan.Strategy, plan.UnderfillWarning, plan.CreatedAt, doc)
	if err != nil {
		return fmt.Errorf("appending plan history: %w", err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO current_plans (user_id, plan_id, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (user_id) DO UPDATE SET plan_id = EXCLUDED.plan_id, updated_at = NOW()`,
		userID, plan.ID)
	if err != nil {
		return fmt.Errorf("setting current plan: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing plan: %w", err)
	}
	return nil
}

// GetCurrentPlan returns the user's current plan, or ErrNotFound if none
// has been generated yet.
func (db *DB) GetCurrentPlan(ctx context.Context, userID int) (*models.WorkoutPlan, error) {
	var doc []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT h.plan FROM current_plans c
		 JOIN plan_history h ON h.id = c.plan_id
		 WHERE c.user_id = $1`,
		userID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying current plan: %w", err)
	}
	return decodePlan(doc)
}

// GetPlan returns one plan from the user's history.
func (db *DB) GetPlan(ctx context.Context, userID int, id uuid.UUID) (*models.WorkoutPlan, error) {
	var doc []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT plan FROM plan_history WHERE id = $1 AND user_id = $2`,
		id, userID).Scan(&doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying plan %s: %w", id, err)
	}
	return decodePlan(doc)
}

// QueryPlanHistory returns the user's most recent plans, newest first.
func (db *DB) QueryPlanHistory(ctx context.Context, userID, limit int) ([]models.PlanSummary, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, goal, experience_level, days_per_week, strategy, underfill_warning, created_at
		 FROM plan_history
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, HistoryLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying plan history: %w", err)
	}
	defer rows.Close()

	result := []models.PlanSummary{}
	for rows.Next() {
		var (
			s     models.PlanSummary
			goal  string
			level string
		)
		if err := rows.Scan(&s.ID, &goal, &level, &s.DaysPerWeek, &s.Strategy,
			&s.UnderfillWarning, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan history: %w", err)
		}
		s.Goal = models.Goal(goal)
		s.ExperienceLevel = models.ExperienceLevel(level)
		result = append(result, s)
	}
	return result, rows.Err()
}

// PrunePlanHistory deletes history entries created before cutoff. Plans that
// are still some user's current plan are kept.
func (db *DB) PrunePlanHistory(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM plan_history
		 WHERE created_at < $1
		   AND id NOT IN (SELECT plan_id FROM current_plans)`,
		cutoff)
	if err != nil {
		return 0, fmt.Errorf("pruning plan history: %w", err)
	}
	return tag.RowsAffected(), nil
}

// HistoryLimit clamps a requested page size.
func HistoryLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultHistoryLimit
	case limit > maxHistoryLimit:
		return maxHistoryLimit
	default:
		return limit
	}
}

func decodePlan(doc []byte) (*models.WorkoutPlan, error) {
	var p models.WorkoutPlan
	if err := json.Unmarshal(doc, &p); err != nil {
		return nil, fmt.Errorf("decoding plan: %w", err)
	}
	return &p, nil
}
