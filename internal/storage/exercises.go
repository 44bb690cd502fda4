package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/meltforce/fitplan/internal/models"
)

const exerciseColumns = 12

// UpsertExercises batch-writes catalog definitions, replacing rows with the
// same id. Returns the number of rows written.
func (db *DB) UpsertExercises(ctx context.Context, defs []models.ExerciseDefinition) (int64, error) {
	if len(defs) == 0 {
		return 0, nil
	}

	query := `INSERT INTO exercises (id, name, kind, target_muscles, required_equipment, difficulty,
	 base_sets, base_reps, base_duration_seconds, rest_seconds, description, instructions) VALUES `
	args := make([]any, 0, len(defs)*exerciseColumns)
	valueStrings := make([]string, 0, len(defs))

	for i, d := range defs {
		valueStrings = append(valueStrings, placeholders(i*exerciseColumns, exerciseColumns))
		args = append(args, d.ID, d.Name, string(d.Kind), muscleStrings(d.TargetMuscles),
			nonNil(d.RequiredEquipment), string(d.Difficulty), d.BaseSets, d.BaseReps,
			d.BaseDurationSeconds, d.RestSeconds, d.Description, nonNil(d.Instructions))
	}

	query += strings.Join(valueStrings, ",") + ` ON CONFLICT (id) DO UPDATE SET
	 name = EXCLUDED.name, kind = EXCLUDED.kind, target_muscles = EXCLUDED.target_muscles,
	 required_equipment = EXCLUDED.required_equipment, difficulty = EXCLUDED.difficulty,
	 base_sets = EXCLUDED.base_sets, base_reps = EXCLUDED.base_reps,
	 base_duration_seconds = EXCLUDED.base_duration_seconds, rest_seconds = EXCLUDED.rest_seconds,
	 description = EXCLUDED.description, instructions = EXCLUDED.instructions, updated_at = NOW()`

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("upserting exercises: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListExercises returns every catalog row ordered by id.
func (db *DB) ListExercises(ctx context.Context) ([]models.ExerciseDefinition, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, name, kind, target_muscles, required_equipment, difficulty,
		 base_sets, base_reps, base_duration_seconds, rest_seconds, description, instructions
		 FROM exercises ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying exercises: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseDefinition
	for rows.Next() {
		var (
			d       models.ExerciseDefinition
			kind    string
			diff    string
			muscles []string
		)
		if err := rows.Scan(&d.ID, &d.Name, &kind, &muscles, &d.RequiredEquipment, &diff,
			&d.BaseSets, &d.BaseReps, &d.BaseDurationSeconds, &d.RestSeconds,
			&d.Description, &d.Instructions); err != nil {
			return nil, fmt.Errorf("scanning exercise: %w", err)
		}
		d.Kind = models.ExerciseKind(kind)
		d.Difficulty = models.Difficulty(diff)
		d.TargetMuscles = parseMuscles(muscles)
		result = append(result, d)
	}
	return result, rows.Err()
}

// placeholders renders "($n,...)" for one row starting after offset.
func placeholders(offset, n int) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 1; i <= n; i++ {
		if i > 1 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "$%d", offset+i)
	}
	b.WriteByte(')')
	return b.String()
}

func muscleStrings(ms []models.MuscleGroup) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = string(m)
	}
	return out
}

func parseMuscles(ss []string) []models.MuscleGroup {
	out := make([]models.MuscleGroup, len(ss))
	for i, s := range ss {
		out[i] = models.MuscleGroup(s)
	}
	return out
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
