package storage

import (
	"slices"
	"testing"

	"github.com/meltforce/fitplan/internal/models"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		offset, n int
		want      string
	}{
		{0, 3, "($1,$2,$3)"},
		{12, 2, "($13,$14)"},
		{0, 1, "($1)"},
	}
	for _, tt := range tests {
		if got := placeholders(tt.offset, tt.n); got != tt.want {
			t.Errorf("placeholders(%d, %d) = %q, want %q", tt.offset, tt.n, got, tt.want)
		}
	}
}

func TestHistoryLimit(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 20},
		{-5, 20},
		{1, 1},
		{50, 50},
		{10_000, 200},
	}
	for _, tt := range tests {
		if got := HistoryLimit(tt.in); got != tt.want {
			t.Errorf("HistoryLimit(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMuscleConversion(t *testing.T) {
	in := []models.MuscleGroup{models.MuscleChest, models.MuscleFullBody}
	strs := muscleStrings(in)
	if !slices.Equal(strs, []string{"chest", "full_body"}) {
		t.Errorf("muscleStrings = %v", strs)
	}
	if back := parseMuscles(strs); !slices.Equal(back, in) {
		t.Errorf("parseMuscles = %v, want %v", back, in)
	}
}

func TestNonNil(t *testing.T) {
	if got := nonNil(nil); got == nil || len(got) != 0 {
		t.Errorf("nonNil(nil) = %#v, want empty slice", got)
	}
	in := []string{"bench"}
	if got := nonNil(in); !slices.Equal(got, in) {
		t.Errorf("nonNil(%v) = %v", in, got)
	}
}

func TestDecodePlan(t *testing.T) {
	doc := []byte(`{
		"id": "0b7a3d0e-7c1e-4f6a-9d3e-2a1b5c8d9e0f",
		"goal": "endurance",
		"experience_level": "beginner",
		"days_per_week": 1,
		"strategy": "catalog",
		"created_at": "2025-03-01T09:00:00Z",
		"workouts": [{"day": 1, "split_name": "Full Body", "target_count": 8,
			"exercises": [{"exercise_id": "plank", "name": "Plank", "kind": "strength", "duration_minutes": 1}]}]
	}`)
	p, err := decodePlan(doc)
	if err != nil {
		t.Fatalf("decodePlan: %v", err)
	}
	if p.ID.String() != "0b7a3d0e-7c1e-4f6a-9d3e-2a1b5c8d9e0f" || p.Goal != models.GoalEndurance {
		t.Errorf("decoded = %+v", p)
	}
	if len(p.Workouts) != 1 || *p.Workouts[0].Exercises[0].DurationMinutes != 1 {
		t.Errorf("workouts = %+v", p.Workouts)
	}

	if _, err := decodePlan([]byte(`{"id": 12`)); err == nil {
		t.Error("expected error for truncated document")
	}
}
