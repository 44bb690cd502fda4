package localstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/storage"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func planAt(created time.Time, strategy string) *models.WorkoutPlan {
	return &models.WorkoutPlan{
		ID:              uuid.New(),
		Goal:            models.GoalEndurance,
		ExperienceLevel: models.LevelBeginner,
		DaysPerWeek:     2,
		Strategy:        strategy,
		CreatedAt:       created,
		Workouts: []models.DayWorkout{
			{Day: 1, SplitName: "Upper Body", TargetCount: 8, Exercises: []models.ExerciseInstance{
				{ExerciseID: "push-ups", Name: "Push-Ups", Kind: models.KindStrength, RestSeconds: 45},
			}},
		},
		UnderfillWarning: true,
	}
}

func TestOpenCreatesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
		t.Errorf("database file: %v", err)
	}
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)

	if _, err := s.GetProfile(ctx, 1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	minutes := 40
	p := models.UserProfile{
		Goal: models.GoalWeightLoss, ExperienceLevel: models.LevelAdvanced,
		AvailableEquipment: []string{"kettlebell"}, DaysPerWeek: 5, AvailableTimeMinutes: &minutes,
	}
	if err := s.UpsertProfile(ctx, 1, p); err != nil {
		t.Fatal(err)
	}
	p.DaysPerWeek = 4
	if err := s.UpsertProfile(ctx, 1, p); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetProfile(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got.DaysPerWeek != 4 || got.AvailableTimeMinutes == nil || *got.AvailableTimeMinutes != 40 {
		t.Errorf("profile = %+v", got)
	}
}

func TestPlanHistory(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

	if _, err := s.GetCurrentPlan(ctx, 1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	first := planAt(base, "catalog")
	second := planAt(base.Add(90*time.Minute), "fixed")
	for _, p := range []*models.WorkoutPlan{first, second} {
		if err := s.SavePlan(ctx, 1, p); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SavePlan(ctx, 2, planAt(base, "catalog")); err != nil {
		t.Fatal(err)
	}

	cur, err := s.GetCurrentPlan(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if cur.ID != second.ID || cur.Workouts[0].Exercises[0].ExerciseID != "push-ups" {
		t.Errorf("current = %+v", cur)
	}

	hist, err := s.QueryPlanHistory(ctx, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 2 || hist[0].ID != second.ID || hist[1].ID != first.ID {
		t.Fatalf("history = %+v", hist)
	}
	if !hist[1].CreatedAt.Equal(base) || !hist[1].UnderfillWarning || hist[1].Goal != models.GoalEndurance {
		t.Errorf("summary = %+v", hist[1])
	}

	if _, err := s.GetPlan(ctx, 2, first.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("other user's plan: error = %v, want ErrNotFound", err)
	}
	got, err := s.GetPlan(ctx, 1, first.ID)
	if err != nil || got.Strategy != "catalog" {
		t.Errorf("GetPlan = %+v, %v", got, err)
	}
}

func TestSavePlanRequiresID(t *testing.T) {
	s := openTemp(t)
	p := planAt(time.Now(), "catalog")
	p.ID = uuid.Nil
	if err := s.SavePlan(context.Background(), 1, p); err == nil {
		t.Fatal("expected error for plan without id")
	}
}

func TestPrunePlanHistory(t *testing.T) {
	ctx := context.Background()
	s := openTemp(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	old := planAt(now.AddDate(0, 0, -60), "catalog")
	recent := planAt(now.AddDate(0, 0, -1), "catalog")
	oldCurrent := planAt(now.AddDate(0, 0, -90), "fixed")
	for _, p := range []*models.WorkoutPlan{old, recent} {
		if err := s.SavePlan(ctx, 1, p); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SavePlan(ctx, 2, oldCurrent); err != nil {
		t.Fatal(err)
	}

	n, err := s.PrunePlanHistory(ctx, now.AddDate(0, 0, -30))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("pruned %d, want 1", n)
	}
	if _, err := s.GetPlan(ctx, 2, oldCurrent.ID); err != nil {
		t.Errorf("current plan was pruned: %v", err)
	}
}
