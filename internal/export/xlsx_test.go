package export

import (
	"bytes"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/meltforce/fitplan/internal/models"
)

func minutes(v float64) *float64 { return &v }

func samplePlan() *models.WorkoutPlan {
	return &models.WorkoutPlan{
		ID:              uuid.MustParse("6f1c2b9e-3d4a-4e5f-8a7b-1c2d3e4f5a6b"),
		Goal:            models.GoalWeightLoss,
		ExperienceLevel: models.LevelBeginner,
		DaysPerWeek:     2,
		Strategy:        "catalog",
		CreatedAt:       time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Template: models.GoalTemplate{
			Sets:                models.Range{Min: 2, Max: 3},
			Reps:                models.Range{Min: 10, Max: 12},
			RestSeconds:         60,
			ExercisesPerWorkout: 7,
			Intensity:           "moderate-high",
			Frequency:           models.Range{Min: 4, Max: 6},
		},
		Workouts: []models.DayWorkout{
			{
				Day: 1, SplitName: "Upper Body", TargetCount: 2,
				Exercises: []models.ExerciseInstance{
					{ExerciseID: "push-ups", Name: "Push-ups", Kind: models.KindStrength,
						Sets: &models.Range{Min: 2, Max: 3}, Reps: &models.Range{Min: 10, Max: 12},
						RestSeconds: 60, Intensity: "moderate-high"},
					{ExerciseID: "jump-rope", Name: "Jump Rope", Kind: models.KindCardio,
						DurationMinutes: minutes(5), RestSeconds: 30, Intensity: "moderate-high"},
				},
			},
			{
				Day: 2, SplitName: "Lower Body", TargetCount: 7,
				Exercises: []models.ExerciseInstance{
					{ExerciseID: "squats", Name: "Squats", Kind: models.KindStrength,
						Sets: &models.Range{Min: 3, Max: 3}, Reps: &models.Range{Min: 12, Max: 12}},
				},
			},
		},
		UnderfillWarning: true,
	}
}

func TestWritePlan(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlan(&buf, samplePlan()); err != nil {
		t.Fatalf("WritePlan: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	want := []string{SheetOverview, "Day 1 - Upper Body", "Day 2 - Lower Body"}
	if got := f.GetSheetList(); !slices.Equal(got, want) {
		t.Fatalf("sheets = %v, want %v", got, want)
	}

	cells := []struct {
		sheet, cell, want string
	}{
		{SheetOverview, "B1", "6f1c2b9e-3d4a-4e5f-8a7b-1c2d3e4f5a6b"},
		{SheetOverview, "B2", "weightLoss"},
		{SheetOverview, "B7", "2-3"},
		{SheetOverview, "A13", "Warning"},
		{"Day 1 - Upper Body", "A1", "Exercise"},
		{"Day 1 - Upper Body", "A2", "Push-ups"},
		{"Day 1 - Upper Body", "C2", "2-3"},
		{"Day 1 - Upper Body", "D2", "10-12"},
		{"Day 1 - Upper Body", "E2", ""},
		{"Day 1 - Upper Body", "A3", "Jump Rope"},
		{"Day 1 - Upper Body", "C3", ""},
		{"Day 1 - Upper Body", "E3", "5"},
		{"Day 1 - Upper Body", "F3", "30"},
		{"Day 2 - Lower Body", "C2", "3"},
		{"Day 2 - Lower Body", "F2", ""},
	}
	for _, c := range cells {
		got, err := f.GetCellValue(c.sheet, c.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s, %s): %v", c.sheet, c.cell, err)
		}
		if got != c.want {
			t.Errorf("%s!%s = %q, want %q", c.sheet, c.cell, got, c.want)
		}
	}
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		day  models.DayWorkout
		want string
	}{
		{models.DayWorkout{Day: 1, SplitName: "Push"}, "Day 1 - Push"},
		{models.DayWorkout{Day: 4, SplitName: "Shoulders & Core"}, "Day 4 - Shoulders & Core"},
		{models.DayWorkout{Day: 2, SplitName: "Back/Biceps [heavy]"}, "Day 2 - BackBiceps heavy"},
		{models.DayWorkout{Day: 3, SplitName: "A very long split name that overflows"}, "Day 3 - A very long split name"},
	}
	for _, tt := range tests {
		got := SheetName(tt.day)
		if got != tt.want {
			t.Errorf("SheetName(%q) = %q, want %q", tt.day.SplitName, got, tt.want)
		}
		if len([]rune(got)) > maxSheetName {
			t.Errorf("SheetName(%q) is %d characters", tt.day.SplitName, len([]rune(got)))
		}
	}
}

func TestFormatRange(t *testing.T) {
	if got := FormatRange(nil); got != "" {
		t.Errorf("FormatRange(nil) = %q", got)
	}
	if got := FormatRange(&models.Range{Min: 8, Max: 12}); got != "8-12" {
		t.Errorf("got %q, want 8-12", got)
	}
	if got := FormatRange(&models.Range{Min: 3, Max: 3}); got != "3" {
		t.Errorf("got %q, want 3", got)
	}
}
