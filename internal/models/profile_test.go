package models

import "testing"

// TestParseGoal verifies that only the three known goals are accepted.
func TestParseGoal(t *testing.T) {
	tests := []struct {
		in      string
		want    Goal
		wantErr bool
	}{
		{in: "muscleGain", want: GoalMuscleGain},
		{in: "endurance", want: GoalEndurance},
		{in: "weightLoss", want: GoalWeightLoss},
		{in: "abnehmen", wantErr: true},
		{in: "", wantErr: true},
		{in: "MuscleGain", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseGoal(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseGoal(%q) = %q, want error", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGoal(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGoal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestParseExperienceLevel verifies level parsing, including rejection of unknown values.
func TestParseExperienceLevel(t *testing.T) {
	for _, l := range AllLevels {
		got, err := ParseExperienceLevel(string(l))
		if err != nil || got != l {
			t.Errorf("ParseExperienceLevel(%q) = %q, %v", l, got, err)
		}
	}
	if _, err := ParseExperienceLevel("expert"); err == nil {
		t.Error("expected error for unknown level")
	}
}

// TestExerciseValidate verifies required catalog fields.
func TestExerciseValidate(t *testing.T) {
	ok := ExerciseDefinition{
		ID: "squats", Name: "Squats", Kind: KindStrength,
		TargetMuscles: []MuscleGroup{MuscleLegs}, Difficulty: DifficultyBeginner,
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noMuscles := ok
	noMuscles.TargetMuscles = nil
	if err := noMuscles.Validate(); err == nil {
		t.Error("expected error for missing target muscles")
	}

	badKind := ok
	badKind.Kind = "hiit"
	if err := badKind.Validate(); err == nil {
		t.Error("expected error for unknown kind")
	}
}

// TestDayWorkoutUnderfilled verifies the underfill check against the target count.
func TestDayWorkoutUnderfilled(t *testing.T) {
	d := DayWorkout{TargetCount: 3, Exercises: make([]ExerciseInstance, 2)}
	if !d.Underfilled() {
		t.Error("2 of 3 exercises should be underfilled")
	}
	d.Exercises = make([]ExerciseInstance, 3)
	if d.Underfilled() {
		t.Error("3 of 3 exercises should not be underfilled")
	}
}
