package generator

import (
	"errors"
	"testing"

	"github.com/meltforce/fitplan/internal/models"
)

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.5, 3},
		{2.4999, 2},
		{6.4, 6},
		{9.6, 10},
		{5 * 0.5, 3},
		{12 * 1.2, 14},
		{3 * 0.8, 2},
		{0, 0},
	}
	for _, tt := range tests {
		if got := roundHalfUp(tt.in); got != tt.want {
			t.Errorf("roundHalfUp(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		level models.ExperienceLevel
		want  float64
	}{
		{models.LevelBeginner, 0.8},
		{models.LevelIntermediate, 1.0},
		{models.LevelAdvanced, 1.2},
	}
	for _, tt := range tests {
		got, err := Multiplier(tt.level)
		if err != nil {
			t.Fatalf("Multiplier(%s): %v", tt.level, err)
		}
		if got != tt.want {
			t.Errorf("Multiplier(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}

	if _, err := Multiplier("expert"); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("Multiplier(expert) error = %v, want ErrInvalidProfile", err)
	}
}

// TestScaleRangeProperty checks min = round(min*m) and
// max = max(round(max*m), min) across a grid of ranges and multipliers.
func TestScaleRangeProperty(t *testing.T) {
	for _, m := range []float64{0.5, 0.8, 1.0, 1.2, 1.5} {
		for lo := 0; lo <= 20; lo++ {
			for hi := 0; hi <= 20; hi++ {
				got := ScaleRange(models.Range{Min: lo, Max: hi}, m)
				wantMin := roundHalfUp(float64(lo) * m)
				wantMax := max(roundHalfUp(float64(hi)*m), wantMin)
				if got.Min != wantMin || got.Max != wantMax {
					t.Fatalf("ScaleRange(%d-%d, %v) = %+v, want %d-%d", lo, hi, m, got, wantMin, wantMax)
				}
				if got.Max < got.Min {
					t.Fatalf("ScaleRange(%d-%d, %v) produced min > max", lo, hi, m)
				}
			}
		}
	}
}

func TestScaleRangeClampsInvertedInput(t *testing.T) {
	got := ScaleRange(models.Range{Min: 5, Max: 3}, 1.0)
	if got.Min != 5 || got.Max != 5 {
		t.Errorf("got %+v, want 5-5", got)
	}
}

// TestScale verifies which template fields are scaled and which pass through.
func TestScale(t *testing.T) {
	base, err := Template(models.GoalMuscleGain)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Scale(base, models.LevelAdvanced)
	if err != nil {
		t.Fatal(err)
	}
	// 3*1.2=3.6, 4*1.2=4.8, 8*1.2=9.6, 12*1.2=14.4
	if got.Sets != (models.Range{Min: 4, Max: 5}) {
		t.Errorf("sets = %+v, want 4-5", got.Sets)
	}
	if got.Reps != (models.Range{Min: 10, Max: 14}) {
		t.Errorf("reps = %+v, want 10-14", got.Reps)
	}
	if got.RestSeconds != base.RestSeconds || got.ExercisesPerWorkout != base.ExercisesPerWorkout ||
		got.Intensity != base.Intensity || got.Frequency != base.Frequency {
		t.Errorf("unscaled fields changed: got %+v, base %+v", got, base)
	}

	got, err = Scale(base, models.LevelBeginner)
	if err != nil {
		t.Fatal(err)
	}
	// 3*0.8=2.4, 4*0.8=3.2, 8*0.8=6.4, 12*0.8=9.6
	if got.Sets != (models.Range{Min: 2, Max: 3}) || got.Reps != (models.Range{Min: 6, Max: 10}) {
		t.Errorf("beginner sets/reps = %+v/%+v, want 2-3/6-10", got.Sets, got.Reps)
	}

	if _, err := Scale(base, "guru"); !errors.Is(err, ErrInvalidProfile) {
		t.Errorf("unknown level error = %v, want ErrInvalidProfile", err)
	}
}

func TestTemplateTable(t *testing.T) {
	for _, g := range models.AllGoals {
		tmpl, err := Template(g)
		if err != nil {
			t.Fatalf("Template(%s): %v", g, err)
		}
		if tmpl.ExercisesPerWorkout <= 0 || tmpl.Sets.Min > tmpl.Sets.Max || tmpl.Reps.Min > tmpl.Reps.Max {
			t.Errorf("Template(%s) = %+v is inconsistent", g, tmpl)
		}
	}
	if len(Templates()) != len(models.AllGoals) {
		t.Errorf("Templates() has %d entries, want %d", len(Templates()), len(models.AllGoals))
	}

	_, err := Template("strength")
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("Template(strength) error = %v, want ErrInvalidProfile", err)
	}
	var pe *ProfileError
	if !errors.As(err, &pe) || pe.Field != "goal" {
		t.Errorf("Template(strength) error = %#v, want ProfileError on goal", err)
	}
}
