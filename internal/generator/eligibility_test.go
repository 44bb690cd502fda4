package generator

import (
	"testing"

	"github.com/meltforce/fitplan/internal/models"
)

func exercise(id string, muscles []models.MuscleGroup, equipment ...string) models.ExerciseDefinition {
	return models.ExerciseDefinition{
		ID:                id,
		Name:              id,
		Kind:              models.KindStrength,
		TargetMuscles:     muscles,
		RequiredEquipment: equipment,
		Difficulty:        models.DifficultyBeginner,
	}
}

// TestAnyEquipment pins the permissive matching policy: one available item
// satisfies a multi-item requirement.
func TestAnyEquipment(t *testing.T) {
	tests := []struct {
		name      string
		required  []string
		available []string
		want      bool
	}{
		{"empty requirement", nil, nil, true},
		{"none requirement", []string{"none"}, nil, true},
		{"none alongside gear", []string{"barbell", "none"}, nil, true},
		{"single match", []string{"dumbbells"}, []string{"dumbbells"}, true},
		{"one of two present", []string{"barbell", "bench"}, []string{"bench"}, true},
		{"nothing present", []string{"barbell", "bench"}, []string{"dumbbells"}, false},
		{"no equipment at all", []string{"kettlebell"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyEquipment(tt.required, tt.available); got != tt.want {
				t.Errorf("AnyEquipment(%v, %v) = %v, want %v", tt.required, tt.available, got, tt.want)
			}
		})
	}
}

// TestAllEquipment verifies the strict alternative policy.
func TestAllEquipment(t *testing.T) {
	if AllEquipment([]string{"barbell", "bench"}, []string{"bench"}) {
		t.Error("AllEquipment should reject a partial match")
	}
	if !AllEquipment([]string{"barbell", "bench"}, []string{"bench", "barbell"}) {
		t.Error("AllEquipment should accept a full match")
	}
	if !AllEquipment([]string{"none"}, nil) {
		t.Error("AllEquipment should accept none")
	}
}

// TestEligible verifies the combined muscle and equipment filter.
func TestEligible(t *testing.T) {
	all := []models.ExerciseDefinition{
		exercise("push-ups", []models.MuscleGroup{models.MuscleChest, models.MuscleArms}, "none"),
		exercise("bench-press", []models.MuscleGroup{models.MuscleChest}, "barbell", "bench"),
		exercise("rows", []models.MuscleGroup{models.MuscleBack}, "dumbbells"),
		exercise("curls", []models.MuscleGroup{models.MuscleArms}, "dumbbells"),
		exercise("squats", []models.MuscleGroup{models.MuscleLegs}),
	}
	push := SplitTargetMuscles(SplitPush)

	got := Eligible(all, push, []string{"bench"})
	ids := idsOf(got)
	want := []string{"push-ups", "bench-press"}
	if len(ids) != len(want) {
		t.Fatalf("eligible = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("eligible[%d] = %s, want %s", i, ids[i], want[i])
		}
	}

	got = Eligible(all, push, []string{"dumbbells"})
	if ids := idsOf(got); len(ids) != 2 || ids[0] != "push-ups" || ids[1] != "curls" {
		t.Errorf("eligible with dumbbells = %v, want [push-ups curls]", ids)
	}

	got = EligibleWith(AllEquipment, all, push, []string{"bench"})
	if ids := idsOf(got); len(ids) != 1 || ids[0] != "push-ups" {
		t.Errorf("strict eligible = %v, want [push-ups]", ids)
	}
}

// TestEligibleEmpty verifies that no matches yields an empty result, not an error.
func TestEligibleEmpty(t *testing.T) {
	all := []models.ExerciseDefinition{exercise("squats", []models.MuscleGroup{models.MuscleLegs})}
	if got := Eligible(all, SplitTargetMuscles(SplitPull), nil); len(got) != 0 {
		t.Errorf("eligible = %v, want empty", idsOf(got))
	}
}

func idsOf(defs []models.ExerciseDefinition) []string {
	ids := make([]string, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	return ids
}
