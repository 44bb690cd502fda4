package generator

import (
	"slices"

	"github.com/meltforce/fitplan/internal/models"
)

// EquipmentPolicy decides whether a user's equipment satisfies an exercise's
// requirement.
type EquipmentPolicy func(required, available []string) bool

// AnyEquipment is the default policy: an exercise with no requirement (or
// one listing "none") is always satisfied; otherwise a single matching item
// is enough. It does not require the full set.
func AnyEquipment(required, available []string) bool {
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if r == models.EquipmentNone || slices.Contains(available, r) {
			return true
		}
	}
	return false
}

// AllEquipment requires every listed item to be available. "none" entries
// are ignored.
func AllEquipment(required, available []string) bool {
	for _, r := range required {
		if r == models.EquipmentNone {
			continue
		}
		if !slices.Contains(available, r) {
			return false
		}
	}
	return true
}

// Eligible returns the exercises that target at least one of the given
// muscles and whose equipment is satisfied under AnyEquipment. The input is
// not modified; the result is a fresh slice in catalog order.
func Eligible(exercises []models.ExerciseDefinition, target []models.MuscleGroup, available []string) []models.ExerciseDefinition {
	return EligibleWith(AnyEquipment, exercises, target, available)
}

// EligibleWith is Eligible with an explicit equipment policy.
func EligibleWith(policy EquipmentPolicy, exercises []models.ExerciseDefinition, target []models.MuscleGroup, available []string) []models.ExerciseDefinition {
	var out []models.ExerciseDefinition
	for _, e := range exercises {
		if targetsAny(e, target) && policy(e.RequiredEquipment, available) {
			out = append(out, e)
		}
	}
	return out
}

func targetsAny(e models.ExerciseDefinition, target []models.MuscleGroup) bool {
	for _, m := range e.TargetMuscles {
		if slices.Contains(target, m) {
			return true
		}
	}
	return false
}
