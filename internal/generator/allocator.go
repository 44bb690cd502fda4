package generator

import "github.com/meltforce/fitplan/internal/models"

// Allocate rescales the durations of time-based instances so they add up to
// availableMinutes, rounding each one half-up to whole minutes. Instances
// without a duration are returned as they are. When the nominal total is
// zero there is nothing to scale and the instances are returned unchanged.
// The input slice is never modified.
func Allocate(instances []models.ExerciseInstance, availableMinutes float64) []models.ExerciseInstance {
	out := make([]models.ExerciseInstance, len(instances))
	copy(out, instances)

	var nominal float64
	for _, inst := range out {
		if inst.HasDuration() {
			nominal += *inst.DurationMinutes
		}
	}
	if nominal == 0 {
		return out
	}

	ratio := availableMinutes / nominal
	for i, inst := range out {
		if !inst.HasDuration() {
			continue
		}
		d := float64(roundHalfUp(*inst.DurationMinutes * ratio))
		out[i].DurationMinutes = &d
	}
	return out
}
