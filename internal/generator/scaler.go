package generator

import (
	"math"

	"github.com/meltforce/fitplan/internal/models"
)

// Multiplier returns the experience scaling factor for a level.
func Multiplier(level models.ExperienceLevel) (float64, error) {
	switch level {
	case models.LevelBeginner:
		return 0.8, nil
	case models.LevelIntermediate:
		return 1.0, nil
	case models.LevelAdvanced:
		return 1.2, nil
	default:
		return 0, &ProfileError{Field: "experience_level", Reason: "unknown level " + quote(string(level))}
	}
}

// Scale applies the experience multiplier to the sets and reps ranges of a
// goal template. Every other field passes through unchanged.
func Scale(t models.GoalTemplate, level models.ExperienceLevel) (models.GoalTemplate, error) {
	m, err := Multiplier(level)
	if err != nil {
		return models.GoalTemplate{}, err
	}
	t.Sets = ScaleRange(t.Sets, m)
	t.Reps = ScaleRange(t.Reps, m)
	return t, nil
}

// ScaleRange multiplies both bounds independently and rounds half-up. If
// rounding pushes max below min, max is clamped to min.
func ScaleRange(r models.Range, multiplier float64) models.Range {
	out := models.Range{
		Min: roundHalfUp(float64(r.Min) * multiplier),
		Max: roundHalfUp(float64(r.Max) * multiplier),
	}
	if out.Max < out.Min {
		out.Max = out.Min
	}
	return out
}

// roundHalfUp rounds to the nearest integer with ties going up. Products
// such as 5*0.5 can land a hair below the tie in floating point, so the
// value is snapped to 1e-9 first.
func roundHalfUp(x float64) int {
	snapped := math.Round(x*1e9) / 1e9
	return int(math.Floor(snapped + 0.5))
}
