package generator

import "github.com/meltforce/fitplan/internal/models"

// Template returns the unscaled prescription for a goal. Unknown goals are a
// profile error rather than a silent fallback to another goal's numbers.
func Template(goal models.Goal) (models.GoalTemplate, error) {
	switch goal {
	case models.GoalMuscleGain:
		return models.GoalTemplate{
			Sets:                models.Range{Min: 3, Max: 4},
			Reps:                models.Range{Min: 8, Max: 12},
			RestSeconds:         90,
			ExercisesPerWorkout: 6,
			Intensity:           "high",
			Frequency:           models.Range{Min: 3, Max: 5},
		}, nil
	case models.GoalEndurance:
		return models.GoalTemplate{
			Sets:                models.Range{Min: 2, Max: 3},
			Reps:                models.Range{Min: 15, Max: 20},
			RestSeconds:         45,
			ExercisesPerWorkout: 8,
			Intensity:           "moderate",
			Frequency:           models.Range{Min: 3, Max: 6},
		}, nil
	case models.GoalWeightLoss:
		return models.GoalTemplate{
			Sets:                models.Range{Min: 3, Max: 4},
			Reps:                models.Range{Min: 12, Max: 15},
			RestSeconds:         60,
			ExercisesPerWorkout: 7,
			Intensity:           "moderate-high",
			Frequency:           models.Range{Min: 4, Max: 6},
		}, nil
	default:
		return models.GoalTemplate{}, &ProfileError{Field: "goal", Reason: "no template for goal " + quote(string(goal))}
	}
}

// Templates returns every goal's unscaled template, keyed by goal.
func Templates() map[models.Goal]models.GoalTemplate {
	out := make(map[models.Goal]models.GoalTemplate, len(models.AllGoals))
	for _, g := range models.AllGoals {
		t, err := Template(g)
		if err != nil {
			panic(err)
		}
		out[g] = t
	}
	return out
}
