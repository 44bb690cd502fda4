package generator

import "github.com/meltforce/fitplan/internal/models"

// Library returns a fixed, pre-prescribed exercise list for a goal and level.
// Returned slices must be safe for the caller to modify.
type Library func(goal models.Goal, level models.ExperienceLevel) ([]models.ExerciseInstance, error)

func repsEntry(id, name string, kind models.ExerciseKind, sets, reps int) models.ExerciseInstance {
	return models.ExerciseInstance{
		ExerciseID: id,
		Name:       name,
		Kind:       kind,
		Sets:       &models.Range{Min: sets, Max: sets},
		Reps:       &models.Range{Min: reps, Max: reps},
	}
}

func timedEntry(id, name string, kind models.ExerciseKind, sets, seconds int) models.ExerciseInstance {
	minutes := float64(seconds) / 60
	return models.ExerciseInstance{
		ExerciseID:      id,
		Name:            name,
		Kind:            kind,
		Sets:            &models.Range{Min: sets, Max: sets},
		DurationMinutes: &minutes,
	}
}

// DefaultLibrary is the built-in goal-by-level exercise list. Every
// combination of known goal and level has an entry.
func DefaultLibrary(goal models.Goal, level models.ExperienceLevel) ([]models.ExerciseInstance, error) {
	if _, err := Template(goal); err != nil {
		return nil, err
	}
	var list []models.ExerciseInstance
	switch level {
	case models.LevelBeginner:
		list = beginnerList(goal)
	case models.LevelIntermediate:
		list = intermediateList(goal)
	case models.LevelAdvanced:
		list = advancedList(goal)
	default:
		return nil, &ProfileError{Field: "experience_level", Reason: "unknown level " + quote(string(level))}
	}
	return list, nil
}

func beginnerList(goal models.Goal) []models.ExerciseInstance {
	switch goal {
	case models.GoalWeightLoss:
		return []models.ExerciseInstance{
			timedEntry("jumping-jacks", "Jumping Jacks", models.KindCardio, 2, 30),
			repsEntry("squats", "Squats", models.KindStrength, 2, 10),
			timedEntry("mountain-climbers", "Mountain Climbers", models.KindCardio, 2, 20),
			timedEntry("marching-in-place", "Marching in Place", models.KindCardio, 2, 60),
			timedEntry("high-knees", "High Knees", models.KindCardio, 2, 20),
		}
	case models.GoalMuscleGain:
		return []models.ExerciseInstance{
			repsEntry("bodyweight-squats", "Bodyweight Squats", models.KindStrength, 3, 10),
			repsEntry("knee-push-ups", "Knee Push-Ups", models.KindStrength, 3, 8),
			repsEntry("wall-pull-ups", "Wall Pull-Ups", models.KindStrength, 2, 8),
			timedEntry("plank", "Plank", models.KindStrength, 2, 20),
			repsEntry("negative-push-ups", "Negative Push-Ups", models.KindStrength, 2, 5),
		}
	default: // endurance
		return []models.ExerciseInstance{
			timedEntry("walking", "Walking", models.KindCardio, 1, 20*60),
			timedEntry("easy-cycling", "Easy Cycling", models.KindCardio, 1, 15*60),
			timedEntry("easy-swimming", "Swimming at Your Own Pace", models.KindCardio, 1, 10*60),
			repsEntry("lunges", "Lunges (per leg)", models.KindStrength, 2, 10),
			repsEntry("low-step-ups", "Low Step-Ups (per leg)", models.KindStrength, 2, 10),
		}
	}
}

func intermediateList(goal models.Goal) []models.ExerciseInstance {
	switch goal {
	case models.GoalWeightLoss:
		return []models.ExerciseInstance{
			repsEntry("burpees", "Burpees", models.KindCardio, 3, 12),
			timedEntry("mountain-climbers", "Mountain Climbers", models.KindCardio, 3, 45),
			timedEntry("jump-rope", "Jump Rope", models.KindCardio, 3, 120),
			timedEntry("high-knees", "High Knees", models.KindCardio, 3, 45),
			repsEntry("box-jumps", "Box Jumps", models.KindStrength, 3, 15),
		}
	case models.GoalMuscleGain:
		return []models.ExerciseInstance{
			repsEntry("push-ups", "Push-Ups", models.KindStrength, 4, 15),
			repsEntry("band-assisted-pull-ups", "Band-Assisted Pull-Ups", models.KindStrength, 3, 10),
			repsEntry("dips", "Dips", models.KindStrength, 3, 12),
			repsEntry("pike-push-ups", "Pike Push-Ups", models.KindStrength, 3, 10),
			repsEntry("diamond-push-ups", "Diamond Push-Ups", models.KindStrength, 3, 12),
		}
	default: // endurance
		return []models.ExerciseInstance{
			timedEntry("interval-running", "Interval Running", models.KindCardio, 1, 30*60),
			timedEntry("hiit-cycling", "HIIT Cycling", models.KindCardio, 1, 25*60),
			timedEntry("interval-swimming", "Interval Swimming", models.KindCardio, 1, 30*60),
			repsEntry("jumping-lunges", "Jumping Lunges (per leg)", models.KindStrength, 3, 20),
			repsEntry("box-step-ups", "Box Step-Ups (per leg)", models.KindStrength, 3, 15),
		}
	}
}

func advancedList(goal models.Goal) []models.ExerciseInstance {
	switch goal {
	case models.GoalWeightLoss:
		return []models.ExerciseInstance{
			repsEntry("burpee-pull-ups", "Burpee Pull-Ups", models.KindStrength, 4, 10),
			repsEntry("double-unders", "Double Unders", models.KindCardio, 4, 50),
			repsEntry("handstand-push-ups", "Handstand Push-Ups", models.KindStrength, 3, 8),
			repsEntry("muscle-ups", "Muscle-Ups", models.KindStrength, 3, 5),
			repsEntry("pistol-squats", "Pistol Squats (per leg)", models.KindStrength, 3, 8),
		}
	case models.GoalMuscleGain:
		return []models.ExerciseInstance{
			repsEntry("one-arm-push-ups", "One-Arm Push-Ups (per side)", models.KindStrength, 4, 5),
			repsEntry("muscle-ups", "Muscle-Ups", models.KindStrength, 4, 8),
			timedEntry("front-lever-holds", "Front Lever Holds", models.KindStrength, 3, 20),
			repsEntry("planche-push-ups", "Planche Push-Ups", models.KindStrength, 3, 5),
			timedEntry("human-flag-holds", "Human Flag Holds", models.KindStrength, 3, 15),
		}
	default: // endurance
		return []models.ExerciseInstance{
			timedEntry("tabata", "Tabata (20/10)", models.KindCardio, 8, 30),
			timedEntry("crossfit-wod", "CrossFit WOD", models.KindCardio, 1, 45*60),
			timedEntry("triathlon-training", "Triathlon Training", models.KindCardio, 1, 60*60),
			timedEntry("plyometrics", "Plyometric Drills", models.KindStrength, 4, 30),
			timedEntry("complex-movements", "Complex Movements", models.KindStrength, 4, 45),
		}
	}
}
