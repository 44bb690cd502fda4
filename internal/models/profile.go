package models

import "fmt"

// Goal is the user's training goal.
type Goal string

const (
	GoalMuscleGain Goal = "muscleGain"
	GoalEndurance  Goal = "endurance"
	GoalWeightLoss Goal = "weightLoss"
)

// AllGoals lists the recognized goals.
var AllGoals = []Goal{GoalMuscleGain, GoalEndurance, GoalWeightLoss}

// ParseGoal validates a goal tag.
func ParseGoal(s string) (Goal, error) {
	switch g := Goal(s); g {
	case GoalMuscleGain, GoalEndurance, GoalWeightLoss:
		return g, nil
	}
	return "", fmt.Errorf("unknown goal %q", s)
}

// ExperienceLevel is the user's self-reported training experience.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// AllLevels lists the recognized experience levels.
var AllLevels = []ExperienceLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseExperienceLevel validates a level tag.
func ParseExperienceLevel(s string) (ExperienceLevel, error) {
	switch l := ExperienceLevel(s); l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return l, nil
	}
	return "", fmt.Errorf("unknown experience level %q", s)
}

// UserProfile is the generation input describing one user.
type UserProfile struct {
	Goal                 Goal            `json:"goal"`
	ExperienceLevel      ExperienceLevel `json:"experience_level"`
	AvailableEquipment   []string        `json:"available_equipment"`
	DaysPerWeek          int             `json:"days_per_week"`
	AvailableTimeMinutes *int            `json:"available_time_minutes,omitempty"`
}
