package models

import (
	"time"

	"github.com/google/uuid"
)

// Range is an inclusive integer range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// GoalTemplate holds the numeric prescription for one goal.
type GoalTemplate struct {
	Sets                Range  `json:"sets_range"`
	Reps                Range  `json:"reps_range"`
	RestSeconds         int    `json:"rest_seconds"`
	ExercisesPerWorkout int    `json:"exercises_per_workout"`
	Intensity           string `json:"intensity"`
	Frequency           Range  `json:"frequency_range"`
}

// ExerciseInstance is an exercise resolved for a specific plan. Either the
// sets/reps fields or DurationMinutes (or both) are populated.
type ExerciseInstance struct {
	ExerciseID      string       `json:"exercise_id"`
	Name            string       `json:"name"`
	Kind            ExerciseKind `json:"kind"`
	Sets            *Range       `json:"sets,omitempty"`
	Reps            *Range       `json:"reps,omitempty"`
	DurationMinutes *float64     `json:"duration_minutes,omitempty"`
	RestSeconds     int          `json:"rest_seconds,omitempty"`
	Intensity       string       `json:"intensity,omitempty"`
}

// HasDuration reports whether the instance is prescribed by time.
func (i ExerciseInstance) HasDuration() bool {
	return i.DurationMinutes != nil
}

// DayWorkout is one training day of a plan.
type DayWorkout struct {
	Day         int                `json:"day"`
	SplitName   string             `json:"split_name"`
	Exercises   []ExerciseInstance `json:"exercises"`
	TargetCount int                `json:"target_count"`
}

// Underfilled reports whether fewer exercises were found than targeted.
func (d DayWorkout) Underfilled() bool {
	return len(d.Exercises) < d.TargetCount
}

// WorkoutPlan is a generated multi-day program.
type WorkoutPlan struct {
	ID               uuid.UUID       `json:"id"`
	Goal             Goal            `json:"goal"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	DaysPerWeek      int             `json:"days_per_week"`
	Strategy         string          `json:"strategy"`
	CreatedAt        time.Time       `json:"created_at"`
	Workouts         []DayWorkout    `json:"workouts"`
	Template         GoalTemplate    `json:"template"`
	UnderfillWarning bool            `json:"underfill_warning,omitempty"`
}

// PlanSummary is a history entry without the full workout list.
type PlanSummary struct {
	ID               uuid.UUID       `json:"id"`
	Goal             Goal            `json:"goal"`
	ExperienceLevel  ExperienceLevel `json:"experience_level"`
	DaysPerWeek      int             `json:"days_per_week"`
	Strategy         string          `json:"strategy"`
	UnderfillWarning bool            `json:"underfill_warning"`
	CreatedAt        time.Time       `json:"created_at"`
}

// Summary returns the history view of the plan.
func (p *WorkoutPlan) Summary() PlanSummary {
	return PlanSummary{
		ID:               p.ID,
		Goal:             p.Goal,
		ExperienceLevel:  p.ExperienceLevel,
		DaysPerWeek:      p.DaysPerWeek,
		Strategy:         p.Strategy,
		UnderfillWarning: p.UnderfillWarning,
		CreatedAt:        p.CreatedAt,
	}
}
