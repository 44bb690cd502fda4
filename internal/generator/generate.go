// Package generator builds multi-day workout plans from a user profile.
//
// Generation is a pure pipeline: split planning, eligibility filtering,
// sampling without replacement, experience scaling, time-budget allocation
// and assembly. It performs no I/O and keeps no state between calls, so
// concurrent calls are independent as long as each gets its own RNG.
package generator

import (
	"errors"
	"time"

	"github.com/meltforce/fitplan/internal/models"
)

// now is the assembler's clock; tests replace it.
var now = time.Now

// ValidateProfile checks the fields generation depends on. An out-of-range
// day count is not an error (it falls back to the default split), but zero
// is treated as missing.
func ValidateProfile(p models.UserProfile) error {
	if p.Goal == "" {
		return &ProfileError{Field: "goal", Reason: "required"}
	}
	if _, err := models.ParseGoal(string(p.Goal)); err != nil {
		return &ProfileError{Field: "goal", Reason: err.Error()}
	}
	if p.ExperienceLevel == "" {
		return &ProfileError{Field: "experience_level", Reason: "required"}
	}
	if _, err := models.ParseExperienceLevel(string(p.ExperienceLevel)); err != nil {
		return &ProfileError{Field: "experience_level", Reason: err.Error()}
	}
	if p.DaysPerWeek == 0 {
		return &ProfileError{Field: "days_per_week", Reason: "required"}
	}
	if p.AvailableTimeMinutes != nil && *p.AvailableTimeMinutes <= 0 {
		return &ProfileError{Field: "available_time_minutes", Reason: "must be positive"}
	}
	return nil
}

// GeneratePlan is the engine's entry point. It validates the profile, scales
// the goal template, lets the strategy fill each split day, fits timed
// exercises into the time budget and assembles the plan. The returned plan
// has no ID; the caller assigns one before storing it.
func GeneratePlan(profile models.UserProfile, strategy Strategy, rng RNG) (*models.WorkoutPlan, error) {
	if strategy == nil {
		return nil, errors.New("generator: nil strategy")
	}
	if rng == nil {
		return nil, errors.New("generator: nil rng")
	}
	if err := ValidateProfile(profile); err != nil {
		return nil, err
	}

	base, err := Template(profile.Goal)
	if err != nil {
		return nil, err
	}
	scaled, err := Scale(base, profile.ExperienceLevel)
	if err != nil {
		return nil, err
	}

	splits := PlanSplits(profile.DaysPerWeek)
	days := make([]models.DayWorkout, 0, len(splits))
	for i, split := range splits {
		day, err := strategy.BuildDay(DayRequest{
			Day:      i + 1,
			Split:    split,
			Profile:  profile,
			Template: scaled,
		}, rng)
		if err != nil {
			return nil, err
		}
		if profile.AvailableTimeMinutes != nil {
			day.Exercises = Allocate(day.Exercises, float64(*profile.AvailableTimeMinutes))
		}
		days = append(days, day)
	}

	plan := Assemble(profile, days)
	plan.Strategy = strategy.Name()
	plan.Template = scaled
	return plan, nil
}

// Assemble wraps generated days into a plan, stamping the creation time and
// raising the underfill warning if any day fell short of its target.
func Assemble(profile models.UserProfile, days []models.DayWorkout) *models.WorkoutPlan {
	plan := &models.WorkoutPlan{
		Goal:            profile.Goal,
		ExperienceLevel: profile.ExperienceLevel,
		DaysPerWeek:     profile.DaysPerWeek,
		CreatedAt:       now().UTC(),
		Workouts:        days,
	}
	for _, d := range days {
		if d.Underfilled() {
			plan.UnderfillWarning = true
			break
		}
	}
	return plan
}
