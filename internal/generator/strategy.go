package generator

import (
	"fmt"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/models"
)

// Strategy names.
const (
	StrategyCatalog = "catalog"
	StrategyFixed   = "fixed"
)

// DayRequest is what a strategy needs to fill one training day.
type DayRequest struct {
	Day      int
	Split    string
	Profile  models.UserProfile
	Template models.GoalTemplate // already scaled for the profile's level
}

// Strategy fills a single day with exercise instances. Implementations must
// not modify shared catalog data.
type Strategy interface {
	Name() string
	BuildDay(req DayRequest, rng RNG) (models.DayWorkout, error)
}

// FilteredCatalogStrategy picks exercises for each split from a catalog
// snapshot, filtered by target muscles and equipment.
type FilteredCatalogStrategy struct {
	Catalog *catalog.Catalog
	// Policy overrides the equipment policy; nil means AnyEquipment.
	Policy EquipmentPolicy
}

// Name implements Strategy.
func (s FilteredCatalogStrategy) Name() string { return StrategyCatalog }

// BuildDay implements Strategy.
func (s FilteredCatalogStrategy) BuildDay(req DayRequest, rng RNG) (models.DayWorkout, error) {
	if s.Catalog == nil {
		return models.DayWorkout{}, fmt.Errorf("catalog strategy: no catalog")
	}
	policy := s.Policy
	if policy == nil {
		policy = AnyEquipment
	}

	pool := EligibleWith(policy, s.Catalog.All(), SplitTargetMuscles(req.Split), req.Profile.AvailableEquipment)
	picked := Select(pool, req.Template.ExercisesPerWorkout, rng)

	day := models.DayWorkout{
		Day:         req.Day,
		SplitName:   req.Split,
		Exercises:   make([]models.ExerciseInstance, 0, len(picked)),
		TargetCount: req.Template.ExercisesPerWorkout,
	}
	for _, e := range picked {
		day.Exercises = append(day.Exercises, resolve(e, req.Template))
	}
	return day, nil
}

// resolve prescribes a catalog exercise for the plan. Time-based exercises
// keep their catalog duration and rest; rep-based ones take the scaled
// template ranges and rest.
func resolve(e models.ExerciseDefinition, t models.GoalTemplate) models.ExerciseInstance {
	inst := models.ExerciseInstance{
		ExerciseID:  e.ID,
		Name:        e.Name,
		Kind:        e.Kind,
		RestSeconds: t.RestSeconds,
		Intensity:   t.Intensity,
	}
	if e.HasDuration() {
		minutes := float64(*e.BaseDurationSeconds) / 60
		inst.DurationMinutes = &minutes
		inst.RestSeconds = e.RestSeconds
		if e.BaseSets != nil {
			sets := t.Sets
			inst.Sets = &sets
		}
		return inst
	}
	sets, reps := t.Sets, t.Reps
	inst.Sets = &sets
	inst.Reps = &reps
	return inst
}

// FixedLevelListStrategy copies a pre-prescribed list for the profile's goal
// and level onto every day. Sets, reps and durations are taken as listed.
type FixedLevelListStrategy struct {
	// Library overrides the built-in lists; nil means DefaultLibrary.
	Library Library
}

// Name implements Strategy.
func (s FixedLevelListStrategy) Name() string { return StrategyFixed }

// BuildDay implements Strategy.
func (s FixedLevelListStrategy) BuildDay(req DayRequest, _ RNG) (models.DayWorkout, error) {
	lib := s.Library
	if lib == nil {
		lib = DefaultLibrary
	}
	list, err := lib(req.Profile.Goal, req.Profile.ExperienceLevel)
	if err != nil {
		return models.DayWorkout{}, err
	}

	day := models.DayWorkout{
		Day:         req.Day,
		SplitName:   req.Split,
		Exercises:   make([]models.ExerciseInstance, 0, len(list)),
		TargetCount: len(list),
	}
	for _, inst := range list {
		day.Exercises = append(day.Exercises, cloneInstance(inst))
	}
	return day, nil
}

func cloneInstance(in models.ExerciseInstance) models.ExerciseInstance {
	out := in
	if in.Sets != nil {
		v := *in.Sets
		out.Sets = &v
	}
	if in.Reps != nil {
		v := *in.Reps
		out.Reps = &v
	}
	if in.DurationMinutes != nil {
		v := *in.DurationMinutes
		out.DurationMinutes = &v
	}
	return out
}

// ForName returns the strategy registered under name. An empty name selects
// the catalog strategy.
func ForName(name string, c *catalog.Catalog) (Strategy, error) {
	switch name {
	case StrategyCatalog, "":
		return FilteredCatalogStrategy{Catalog: c}, nil
	case StrategyFixed:
		return FixedLevelListStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
	}
}
