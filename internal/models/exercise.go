package models

import "fmt"

// ExerciseKind classifies what an exercise trains.
type ExerciseKind string

const (
	KindStrength    ExerciseKind = "strength"
	KindCardio      ExerciseKind = "cardio"
	KindFlexibility ExerciseKind = "flexibility"
)

// ParseExerciseKind validates a kind tag.
func ParseExerciseKind(s string) (ExerciseKind, error) {
	switch k := ExerciseKind(s); k {
	case KindStrength, KindCardio, KindFlexibility:
		return k, nil
	}
	return "", fmt.Errorf("unknown exercise kind %q", s)
}

// Difficulty is the skill level an exercise is aimed at.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty validates a difficulty tag.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return d, nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// MuscleGroup is a target-muscle tag.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "chest"
	MuscleBack      MuscleGroup = "back"
	MuscleLegs      MuscleGroup = "legs"
	MuscleShoulders MuscleGroup = "shoulders"
	MuscleArms      MuscleGroup = "arms"
	MuscleCore      MuscleGroup = "core"
	MuscleFullBody  MuscleGroup = "full_body"
)

// AllMuscleGroups lists every known muscle group in display order.
var AllMuscleGroups = []MuscleGroup{
	MuscleChest, MuscleBack, MuscleLegs, MuscleShoulders, MuscleArms, MuscleCore, MuscleFullBody,
}

// EquipmentNone marks an exercise that needs no equipment.
const EquipmentNone = "none"

// ExerciseDefinition is one entry of the exercise catalog. Definitions are
// immutable once loaded into a catalog snapshot.
type ExerciseDefinition struct {
	ID                  string        `json:"id" yaml:"id"`
	Name                string        `json:"name" yaml:"name"`
	Kind                ExerciseKind  `json:"kind" yaml:"kind"`
	TargetMuscles       []MuscleGroup `json:"target_muscles" yaml:"target_muscles"`
	RequiredEquipment   []string      `json:"required_equipment" yaml:"required_equipment"`
	Difficulty          Difficulty    `json:"difficulty" yaml:"difficulty"`
	BaseSets            *int          `json:"base_sets,omitempty" yaml:"base_sets,omitempty"`
	BaseReps            *int          `json:"base_reps,omitempty" yaml:"base_reps,omitempty"`
	BaseDurationSeconds *int          `json:"base_duration_seconds,omitempty" yaml:"base_duration_seconds,omitempty"`
	RestSeconds         int           `json:"rest_seconds" yaml:"rest_seconds"`
	Description         string        `json:"description,omitempty" yaml:"description,omitempty"`
	Instructions        []string      `json:"instructions,omitempty" yaml:"instructions,omitempty"`
}

// HasDuration reports whether the exercise is prescribed by time.
func (e ExerciseDefinition) HasDuration() bool {
	return e.BaseDurationSeconds != nil && *e.BaseDurationSeconds > 0
}

// Targets reports whether the exercise works the given muscle group.
func (e ExerciseDefinition) Targets(m MuscleGroup) bool {
	for _, t := range e.TargetMuscles {
		if t == m {
			return true
		}
	}
	return false
}

// Validate checks that the definition is usable by the generator.
func (e ExerciseDefinition) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("exercise id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("exercise %s: name is required", e.ID)
	}
	if _, err := ParseExerciseKind(string(e.Kind)); err != nil {
		return fmt.Errorf("exercise %s: %w", e.ID, err)
	}
	if _, err := ParseDifficulty(string(e.Difficulty)); err != nil {
		return fmt.Errorf("exercise %s: %w", e.ID, err)
	}
	if len(e.TargetMuscles) == 0 {
		return fmt.Errorf("exercise %s: at least one target muscle is required", e.ID)
	}
	return nil
}
