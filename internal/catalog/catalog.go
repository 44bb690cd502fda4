// Package catalog holds read-only exercise catalog snapshots and the ways to
// load them.
package catalog

import (
	"fmt"
	"slices"

	"github.com/meltforce/fitplan/internal/models"
)

// Catalog is an immutable snapshot of exercise definitions. It is safe for
// concurrent use; callers must not modify the definitions it returns.
type Catalog struct {
	exercises []models.ExerciseDefinition
	byID      map[string]int
}

// New builds a snapshot from the given definitions. The input is copied, so
// later changes to it do not affect the catalog.
func New(defs []models.ExerciseDefinition) (*Catalog, error) {
	c := &Catalog{
		exercises: make([]models.ExerciseDefinition, 0, len(defs)),
		byID:      make(map[string]int, len(defs)),
	}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byID[d.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %q", d.ID)
		}
		d.TargetMuscles = slices.Clone(d.TargetMuscles)
		d.RequiredEquipment = slices.Clone(d.RequiredEquipment)
		d.Instructions = slices.Clone(d.Instructions)
		c.byID[d.ID] = len(c.exercises)
		c.exercises = append(c.exercises, d)
	}
	return c, nil
}

// Len returns the number of exercises.
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// All returns every exercise in catalog order.
func (c *Catalog) All() []models.ExerciseDefinition {
	return c.exercises
}

// ByID looks up a single exercise.
func (c *Catalog) ByID(id string) (models.ExerciseDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.ExerciseDefinition{}, false
	}
	return c.exercises[i], true
}

// ByMuscleGroup returns exercises targeting the given muscle group.
func (c *Catalog) ByMuscleGroup(m models.MuscleGroup) []models.ExerciseDefinition {
	return c.filter(func(e models.ExerciseDefinition) bool { return e.Targets(m) })
}

// ByDifficulty returns exercises of the given difficulty.
func (c *Catalog) ByDifficulty(d models.Difficulty) []models.ExerciseDefinition {
	return c.filter(func(e models.ExerciseDefinition) bool { return e.Difficulty == d })
}

// ByKind returns exercises of the given kind.
func (c *Catalog) ByKind(k models.ExerciseKind) []models.ExerciseDefinition {
	return c.filter(func(e models.ExerciseDefinition) bool { return e.Kind == k })
}

// Query narrows the catalog by any combination of filters. Empty filter
// values match everything.
type Query struct {
	Muscle     models.MuscleGroup
	Difficulty models.Difficulty
	Kind       models.ExerciseKind
}

// Find returns exercises matching all non-empty fields of q.
func (c *Catalog) Find(q Query) []models.ExerciseDefinition {
	return c.filter(func(e models.ExerciseDefinition) bool {
		if q.Muscle != "" && !e.Targets(q.Muscle) {
			return false
		}
		if q.Difficulty != "" && e.Difficulty != q.Difficulty {
			return false
		}
		if q.Kind != "" && e.Kind != q.Kind {
			return false
		}
		return true
	})
}

func (c *Catalog) filter(keep func(models.ExerciseDefinition) bool) []models.ExerciseDefinition {
	var out []models.ExerciseDefinition
	for _, e := range c.exercises {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
