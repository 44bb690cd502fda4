package generator

import (
	"fmt"
	"slices"
	"testing"

	"github.com/meltforce/fitplan/internal/models"
)

// scriptedRNG returns a fixed sequence of draws, each reduced modulo n.
type scriptedRNG struct {
	draws []int
	i     int
}

func (r *scriptedRNG) IntN(n int) int {
	v := r.draws[r.i%len(r.draws)] % n
	r.i++
	return v
}

func pool(n int) []models.ExerciseDefinition {
	out := make([]models.ExerciseDefinition, n)
	for i := range out {
		out[i] = exercise(fmt.Sprintf("ex-%02d", i), []models.MuscleGroup{models.MuscleLegs})
	}
	return out
}

// TestSelectNoDuplicatesAndSubset checks, over many seeds, that selections
// never repeat an id and only contain pool members.
func TestSelectNoDuplicatesAndSubset(t *testing.T) {
	p := pool(12)
	members := make(map[string]bool, len(p))
	for _, e := range p {
		members[e.ID] = true
	}

	for seed := uint64(0); seed < 200; seed++ {
		got := Select(p, 7, NewSeededRNG(seed))
		if len(got) != 7 {
			t.Fatalf("seed %d: len = %d, want 7", seed, len(got))
		}
		seen := make(map[string]bool)
		for _, e := range got {
			if seen[e.ID] {
				t.Fatalf("seed %d: duplicate %s", seed, e.ID)
			}
			if !members[e.ID] {
				t.Fatalf("seed %d: %s not in pool", seed, e.ID)
			}
			seen[e.ID] = true
		}
	}
}

// TestSelectUnderfill verifies that a short pool returns everything it has
// and nothing more.
func TestSelectUnderfill(t *testing.T) {
	p := pool(2)
	got := Select(p, 7, NewSeededRNG(1))
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	ids := idsOf(got)
	slices.Sort(ids)
	if ids[0] != "ex-00" || ids[1] != "ex-01" {
		t.Errorf("ids = %v, want both pool members", ids)
	}
}

// TestSelectEdgeCases covers empty pools and non-positive counts.
func TestSelectEdgeCases(t *testing.T) {
	if got := Select(nil, 5, NewSeededRNG(1)); len(got) != 0 {
		t.Errorf("empty pool: len = %d", len(got))
	}
	if got := Select(pool(3), 0, NewSeededRNG(1)); len(got) != 0 {
		t.Errorf("zero count: len = %d", len(got))
	}
}

// TestSelectDoesNotModifyPool verifies the shared pool is left intact.
func TestSelectDoesNotModifyPool(t *testing.T) {
	p := pool(5)
	before := idsOf(p)
	Select(p, 3, NewSeededRNG(7))
	if !slices.Equal(idsOf(p), before) {
		t.Errorf("pool changed: %v, want %v", idsOf(p), before)
	}
}

// TestSelectDeterministic verifies that the same seed gives the same picks.
func TestSelectDeterministic(t *testing.T) {
	p := pool(20)
	a := idsOf(Select(p, 6, NewSeededRNG(99)))
	b := idsOf(Select(p, 6, NewSeededRNG(99)))
	if !slices.Equal(a, b) {
		t.Errorf("seeded runs differ: %v vs %v", a, b)
	}
}

// TestSelectScripted pins the removal order: the drawn slot is filled by the
// last remaining element.
func TestSelectScripted(t *testing.T) {
	p := pool(4) // ex-00 .. ex-03
	rng := &scriptedRNG{draws: []int{1, 1, 0}}
	got := idsOf(Select(p, 3, rng))
	// draw 1 -> ex-01; pool [ex-00 ex-03 ex-02]
	// draw 1 -> ex-03; pool [ex-00 ex-02]
	// draw 0 -> ex-00
	want := []string{"ex-01", "ex-03", "ex-00"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
