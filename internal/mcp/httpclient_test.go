package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/planning"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s, want POST", r.Method)
			}
			var req planning.GenerateRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatal(err)
			}
			if req.Strategy != "fixed" || req.Seed == nil || *req.Seed != 9 {
				t.Errorf("request = %+v", req)
			}
			writeTestJSON(t, w, http.StatusCreated, models.WorkoutPlan{ID: id, Strategy: "fixed", DaysPerWeek: 2})
		},
	})
	defer ts.Close()

	seed := uint64(9)
	plan, err := NewHTTPClient(ts.URL+"/").Generate(context.Background(), 1, planning.GenerateRequest{Strategy: "fixed", Seed: &seed})
	if err != nil {
		t.Fatal(err)
	}
	if plan.ID != id || plan.DaysPerWeek != 2 {
		t.Errorf("plan = %+v", plan)
	}
}

func TestCurrentPlanNotFound(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans/current": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, http.StatusNotFound, map[string]string{"error": "not found"})
		},
	})
	defer ts.Close()

	_, err := NewHTTPClient(ts.URL).CurrentPlan(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestServerErrorMessage(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/profile": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, http.StatusBadRequest, map[string]string{"error": "invalid profile: goal: required"})
		},
	})
	defer ts.Close()

	err := NewHTTPClient(ts.URL).SaveProfile(context.Background(), 1, models.UserProfile{})
	if err == nil {
		t.Fatal("expected error")
	}
	if want := "httpclient: /api/v1/profile returned 400: invalid profile: goal: required"; err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestHistoryLimit(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans/history": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit=%q, want 5", got)
			}
			writeTestJSON(t, w, http.StatusOK, []models.PlanSummary{{ID: uuid.New()}, {ID: uuid.New()}})
		},
	})
	defer ts.Close()

	hist, err := NewHTTPClient(ts.URL).History(context.Background(), 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(hist) != 2 {
		t.Errorf("got %d summaries, want 2", len(hist))
	}
}

func TestExercisesQuery(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises": func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("muscle") != "legs" || q.Get("kind") != "cardio" || q.Has("difficulty") {
				t.Errorf("query = %v", q)
			}
			writeTestJSON(t, w, http.StatusOK, []models.ExerciseDefinition{{ID: "jump-squats"}})
		},
	})
	defer ts.Close()

	defs, err := NewHTTPClient(ts.URL).Exercises(context.Background(),
		catalog.Query{Muscle: models.MuscleLegs, Kind: models.KindCardio})
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 1 || defs[0].ID != "jump-squats" {
		t.Errorf("defs = %+v", defs)
	}
}

func TestPlanByID(t *testing.T) {
	id := uuid.New()
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/plans/" + id.String(): func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, http.StatusOK, models.WorkoutPlan{ID: id})
		},
	})
	defer ts.Close()

	plan, err := NewHTTPClient(ts.URL).Plan(context.Background(), 1, id)
	if err != nil {
		t.Fatal(err)
	}
	if plan.ID != id {
		t.Errorf("id = %s, want %s", plan.ID, id)
	}
}

func TestTemplates(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/templates": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, http.StatusOK, map[models.Goal]models.GoalTemplate{
				models.GoalEndurance: {RestSeconds: 45},
			})
		},
	})
	defer ts.Close()

	got, err := NewHTTPClient(ts.URL).Templates(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got[models.GoalEndurance].RestSeconds != 45 {
		t.Errorf("templates = %+v", got)
	}
}
