package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/export"
	"github.com/meltforce/fitplan/internal/generator"
	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/planning"
	"github.com/meltforce/fitplan/internal/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "exercises": s.plans.Catalog().Len()})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.plans.Profile(r.Context(), userIDFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := s.plans.SaveProfile(r.Context(), userIDFromContext(r), p); err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	q, err := parseExerciseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.plans.Catalog().Find(q))
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	def, ok := s.plans.Catalog().ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("exercise %q not found", id))
		return
	}
	writeJSON(w, http.StatusOK, def)
}

func (s *Server) handleTemplates(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, generator.Templates())
}

func (s *Server) handleGeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req planning.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	plan, err := s.plans.Generate(r.Context(), userIDFromContext(r), req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

func (s *Server) handleCurrentPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.plans.CurrentPlan(r.Context(), userIDFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func (s *Server) handleExportCurrentPlan(w http.ResponseWriter, r *http.Request) {
	plan, err := s.plans.CurrentPlan(r.Context(), userIDFromContext(r))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="plan-%s.xlsx"`, plan.ID))
	if err := export.WritePlan(w, plan); err != nil {
		// Headers are already out; all we can do is log.
		s.log.Error("export failed", "plan_id", plan.ID, "error", err)
	}
}

func (s *Server) handlePlanHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		parsed, err := strconv.Atoi(l)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	hist, err := s.plans.History(r.Context(), userIDFromContext(r), limit)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	if hist == nil {
		hist = []models.PlanSummary{}
	}
	writeJSON(w, http.StatusOK, hist)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid plan id")
		return
	}
	plan, err := s.plans.Plan(r.Context(), userIDFromContext(r), id)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

func parseExerciseQuery(r *http.Request) (catalog.Query, error) {
	var q catalog.Query
	v := r.URL.Query()
	if m := v.Get("muscle"); m != "" {
		if !slices.Contains(models.AllMuscleGroups, models.MuscleGroup(m)) {
			return q, fmt.Errorf("unknown muscle group %q", m)
		}
		q.Muscle = models.MuscleGroup(m)
	}
	if d := v.Get("difficulty"); d != "" {
		diff, err := models.ParseDifficulty(d)
		if err != nil {
			return q, err
		}
		q.Difficulty = diff
	}
	if k := v.Get("kind"); k != "" {
		kind, err := models.ParseExerciseKind(k)
		if err != nil {
			return q, err
		}
		q.Kind = kind
	}
	return q, nil
}

// writeServiceError maps planning and storage errors to HTTP statuses.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, generator.ErrInvalidProfile), errors.Is(err, generator.ErrUnknownStrategy):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.log.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
