package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/generator"
	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/planning"
	"github.com/meltforce/fitplan/internal/storage"
)

// --- Tool definitions ---

var toolGetProfile = mcp.NewTool("get_profile",
	mcp.WithDescription("Return the stored training profile: goal, experience level, available equipment, days per week and optional time budget."),
)

var toolUpdateProfile = mcp.NewTool("update_profile",
	mcp.WithDescription("Replace the training profile. The next generate_plan call uses it."),
	mcp.WithString("goal", mcp.Required(), mcp.Description("Training goal"), mcp.Enum("muscleGain", "endurance", "weightLoss")),
	mcp.WithString("experience_level", mcp.Required(), mcp.Description("Training experience"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithNumber("days_per_week", mcp.Required(), mcp.Description("Training days per week (1-6; other values fall back to 3)")),
	mcp.WithString("equipment", mcp.Description("Comma-separated equipment tags, e.g. 'dumbbells,bench'. Bodyweight exercises are always available.")),
	mcp.WithNumber("available_time_minutes", mcp.Description("Minutes available per session for timed exercises")),
)

var toolGeneratePlan = mcp.NewTool("generate_plan",
	mcp.WithDescription("Generate a new weekly workout plan from the stored profile. The new plan becomes the current plan; the previous one stays in history."),
	mcp.WithString("strategy", mcp.Description("Exercise source. 'catalog' picks from the exercise catalog by split, 'fixed' uses a fixed list per level. Defaults to the server setting."), mcp.Enum(generator.StrategyCatalog, generator.StrategyFixed)),
	mcp.WithNumber("seed", mcp.Description("Random seed for a reproducible plan")),
)

var toolGetCurrentPlan = mcp.NewTool("get_current_plan",
	mcp.WithDescription("Return the current workout plan with every day's exercises, sets, reps, durations and rest."),
)

var toolGetPlan = mcp.NewTool("get_plan",
	mcp.WithDescription("Return one past plan by ID (see get_plan_history)."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Plan ID")),
)

var toolGetPlanHistory = mcp.NewTool("get_plan_history",
	mcp.WithDescription("List summaries of previously generated plans, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of plans. Defaults to 20.")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List catalog exercises, optionally filtered by muscle group, difficulty and kind."),
	mcp.WithString("muscle", mcp.Description("Target muscle group"), mcp.Enum("chest", "back", "legs", "shoulders", "arms", "core", "full_body")),
	mcp.WithString("difficulty", mcp.Description("Difficulty"), mcp.Enum("beginner", "intermediate", "advanced")),
	mcp.WithString("kind", mcp.Description("Exercise kind"), mcp.Enum("strength", "cardio", "flexibility")),
)

var toolGetGoalTemplates = mcp.NewTool("get_goal_templates",
	mcp.WithDescription("Return the base prescription (sets, reps, rest, exercises per workout, intensity, frequency) for each goal before experience scaling."),
)

// --- Tool handlers ---

func (h *handlers) getProfile(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, err := h.ds.Profile(ctx, UserIDFromContext(ctx))
	if err != nil {
		return h.failure("get_profile", err), nil
	}
	return jsonResult(p)
}

func (h *handlers) updateProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	goal, err := req.RequireString("goal")
	if err != nil {
		return mcp.NewToolResultError("goal parameter is required"), nil
	}
	level, err := req.RequireString("experience_level")
	if err != nil {
		return mcp.NewToolResultError("experience_level parameter is required"), nil
	}
	days, err := req.RequireFloat("days_per_week")
	if err != nil {
		return mcp.NewToolResultError("days_per_week parameter is required"), nil
	}

	p := models.UserProfile{
		Goal:               models.Goal(goal),
		ExperienceLevel:    models.ExperienceLevel(level),
		AvailableEquipment: splitList(req.GetString("equipment", "")),
		DaysPerWeek:        int(days),
	}
	if m := req.GetFloat("available_time_minutes", 0); m != 0 {
		minutes := int(m)
		p.AvailableTimeMinutes = &minutes
	}

	if err := h.ds.SaveProfile(ctx, UserIDFromContext(ctx), p); err != nil {
		return h.failure("update_profile", err), nil
	}
	return jsonResult(p)
}

func (h *handlers) generatePlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	gen := planning.GenerateRequest{Strategy: req.GetString("strategy", "")}
	if v, ok := req.GetArguments()["seed"]; ok {
		f, isNum := v.(float64)
		if !isNum || f < 0 || f != math.Trunc(f) {
			return mcp.NewToolResultError("seed must be a non-negative integer"), nil
		}
		seed := uint64(f)
		gen.Seed = &seed
	}

	plan, err := h.ds.Generate(ctx, UserIDFromContext(ctx), gen)
	if err != nil {
		return h.failure("generate_plan", err), nil
	}
	return jsonResult(plan)
}

func (h *handlers) getCurrentPlan(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, err := h.ds.CurrentPlan(ctx, UserIDFromContext(ctx))
	if err != nil {
		return h.failure("get_current_plan", err), nil
	}
	return jsonResult(plan)
}

func (h *handlers) getPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return mcp.NewToolResultError("invalid plan id: " + err.Error()), nil
	}

	plan, err := h.ds.Plan(ctx, UserIDFromContext(ctx), id)
	if err != nil {
		return h.failure("get_plan", err), nil
	}
	return jsonResult(plan)
}

func (h *handlers) getPlanHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := int(req.GetFloat("limit", 0))
	hist, err := h.ds.History(ctx, UserIDFromContext(ctx), limit)
	if err != nil {
		return h.failure("get_plan_history", err), nil
	}
	if hist == nil {
		hist = []models.PlanSummary{}
	}
	return jsonResult(hist)
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var q catalog.Query
	if m := req.GetString("muscle", ""); m != "" {
		if !slices.Contains(models.AllMuscleGroups, models.MuscleGroup(m)) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown muscle group %q", m)), nil
		}
		q.Muscle = models.MuscleGroup(m)
	}
	if d := req.GetString("difficulty", ""); d != "" {
		diff, err := models.ParseDifficulty(d)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		q.Difficulty = diff
	}
	if k := req.GetString("kind", ""); k != "" {
		kind, err := models.ParseExerciseKind(k)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		q.Kind = kind
	}

	defs, err := h.ds.Exercises(ctx, q)
	if err != nil {
		return h.failure("list_exercises", err), nil
	}
	return jsonResult(defs)
}

func (h *handlers) getGoalTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	templates, err := h.ds.Templates(ctx)
	if err != nil {
		return h.failure("get_goal_templates", err), nil
	}
	return jsonResult(templates)
}

// failure turns a data-source error into a tool error. Caller mistakes are
// reported as-is; anything else is logged.
func (h *handlers) failure(tool string, err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, ErrNotFound):
		return mcp.NewToolResultError("not found: " + err.Error())
	case errors.Is(err, generator.ErrInvalidProfile), errors.Is(err, generator.ErrUnknownStrategy):
		return mcp.NewToolResultError(err.Error())
	}
	h.log.Error("mcp "+tool, "error", err)
	return mcp.NewToolResultError("query failed: " + err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
