package mcp

import (
	"context"

	"github.com/google/uuid"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/generator"
	"github.com/meltforce/fitplan/internal/models"
	"github.com/meltforce/fitplan/internal/planning"
)

// DataSource abstracts the data layer for MCP tools. Local (in-process
// planning service) and HTTPClient (remote via REST API) satisfy it.
type DataSource interface {
	Profile(ctx context.Context, userID int) (models.UserProfile, error)
	SaveProfile(ctx context.Context, userID int, p models.UserProfile) error
	Generate(ctx context.Context, userID int, req planning.GenerateRequest) (*models.WorkoutPlan, error)
	CurrentPlan(ctx context.Context, userID int) (*models.WorkoutPlan, error)
	Plan(ctx context.Context, userID int, id uuid.UUID) (*models.WorkoutPlan, error)
	History(ctx context.Context, userID, limit int) ([]models.PlanSummary, error)
	Exercises(ctx context.Context, q catalog.Query) ([]models.ExerciseDefinition, error)
	Templates(ctx context.Context) (map[models.Goal]models.GoalTemplate, error)
}

// Local serves MCP requests from an in-process planning service.
type Local struct {
	*planning.Service
}

var _ DataSource = Local{}

// NewLocal wraps a planning service as a DataSource.
func NewLocal(svc *planning.Service) Local {
	return Local{Service: svc}
}

// Exercises filters the current catalog snapshot.
func (l Local) Exercises(_ context.Context, q catalog.Query) ([]models.ExerciseDefinition, error) {
	return l.Catalog().Find(q), nil
}

// Templates returns the unscaled goal templates.
func (l Local) Templates(context.Context) (map[models.Goal]models.GoalTemplate, error) {
	return generator.Templates(), nil
}
