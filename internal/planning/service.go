// Package planning connects the plan generator to profile and plan storage.
package planning

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/meltforce/fitplan/internal/catalog"
	"github.com/meltforce/fitplan/internal/generator"
	"github.com/meltforce/fitplan/internal/models"
)

// ProfileStore reads and writes user profiles.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID int) (models.UserProfile, error)
	UpsertProfile(ctx context.Context, userID int, p models.UserProfile) error
}

// PlanStore keeps the current plan and the append-only history.
type PlanStore interface {
	SavePlan(ctx context.Context, userID int, plan *models.WorkoutPlan) error
	GetCurrentPlan(ctx context.Context, userID int) (*models.WorkoutPlan, error)
	GetPlan(ctx context.Context, userID int, id uuid.UUID) (*models.WorkoutPlan, error)
	QueryPlanHistory(ctx context.Context, userID, limit int) ([]models.PlanSummary, error)
}

// Options sets generation defaults.
type Options struct {
	// DefaultStrategy is used when a request names none.
	DefaultStrategy string
	// Seed, when non-zero, makes every unseeded request reproducible.
	Seed uint64
}

// GenerateRequest carries the per-request overrides.
type GenerateRequest struct {
	Strategy string  `json:"strategy,omitempty"`
	Seed     *uint64 `json:"seed,omitempty"`
}

// Service generates and stores plans for users.
type Service struct {
	profiles ProfileStore
	plans    PlanStore
	catalog  catalog.Source
	opts     Options
	log      *slog.Logger
	newID    func() uuid.UUID
}

// New creates a planning service.
func New(profiles ProfileStore, plans PlanStore, src catalog.Source, opts Options, log *slog.Logger) *Service {
	if opts.DefaultStrategy == "" {
		opts.DefaultStrategy = generator.StrategyCatalog
	}
	return &Service{
		profiles: profiles,
		plans:    plans,
		catalog:  src,
		opts:     opts,
		log:      log,
		newID:    uuid.New,
	}
}

// Catalog returns the catalog snapshot generation currently uses.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog.Snapshot()
}

// Profile returns the stored profile for a user.
func (s *Service) Profile(ctx context.Context, userID int) (models.UserProfile, error) {
	p, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("loading profile: %w", err)
	}
	return p, nil
}

// SaveProfile validates and stores a profile.
func (s *Service) SaveProfile(ctx context.Context, userID int, p models.UserProfile) error {
	if err := generator.ValidateProfile(p); err != nil {
		return err
	}
	if p.AvailableEquipment == nil {
		p.AvailableEquipment = []string{}
	}
	if err := s.profiles.UpsertProfile(ctx, userID, p); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	s.log.Info("profile saved", "user_id", userID, "goal", p.Goal, "level", p.ExperienceLevel,
		"days_per_week", p.DaysPerWeek)
	return nil
}

// Preview runs the generator for a profile without storing anything.
func (s *Service) Preview(p models.UserProfile, req GenerateRequest) (*models.WorkoutPlan, error) {
	strategy, err := generator.ForName(s.strategyName(req), s.catalog.Snapshot())
	if err != nil {
		return nil, err
	}
	return generator.GeneratePlan(p, strategy, s.rng(req))
}

// Generate builds a new plan from the user's stored profile, assigns it an
// ID, and stores it as the current plan. The previous plan stays in history.
func (s *Service) Generate(ctx context.Context, userID int, req GenerateRequest) (*models.WorkoutPlan, error) {
	profile, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	plan, err := s.Preview(profile, req)
	if err != nil {
		return nil, err
	}
	plan.ID = s.newID()

	if err := s.plans.SavePlan(ctx, userID, plan); err != nil {
		return nil, fmt.Errorf("storing plan: %w", err)
	}

	s.log.Info("plan generated", "user_id", userID, "plan_id", plan.ID, "strategy", plan.Strategy,
		"days", len(plan.Workouts), "underfill", plan.UnderfillWarning)
	if plan.UnderfillWarning {
		for _, d := range plan.Workouts {
			if d.Underfilled() {
				s.log.Warn("day underfilled", "user_id", userID, "plan_id", plan.ID, "day", d.Day,
					"split", d.SplitName, "exercises", len(d.Exercises), "target", d.TargetCount)
			}
		}
	}
	return plan, nil
}

// CurrentPlan returns the user's current plan.
func (s *Service) CurrentPlan(ctx context.Context, userID int) (*models.WorkoutPlan, error) {
	return s.plans.GetCurrentPlan(ctx, userID)
}

// Plan returns one plan from the user's history.
func (s *Service) Plan(ctx context.Context, userID int, id uuid.UUID) (*models.WorkoutPlan, error) {
	return s.plans.GetPlan(ctx, userID, id)
}

// History returns summaries of the user's past plans, newest first.
func (s *Service) History(ctx context.Context, userID, limit int) ([]models.PlanSummary, error) {
	return s.plans.QueryPlanHistory(ctx, userID, limit)
}

func (s *Service) strategyName(req GenerateRequest) string {
	if req.Strategy != "" {
		return req.Strategy
	}
	return s.opts.DefaultStrategy
}

func (s *Service) rng(req GenerateRequest) generator.RNG {
	switch {
	case req.Seed != nil:
		return generator.NewSeededRNG(*req.Seed)
	case s.opts.Seed != 0:
		return generator.NewSeededRNG(s.opts.Seed)
	default:
		return generator.NewRNG()
	}
}
