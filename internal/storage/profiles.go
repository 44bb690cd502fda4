package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/meltforce/fitplan/internal/models"
)

// GetProfile returns the stored profile for a user, or ErrNotFound.
func (db *DB) GetProfile(ctx context.Context, userID int) (models.UserProfile, error) {
	var (
		p         models.UserProfile
		goal      string
		level     string
		equipment []string
	)
	err := db.Pool.QueryRow(ctx,
		`SELECT goal, experience_level, available_equipment, days_per_week, available_time_minutes
		 FROM profiles WHERE user_id = $1`,
		userID).Scan(&goal, &level, &equipment, &p.DaysPerWeek, &p.AvailableTimeMinutes)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.UserProfile{}, ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("querying profile: %w", err)
	}
	p.Goal = models.Goal(goal)
	p.ExperienceLevel = models.ExperienceLevel(level)
	p.AvailableEquipment = equipment
	if p.AvailableEquipment == nil {
		p.AvailableEquipment = []string{}
	}
	return p, nil
}

// UpsertProfile replaces the user's profile.
func (db *DB) UpsertProfile(ctx context.Context, userID int, p models.UserProfile) error {
	equipment := p.AvailableEquipment
	if equipment == nil {
		equipment = []string{}
	}
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO profiles (user_id, goal, experience_level, available_equipment, days_per_week, available_time_minutes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (user_id) DO UPDATE SET
			goal = EXCLUDED.goal,
			experience_level = EXCLUDED.experience_level,
			available_equipment = EXCLUDED.available_equipment,
			days_per_week = EXCLUDED.days_per_week,
			available_time_minutes = EXCLUDED.available_time_minutes,
			updated_at = NOW()`,
		userID, string(p.Goal), string(p.ExperienceLevel), equipment, p.DaysPerWeek, p.AvailableTimeMinutes)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
