package generator

import (
	"slices"
	"strings"

	"github.com/meltforce/fitplan/internal/models"
)

// Split names.
const (
	SplitFullBody      = "Full Body"
	SplitUpperBody     = "Upper Body"
	SplitLowerBody     = "Lower Body"
	SplitPush          = "Push"
	SplitPull          = "Pull"
	SplitLegs          = "Legs"
	SplitChestTriceps  = "Chest & Triceps"
	SplitBackBiceps    = "Back & Biceps"
	SplitShouldersCore = "Shoulders & Core"
	SplitChest         = "Chest"
	SplitBack          = "Back"
	SplitShoulders     = "Shoulders"
	SplitArmsCore      = "Arms & Core"
)

const (
	DefaultDaysPerWeek = 3
	MinDaysPerWeek     = 1
	MaxDaysPerWeek     = 6
)

// PlanSplits maps a weekly day count to the ordered split names, one per
// training day. Counts outside 1..6 fall back to the 3-day split.
func PlanSplits(daysPerWeek int) []string {
	switch daysPerWeek {
	case 1:
		return []string{SplitFullBody}
	case 2:
		return []string{SplitUpperBody, SplitLowerBody}
	case 3:
		return []string{SplitPush, SplitPull, SplitLegs}
	case 4:
		return []string{SplitChestTriceps, SplitBackBiceps, SplitLegs, SplitShouldersCore}
	case 5:
		return []string{SplitChest, SplitBack, SplitLegs, SplitShoulders, SplitArmsCore}
	case 6:
		return []string{SplitPush, SplitPull, SplitLegs, SplitPush, SplitPull, SplitLegs}
	default:
		return PlanSplits(DefaultDaysPerWeek)
	}
}

// fullBody is the target set for any split without an explicit entry.
var fullBody = []models.MuscleGroup{
	models.MuscleChest, models.MuscleBack, models.MuscleLegs,
	models.MuscleShoulders, models.MuscleArms, models.MuscleCore, models.MuscleFullBody,
}

// SplitTargetMuscles returns the muscle groups a split trains. Lookup is
// case-insensitive; unknown names get the full-body set.
func SplitTargetMuscles(split string) []models.MuscleGroup {
	var m []models.MuscleGroup
	switch strings.ToLower(strings.TrimSpace(split)) {
	case "upper body":
		m = []models.MuscleGroup{models.MuscleChest, models.MuscleBack, models.MuscleShoulders, models.MuscleArms}
	case "lower body":
		m = []models.MuscleGroup{models.MuscleLegs, models.MuscleCore}
	case "push":
		m = []models.MuscleGroup{models.MuscleChest, models.MuscleShoulders, models.MuscleArms}
	case "pull":
		m = []models.MuscleGroup{models.MuscleBack, models.MuscleArms}
	case "legs":
		m = []models.MuscleGroup{models.MuscleLegs}
	case "chest & triceps":
		m = []models.MuscleGroup{models.MuscleChest, models.MuscleArms}
	case "back & biceps":
		m = []models.MuscleGroup{models.MuscleBack, models.MuscleArms}
	case "shoulders & core":
		m = []models.MuscleGroup{models.MuscleShoulders, models.MuscleCore}
	case "chest":
		m = []models.MuscleGroup{models.MuscleChest}
	case "back":
		m = []models.MuscleGroup{models.MuscleBack}
	case "shoulders":
		m = []models.MuscleGroup{models.MuscleShoulders}
	case "arms & core":
		m = []models.MuscleGroup{models.MuscleArms, models.MuscleCore}
	default:
		m = fullBody
	}
	return slices.Clone(m)
}
