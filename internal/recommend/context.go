package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// wellnessWindowDays is how far back mood and stress logs are averaged.
const wellnessWindowDays = 7

// Thresholds for the wellness lift.
const (
	lowMoodThreshold    = 4.0
	highStressThreshold = 7.0
)

// UserContext is everything about a user that influences a recommendation.
// Names are normalized; a user without a health profile has empty sets.
type UserContext struct {
	Allergies         []string
	StrictPreferences []string
	PreferredCuisines []string
	ActiveGoals       []models.Goal
	AvgMood           *float64
	AvgStress         *float64
}

// LowMood reports whether recent mood logs average at or below the low-mood threshold.
func (c UserContext) LowMood() bool {
	return c.AvgMood != nil && *c.AvgMood <= lowMoodThreshold
}

// HighStress reports whether recent stress logs average at or above the high-stress threshold.
func (c UserContext) HighStress() bool {
	return c.AvgStress != nil && *c.AvgStress >= highStressThreshold
}

// withDiet returns a copy of c with diet added to the strict preferences.
func (c UserContext) withDiet(diet []string) UserContext {
	if len(diet) == 0 {
		return c
	}
	strict := make([]string, 0, len(c.StrictPreferences)+len(diet))
	strict = append(strict, c.StrictPreferences...)
	for _, d := range diet {
		if d = strings.TrimSpace(d); d != "" {
			strict = append(strict, d)
		}
	}
	c.StrictPreferences = strict
	return c
}

// loadContext gathers the allergy set, preferences, active goals and recent
// wellness averages of user.
func (e *Engine) loadContext(ctx context.Context, user models.User) (UserContext, error) {
	log := logger.FromContext(ctx)

	allergies, err := e.health.ListAllergies(ctx, user.UserID)
	if err != nil {
		return UserContext{}, fmt.Errorf("%w: allergies: %w", ErrLoadingContext, err)
	}
	prefs, err := e.health.ListPreferences(ctx, user.UserID)
	if err != nil {
		return UserContext{}, fmt.Errorf("%w: preferences: %w", ErrLoadingContext, err)
	}
	active := models.GoalActive
	goals, err := e.goals.ListGoals(ctx, user.UserID, &active)
	if err != nil {
		return UserContext{}, fmt.Errorf("%w: goals: %w", ErrLoadingContext, err)
	}

	today := models.NewDate(e.now().In(user.Location()))
	since := models.Date{Time: today.AddDate(0, 0, -wellnessWindowDays)}
	averages, err := e.wellness.MoodStressAverages(ctx, user.UserID, since)
	if err != nil {
		return UserContext{}, fmt.Errorf("%w: wellness: %w", ErrLoadingContext, err)
	}

	uc := UserContext{
		Allergies:         make([]string, 0, len(allergies)),
		StrictPreferences: make([]string, 0),
		PreferredCuisines: make([]string, 0),
		ActiveGoals:       goals,
		AvgMood:           averages.AvgMood,
		AvgStress:         averages.AvgStress,
	}
	for _, a := range allergies {
		uc.Allergies = append(uc.Allergies, normalizeText(a.AllergenName))
	}
	for _, p := range prefs {
		switch {
		case p.IsStrict:
			uc.StrictPreferences = append(uc.StrictPreferences, p.PreferenceName)
		case p.PreferenceType == models.PreferenceCuisine:
			uc.PreferredCuisines = append(uc.PreferredCuisines, normalizeText(p.PreferenceName))
		}
	}

	log.Debug().
		Str("func", "*Engine.loadContext").
		Int64("user_id", user.UserID).
		Int("allergies", len(uc.Allergies)).
		Int("strict_preferences", len(uc.StrictPreferences)).
		Int("active_goals", len(uc.ActiveGoals)).
		Msg("recommendation context loaded")

	return uc, nil
}

func (e *Engine) now() time.Time {
	if e.clock != nil {
		return e.clock()
	}
	return time.Now()
}
