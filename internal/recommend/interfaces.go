// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package recommend ranks menu items and restaurants for a user. Items that
// conflict with the user's allergies or strict dietary preferences are removed
// before any scoring happens; the remaining ones are scored either by a
// deterministic baseline or by an external language-model [Ranker].
package recommend

//go:generate mockgen -source=interfaces.go -destination=../mock/recommend_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// Catalog supplies recommendation candidates.
type Catalog interface {
	ListActiveMenuItems(ctx context.Context) ([]models.MenuItem, error)
}

// HealthSource supplies the allergies and dietary preferences of a user.
// A user without a health profile has neither.
type HealthSource interface {
	ListAllergies(ctx context.Context, userID int64) ([]models.UserAllergy, error)
	ListPreferences(ctx context.Context, userID int64) ([]models.DietaryPreference, error)
}

// GoalSource supplies the goals of a user.
type GoalSource interface {
	ListGoals(ctx context.Context, userID int64, status *models.GoalStatus) ([]models.Goal, error)
}

// WellnessSource aggregates recent mood and stress logs.
type WellnessSource interface {
	MoodStressAverages(ctx context.Context, userID int64, since models.Date) (models.WellnessAverages, error)
}

// Ranker scores candidates with a language model. Implementations return the
// entries exactly as the model produced them; the engine validates them.
type Ranker interface {
	Rank(ctx context.Context, prompt string) ([]RankedEntry, error)
}

// RankedEntry is one raw entry of a model response. Score is left untyped
// because models return numbers, numeric strings or garbage.
type RankedEntry struct {
	ItemID      string
	Score       any
	Explanation string
}
