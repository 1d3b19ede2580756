package recommend

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

type fakeCatalog struct {
	items []models.MenuItem
	err   error
}

func (f *fakeCatalog) ListActiveMenuItems(context.Context) ([]models.MenuItem, error) {
	return f.items, f.err
}

type fakeHealth struct {
	allergies []models.UserAllergy
	prefs     []models.DietaryPreference
}

func (f *fakeHealth) ListAllergies(context.Context, int64) ([]models.UserAllergy, error) {
	return f.allergies, nil
}

func (f *fakeHealth) ListPreferences(context.Context, int64) ([]models.DietaryPreference, error) {
	return f.prefs, nil
}

type fakeGoals struct {
	goals []models.Goal
}

func (f *fakeGoals) ListGoals(context.Context, int64, *models.GoalStatus) ([]models.Goal, error) {
	return f.goals, nil
}

type fakeWellness struct {
	averages models.WellnessAverages
	since    models.Date
}

func (f *fakeWellness) MoodStressAverages(_ context.Context, _ int64, since models.Date) (models.WellnessAverages, error) {
	f.since = since
	return f.averages, nil
}

// RankFunc adapts a function to [Ranker].
type RankFunc func(ctx context.Context, prompt string) ([]RankedEntry, error)

func (f RankFunc) Rank(ctx context.Context, prompt string) ([]RankedEntry, error) {
	return f(ctx, prompt)
}

type fixture struct {
	catalog  *fakeCatalog
	health   *fakeHealth
	goals    *fakeGoals
	wellness *fakeWellness
}

func newFixture(items ...models.MenuItem) *fixture {
	return &fixture{
		catalog:  &fakeCatalog{items: items},
		health:   &fakeHealth{},
		goals:    &fakeGoals{},
		wellness: &fakeWellness{},
	}
}

func (f *fixture) engine(ranker Ranker, opts Options) *Engine {
	e := NewEngine(f.catalog, f.health, f.goals, f.wellness, ranker, opts)
	e.clock = func() time.Time { return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC) }
	return e
}

var testUser = models.User{UserID: 1, Username: "alice1", Timezone: "UTC"}

func ptr[T any](v T) *T { return &v }

func menuItem(id, restaurantID int64, name string) models.MenuItem {
	return models.MenuItem{
		MenuItemID:     id,
		RestaurantID:   restaurantID,
		RestaurantName: "Restaurant " + string(rune('A'+restaurantID-1)),
		Name:           name,
	}
}

func withNutrition(item models.MenuItem, price, calories float64) models.MenuItem {
	item.Price = &price
	item.Calories = &calories
	return item
}

func strictPref(name string) models.DietaryPreference {
	return models.DietaryPreference{PreferenceType: models.PreferenceDiet, PreferenceName: name, IsStrict: true}
}

func itemNames(items []models.RecommendedItem) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	return names
}

func baseline() models.RecommendationRequest {
	return models.RecommendationRequest{Mode: models.ModeBaseline}
}
