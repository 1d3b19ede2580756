package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UnitOfWork runs fn inside one database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise. repos is bound
// to the transaction and must not be used after fn returns.
type UnitOfWork interface {
	// Do reruns fn on a fresh transaction after a transient failure, so fn
	// must not have side effects outside the database.
	Do(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
	// DoOnce runs fn in a single transaction attempt. Use it when fn talks to
	// the outside world, e.g. sends mail.
	DoOnce(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

// UserRepository persists user accounts. Email and username comparisons are
// case-insensitive.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (emailTaken, usernameTaken bool, err error)
	FindPendingUserByToken(ctx context.Context, token string, now time.Time) (models.User, error)
	MarkVerified(ctx context.Context, userID int64) error
	SetVerificationToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	ListUsers(ctx context.Context, filter models.UserFilter) (models.UserPage, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}

// ProfileRepository persists health profiles together with their allergies
// and dietary preferences. Every read and write is scoped by user id.
type ProfileRepository interface {
	GetProfile(ctx context.Context, userID int64) (models.HealthProfile, error)
	EnsureProfile(ctx context.Context, userID int64) (models.HealthProfile, error)
	SaveProfile(ctx context.Context, profile models.HealthProfile) (models.HealthProfile, error)
	DeleteProfile(ctx context.Context, userID int64) error

	ListAllergies(ctx context.Context, userID int64) ([]models.UserAllergy, error)
	GetAllergy(ctx context.Context, userID, allergyID int64) (models.UserAllergy, error)
	CreateAllergy(ctx context.Context, allergy models.UserAllergy) (models.UserAllergy, error)
	UpdateAllergy(ctx context.Context, userID int64, allergy models.UserAllergy) (models.UserAllergy, error)
	DeleteAllergy(ctx context.Context, userID, allergyID int64) error

	ListPreferences(ctx context.Context, userID int64) ([]models.DietaryPreference, error)
	GetPreference(ctx context.Context, userID, preferenceID int64) (models.DietaryPreference, error)
	CreatePreference(ctx context.Context, preference models.DietaryPreference) (models.DietaryPreference, error)
	UpdatePreference(ctx context.Context, userID int64, preference models.DietaryPreference) (models.DietaryPreference, error)
	DeletePreference(ctx context.Context, userID, preferenceID int64) error
}

// AllergenRepository persists the global allergen catalog.
type AllergenRepository interface {
	ListAllergens(ctx context.Context, category, query string) ([]models.Allergen, error)
	GetAllergen(ctx context.Context, allergenID int64) (models.Allergen, error)
	FindAllergenByName(ctx context.Context, name string) (models.Allergen, error)
	CreateAllergen(ctx context.Context, allergen models.Allergen) (models.Allergen, error)
	UpdateAllergen(ctx context.Context, allergen models.Allergen) (models.Allergen, error)
	DeleteAllergen(ctx context.Context, allergenID int64) error
	CountAllergenReferences(ctx context.Context, allergenID int64) (int, error)
	SearchAllergens(ctx context.Context, search models.AllergenSearch) (models.AllergenPage, error)
}

// WellnessRepository persists mood, stress and sleep logs. At most one log
// per (user, kind, log_date) exists; collisions return [ErrAlreadyExists].
// Rows owned by another user are reported as [ErrNotFound].
type WellnessRepository interface {
	CreateMoodLog(ctx context.Context, log models.MoodLog) (models.MoodLog, error)
	GetMoodLog(ctx context.Context, userID, logID int64) (models.MoodLog, error)
	ListMoodLogs(ctx context.Context, userID int64, filter models.WellnessFilter) ([]models.MoodLog, error)
	UpdateMoodLog(ctx context.Context, log models.MoodLog) (models.MoodLog, error)
	DeleteMoodLog(ctx context.Context, userID, logID int64) error

	CreateStressLog(ctx context.Context, log models.StressLog) (models.StressLog, error)
	GetStressLog(ctx context.Context, userID, logID int64) (models.StressLog, error)
	ListStressLogs(ctx context.Context, userID int64, filter models.WellnessFilter) ([]models.StressLog, error)
	UpdateStressLog(ctx context.Context, log models.StressLog) (models.StressLog, error)
	DeleteStressLog(ctx context.Context, userID, logID int64) error

	CreateSleepLog(ctx context.Context, log models.SleepLog) (models.SleepLog, error)
	GetSleepLog(ctx context.Context, userID, logID int64) (models.SleepLog, error)
	ListSleepLogs(ctx context.Context, userID int64, filter models.WellnessFilter) ([]models.SleepLog, error)
	UpdateSleepLog(ctx context.Context, log models.SleepLog) (models.SleepLog, error)
	DeleteSleepLog(ctx context.Context, userID, logID int64) error

	// MoodStressAverages aggregates mood and stress scores logged on or
	// after since.
	MoodStressAverages(ctx context.Context, userID int64, since models.Date) (models.WellnessAverages, error)
}

// MealRepository persists meals and their food items.
type MealRepository interface {
	CreateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)
	GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error)
	ListMeals(ctx context.Context, userID int64, filter models.MealFilter) ([]models.Meal, error)
	UpdateMeal(ctx context.Context, meal models.Meal) (models.Meal, error)
	ReplaceFoodItems(ctx context.Context, mealID int64, items []models.FoodItem) ([]models.FoodItem, error)
	DeleteMeal(ctx context.Context, userID, mealID int64) error
}

// GoalRepository persists goals.
type GoalRepository interface {
	CreateGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	GetGoal(ctx context.Context, userID, goalID int64) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64, status *models.GoalStatus) ([]models.Goal, error)
	UpdateGoal(ctx context.Context, goal models.Goal) (models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID int64) error
}

// CatalogRepository persists restaurants and menu items.
type CatalogRepository interface {
	// ListActiveMenuItems returns every menu item of an active restaurant in
	// a stable order, joined with the restaurant name and cuisine.
	ListActiveMenuItems(ctx context.Context) ([]models.MenuItem, error)

	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error)
	CreateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error)
}

// AuditRepository appends and reads audit records. Records are never
// updated or deleted.
type AuditRepository interface {
	AppendRecord(ctx context.Context, record models.AuditRecord) (models.AuditRecord, error)
	ListRecords(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error)
}
