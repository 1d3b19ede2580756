package service

import (
	"context"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

// AppInfoService reports what GET /api returns.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// AuthService owns the registration, verification and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	VerifyEmail(ctx context.Context, token string) (models.User, error)
	ResendVerification(ctx context.Context, req models.ResendVerificationRequest) error
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// Authenticate resolves a bearer token to the current user row.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// UserService holds the administrator operations on accounts. Every
// mutation is audited.
type UserService interface {
	ListUsers(ctx context.Context, filter models.UserFilter) (models.UserPage, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, actor models.User, userID int64, upd models.UserAdminUpdate) (models.User, error)
	ListUserAudit(ctx context.Context, userID int64, limit, offset int) ([]models.AuditRecord, error)
}

// ProfileService manages the caller's health profile, allergies and dietary
// preferences.
type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.HealthProfile, error)
	SaveProfile(ctx context.Context, userID int64, upd models.HealthProfileUpdate) (models.HealthProfile, error)
	DeleteProfile(ctx context.Context, userID int64) error

	ListAllergies(ctx context.Context, userID int64) ([]models.UserAllergy, error)
	GetAllergy(ctx context.Context, userID, allergyID int64) (models.UserAllergy, error)
	CreateAllergy(ctx context.Context, userID int64, in models.UserAllergyInput) (models.UserAllergy, error)
	UpdateAllergy(ctx context.Context, userID, allergyID int64, upd models.UserAllergyUpdate) (models.UserAllergy, error)
	DeleteAllergy(ctx context.Context, userID, allergyID int64) error

	ListPreferences(ctx context.Context, userID int64) ([]models.DietaryPreference, error)
	GetPreference(ctx context.Context, userID, preferenceID int64) (models.DietaryPreference, error)
	CreatePreference(ctx context.Context, userID int64, in models.DietaryPreferenceInput) (models.DietaryPreference, error)
	UpdatePreference(ctx context.Context, userID, preferenceID int64, upd models.DietaryPreferenceUpdate) (models.DietaryPreference, error)
	DeletePreference(ctx context.Context, userID, preferenceID int64) error
}

// AllergenService exposes the allergen catalog. Writes are admin-only and
// audited in the same transaction.
type AllergenService interface {
	ListAllergens(ctx context.Context, category, query string) ([]models.Allergen, error)
	GetAllergen(ctx context.Context, allergenID int64) (models.Allergen, error)

	CreateAllergen(ctx context.Context, actor models.User, in models.AllergenInput) (models.Allergen, error)
	UpdateAllergen(ctx context.Context, actor models.User, allergenID int64, upd models.AllergenUpdate) (models.Allergen, error)
	DeleteAllergen(ctx context.Context, actor models.User, allergenID int64) error
	BulkCreateAllergens(ctx context.Context, actor models.User, req models.BulkAllergenRequest) ([]models.Allergen, error)
	SearchAllergens(ctx context.Context, search models.AllergenSearch) (models.AllergenPage, error)

	// ExportAllergens encodes the whole catalog and returns the body with
	// its content type.
	ExportAllergens(ctx context.Context, format models.ExportFormat) ([]byte, string, error)
	ListAllergenAudit(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error)
}

// WellnessService manages mood, stress and sleep logs. Free-text fields are
// encrypted before they reach the store and decrypted on the way out.
type WellnessService interface {
	CreateMoodLog(ctx context.Context, user models.User, in models.MoodLogInput) (models.MoodLog, error)
	GetMoodLog(ctx context.Context, userID, logID int64) (models.MoodLog, error)
	UpdateMoodLog(ctx context.Context, user models.User, logID int64, in models.MoodLogInput) (models.MoodLog, error)
	DeleteMoodLog(ctx context.Context, userID, logID int64) error

	CreateStressLog(ctx context.Context, user models.User, in models.StressLogInput) (models.StressLog, error)
	GetStressLog(ctx context.Context, userID, logID int64) (models.StressLog, error)
	UpdateStressLog(ctx context.Context, user models.User, logID int64, in models.StressLogInput) (models.StressLog, error)
	DeleteStressLog(ctx context.Context, userID, logID int64) error

	CreateSleepLog(ctx context.Context, user models.User, in models.SleepLogInput) (models.SleepLog, error)
	GetSleepLog(ctx context.Context, userID, logID int64) (models.SleepLog, error)
	UpdateSleepLog(ctx context.Context, user models.User, logID int64, in models.SleepLogInput) (models.SleepLog, error)
	DeleteSleepLog(ctx context.Context, userID, logID int64) error

	ListLogs(ctx context.Context, userID int64, filter models.WellnessFilter) (models.WellnessLogs, error)
}

// MealService manages meal logs. Totals are recomputed on every write.
type MealService interface {
	CreateMeal(ctx context.Context, userID int64, in models.MealInput) (models.Meal, error)
	ListMeals(ctx context.Context, userID int64, filter models.MealFilter) ([]models.Meal, error)
	GetMeal(ctx context.Context, userID, mealID int64) (models.Meal, error)
	UpdateMeal(ctx context.Context, userID, mealID int64, upd models.MealUpdate) (models.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID int64) error
}

// GoalService manages goals. Progress is derived on every read.
type GoalService interface {
	CreateGoal(ctx context.Context, userID int64, in models.GoalInput) (models.Goal, error)
	ListGoals(ctx context.Context, userID int64, status *models.GoalStatus) ([]models.Goal, error)
	GetGoal(ctx context.Context, userID, goalID int64) (models.Goal, error)
	UpdateGoal(ctx context.Context, userID, goalID int64, upd models.GoalUpdate) (models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID int64) error
}

// CatalogService maintains the restaurants and menu items recommendations
// draw from.
type CatalogService interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID int64) (models.Restaurant, error)
	CreateRestaurant(ctx context.Context, in models.RestaurantInput) (models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurantID int64, upd models.RestaurantUpdate) (models.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID int64) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, restaurantID int64, in models.MenuItemInput) (models.MenuItem, error)
}

// RecommendationService ranks menu items and restaurants for the caller.
type RecommendationService interface {
	RecommendMeals(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error)
	RecommendRestaurants(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error)
}
