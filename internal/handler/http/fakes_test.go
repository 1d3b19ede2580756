package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/internal/validators"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

// Each fake embeds the service interface so that only the methods a test
// exercises need a function field; calling anything else panics.

type fakeAppInfoService struct {
	info models.AppInfo
}

func (f *fakeAppInfoService) GetAppInfo(context.Context) models.AppInfo {
	return f.info
}

type fakeAuthService struct {
	registerFn     func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	verifyEmailFn  func(ctx context.Context, token string) (models.User, error)
	resendFn       func(ctx context.Context, req models.ResendVerificationRequest) error
	loginFn        func(ctx context.Context, req models.LoginRequest) (models.Token, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) VerifyEmail(ctx context.Context, token string) (models.User, error) {
	return f.verifyEmailFn(ctx, token)
}

func (f *fakeAuthService) ResendVerification(ctx context.Context, req models.ResendVerificationRequest) error {
	return f.resendFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	return f.authenticateFn(ctx, tokenString)
}

type fakeUserService struct {
	service.UserService
	listFn   func(ctx context.Context, filter models.UserFilter) (models.UserPage, error)
	updateFn func(ctx context.Context, actor models.User, userID int64, upd models.UserAdminUpdate) (models.User, error)
	auditFn  func(ctx context.Context, userID int64, limit, offset int) ([]models.AuditRecord, error)
}

func (f *fakeUserService) ListUsers(ctx context.Context, filter models.UserFilter) (models.UserPage, error) {
	return f.listFn(ctx, filter)
}

func (f *fakeUserService) UpdateUser(ctx context.Context, actor models.User, userID int64, upd models.UserAdminUpdate) (models.User, error) {
	return f.updateFn(ctx, actor, userID, upd)
}

func (f *fakeUserService) ListUserAudit(ctx context.Context, userID int64, limit, offset int) ([]models.AuditRecord, error) {
	return f.auditFn(ctx, userID, limit, offset)
}

type fakeProfileService struct {
	service.ProfileService
	saveProfileFn   func(ctx context.Context, userID int64, upd models.HealthProfileUpdate) (models.HealthProfile, error)
	listAllergiesFn func(ctx context.Context, userID int64) ([]models.UserAllergy, error)
	deleteAllergyFn func(ctx context.Context, userID, allergyID int64) error
}

func (f *fakeProfileService) SaveProfile(ctx context.Context, userID int64, upd models.HealthProfileUpdate) (models.HealthProfile, error) {
	return f.saveProfileFn(ctx, userID, upd)
}

func (f *fakeProfileService) ListAllergies(ctx context.Context, userID int64) ([]models.UserAllergy, error) {
	return f.listAllergiesFn(ctx, userID)
}

func (f *fakeProfileService) DeleteAllergy(ctx context.Context, userID, allergyID int64) error {
	return f.deleteAllergyFn(ctx, userID, allergyID)
}

type fakeAllergenService struct {
	service.AllergenService
	createFn func(ctx context.Context, actor models.User, in models.AllergenInput) (models.Allergen, error)
	deleteFn func(ctx context.Context, actor models.User, allergenID int64) error
	searchFn func(ctx context.Context, search models.AllergenSearch) (models.AllergenPage, error)
	exportFn func(ctx context.Context, format models.ExportFormat) ([]byte, string, error)
	auditFn  func(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error)
}

func (f *fakeAllergenService) CreateAllergen(ctx context.Context, actor models.User, in models.AllergenInput) (models.Allergen, error) {
	return f.createFn(ctx, actor, in)
}

func (f *fakeAllergenService) DeleteAllergen(ctx context.Context, actor models.User, allergenID int64) error {
	return f.deleteFn(ctx, actor, allergenID)
}

func (f *fakeAllergenService) SearchAllergens(ctx context.Context, search models.AllergenSearch) (models.AllergenPage, error) {
	return f.searchFn(ctx, search)
}

func (f *fakeAllergenService) ExportAllergens(ctx context.Context, format models.ExportFormat) ([]byte, string, error) {
	return f.exportFn(ctx, format)
}

func (f *fakeAllergenService) ListAllergenAudit(ctx context.Context, filter models.AuditFilter) ([]models.AuditRecord, error) {
	return f.auditFn(ctx, filter)
}

type fakeWellnessService struct {
	service.WellnessService
	createMoodFn func(ctx context.Context, user models.User, in models.MoodLogInput) (models.MoodLog, error)
	getSleepFn   func(ctx context.Context, userID, logID int64) (models.SleepLog, error)
	listFn       func(ctx context.Context, userID int64, filter models.WellnessFilter) (models.WellnessLogs, error)
}

func (f *fakeWellnessService) CreateMoodLog(ctx context.Context, user models.User, in models.MoodLogInput) (models.MoodLog, error) {
	return f.createMoodFn(ctx, user, in)
}

func (f *fakeWellnessService) GetSleepLog(ctx context.Context, userID, logID int64) (models.SleepLog, error) {
	return f.getSleepFn(ctx, userID, logID)
}

func (f *fakeWellnessService) ListLogs(ctx context.Context, userID int64, filter models.WellnessFilter) (models.WellnessLogs, error) {
	return f.listFn(ctx, userID, filter)
}

type fakeMealService struct {
	service.MealService
	listFn   func(ctx context.Context, userID int64, filter models.MealFilter) ([]models.Meal, error)
	updateFn func(ctx context.Context, userID, mealID int64, upd models.MealUpdate) (models.Meal, error)
}

func (f *fakeMealService) ListMeals(ctx context.Context, userID int64, filter models.MealFilter) ([]models.Meal, error) {
	return f.listFn(ctx, userID, filter)
}

func (f *fakeMealService) UpdateMeal(ctx context.Context, userID, mealID int64, upd models.MealUpdate) (models.Meal, error) {
	return f.updateFn(ctx, userID, mealID, upd)
}

type fakeGoalService struct {
	service.GoalService
	listFn func(ctx context.Context, userID int64, status *models.GoalStatus) ([]models.Goal, error)
}

func (f *fakeGoalService) ListGoals(ctx context.Context, userID int64, status *models.GoalStatus) ([]models.Goal, error) {
	return f.listFn(ctx, userID, status)
}

type fakeCatalogService struct {
	service.CatalogService
	createMenuItemFn func(ctx context.Context, restaurantID int64, in models.MenuItemInput) (models.MenuItem, error)
}

func (f *fakeCatalogService) CreateMenuItem(ctx context.Context, restaurantID int64, in models.MenuItemInput) (models.MenuItem, error) {
	return f.createMenuItemFn(ctx, restaurantID, in)
}

type fakeRecommendationService struct {
	mealsFn       func(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error)
	restaurantsFn func(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error)
}

func (f *fakeRecommendationService) RecommendMeals(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error) {
	return f.mealsFn(ctx, user, req)
}

func (f *fakeRecommendationService) RecommendRestaurants(ctx context.Context, user models.User, req models.RecommendationRequest) (models.RecommendationResponse, error) {
	return f.restaurantsFn(ctx, user, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var (
	testUser  = models.User{UserID: 7, Username: "alice1", Role: models.RoleUser, AccountStatus: models.AccountVerified}
	testAdmin = models.User{UserID: 1, Username: "root", Role: models.RoleAdmin, AccountStatus: models.AccountVerified}
)

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, Options{}, logger.Nop())
}

// asUser returns an auth service that resolves any token to user.
func asUser(user models.User) *fakeAuthService {
	return &fakeAuthService{
		authenticateFn: func(context.Context, string) (models.User, error) { return user, nil },
	}
}

// serve sends a request through the full router with a bearer token.
func serve(t *testing.T, h *Handler, method, target string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer test-token")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// withURLParams attaches chi URL params to a request that bypasses routing.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}

// decodeDetail reads an error body with a string detail.
func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

// decodeFieldErrors reads a 422 body.
func decodeFieldErrors(t *testing.T, rec *httptest.ResponseRecorder) validators.Errors {
	t.Helper()
	var body struct {
		Detail validators.Errors `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}
