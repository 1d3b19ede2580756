package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/metrics"
	"github.com/MKhiriev/go-nutri-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
	"github.com/MKhiriev/go-nutri-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	m := metrics.New()
	limiter := ratelimit.NewLimiter(5)
	log := logger.Nop()

	h := NewHandler(svcs, Options{
		Metrics:            m,
		RegisterLimiter:    limiter,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Same(t, m, h.metrics)
	assert.Same(t, limiter, h.registerLimiter)
	assert.Equal(t, []string{"http://localhost:3000"}, h.corsOrigins)
	assert.Same(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

// protectedRoutes must answer 401 without a token, proving they exist and sit
// behind auth.
var protectedRoutes = []struct {
	method string
	path   string
}{
	{http.MethodGet, "/api/health/profile"},
	{http.MethodPut, "/api/health/profile"},
	{http.MethodDelete, "/api/health/profile"},
	{http.MethodGet, "/api/health/allergies"},
	{http.MethodPost, "/api/health/allergies"},
	{http.MethodPut, "/api/health/allergies/1"},
	{http.MethodGet, "/api/health/dietary-preferences/1"},
	{http.MethodGet, "/api/health/allergens"},
	{http.MethodGet, "/api/health/allergens/1"},
	{http.MethodPost, "/api/health/admin/allergens"},
	{http.MethodPost, "/api/health/admin/allergens/bulk"},
	{http.MethodGet, "/api/health/admin/allergens/search"},
	{http.MethodGet, "/api/health/admin/allergens/export"},
	{http.MethodGet, "/api/health/admin/allergens/audit-logs"},
	{http.MethodDelete, "/api/health/admin/allergens/1"},
	{http.MethodGet, "/api/meals"},
	{http.MethodPost, "/api/meals"},
	{http.MethodDelete, "/api/meals/3"},
	{http.MethodGet, "/api/goals"},
	{http.MethodPut, "/api/goals/2"},
	{http.MethodGet, "/api/wellness/logs"},
	{http.MethodPost, "/api/wellness/mood-logs"},
	{http.MethodGet, "/api/wellness/stress-logs/1"},
	{http.MethodDelete, "/api/wellness/sleep-logs/1"},
	{http.MethodPost, "/api/recommend/meal"},
	{http.MethodPost, "/api/recommend/restaurant"},
	{http.MethodGet, "/api/users/admin/users"},
	{http.MethodPut, "/api/users/admin/users/4"},
	{http.MethodGet, "/api/users/admin/users/4/audit-logs"},
	{http.MethodGet, "/api/admin/restaurants"},
	{http.MethodPost, "/api/admin/restaurants/1/menu-items"},
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	for _, rt := range protectedRoutes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
		})
	}
}

func TestInit_AdminRoutesRejectRegularUsers(t *testing.T) {
	h := newTestHandler(&service.Services{AuthService: asUser(testUser)})

	for _, path := range []string{
		"/api/users/admin/users",
		"/api/health/admin/allergens/search",
		"/api/admin/restaurants",
	} {
		rec := serve(t, h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
		assert.Equal(t, service.ErrForbidden.Error(), decodeDetail(t, rec))
	}
}

func TestInit_UnknownRouteIsJSON404(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeDetail(t, rec))
}

func TestInit_WrongMethodIs405(t *testing.T) {
	router := newTestHandler(&service.Services{}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/auth/login", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Header().Get("Allow"), http.MethodPost)
}

func TestInit_AppInfo(t *testing.T) {
	info := models.AppInfo{Name: "nutri-keeper", Version: "1.4.0", Status: "ok"}
	router := newTestHandler(&service.Services{AppInfoService: &fakeAppInfoService{info: info}}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.AppInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, info, got)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestInit_MetricsEndpoint(t *testing.T) {
	t.Run("exposed when metrics are configured", func(t *testing.T) {
		svcs := &service.Services{AppInfoService: &fakeAppInfoService{}}
		router := NewHandler(svcs, Options{Metrics: metrics.New()}, logger.Nop()).Init()

		// one instrumented request so the http collectors have samples
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api", nil))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, strings.Contains(rec.Body.String(), "nutri_keeper_http_requests_total"))
	})

	t.Run("absent otherwise", func(t *testing.T) {
		router := newTestHandler(&service.Services{}).Init()

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInit_CORSPreflight(t *testing.T) {
	h := NewHandler(&service.Services{}, Options{CORSAllowedOrigins: []string{"http://localhost:3000"}}, logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/meals", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInit_RecoversFromPanics(t *testing.T) {
	auth := &fakeAuthService{
		loginFn: func(context.Context, models.LoginRequest) (models.Token, error) { panic("boom") },
	}
	router := newTestHandler(&service.Services{AuthService: auth}).Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@b.co","password":"x"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
