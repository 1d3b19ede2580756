package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.metrics.Instrument)

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api", h.appInfo)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}

		r.With(h.limitRegistrations).Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/auth/verify-email/{token}", h.verifyEmail)
		r.Post("/api/auth/resend-verification", h.resendVerification)
	})

	// routes for any authenticated user
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/health", func(r chi.Router) {
			r.Get("/profile", h.getProfile)
			r.Put("/profile", h.saveProfile)
			r.Delete("/profile", h.deleteProfile)

			r.Get("/allergies", h.listAllergies)
			r.Post("/allergies", h.createAllergy)
			r.Get("/allergies/{id}", h.getAllergy)
			r.Put("/allergies/{id}", h.updateAllergy)
			r.Delete("/allergies/{id}", h.deleteAllergy)

			r.Get("/dietary-preferences", h.listPreferences)
			r.Post("/dietary-preferences", h.createPreference)
			r.Get("/dietary-preferences/{id}", h.getPreference)
			r.Put("/dietary-preferences/{id}", h.updatePreference)
			r.Delete("/dietary-preferences/{id}", h.deletePreference)

			r.Get("/allergens", h.listAllergens)
			r.Get("/allergens/{id}", h.getAllergen)

			r.Route("/admin/allergens", func(r chi.Router) {
				r.Use(h.adminOnly)

				r.Get("/", h.listAllergens)
				r.Post("/", h.createAllergen)
				r.Post("/bulk", h.bulkCreateAllergens)
				r.Get("/search", h.searchAllergens)
				r.Get("/export", h.exportAllergens)
				r.Get("/audit-logs", h.listAllergenAudit)
				r.Get("/{id}", h.getAllergen)
				r.Put("/{id}", h.updateAllergen)
				r.Delete("/{id}", h.deleteAllergen)
			})
		})

		r.Route("/api/meals", func(r chi.Router) {
			r.Get("/", h.listMeals)
			r.Post("/", h.createMeal)
			r.Get("/{id}", h.getMeal)
			r.Put("/{id}", h.updateMeal)
			r.Delete("/{id}", h.deleteMeal)
		})

		r.Route("/api/goals", func(r chi.Router) {
			r.Get("/", h.listGoals)
			r.Post("/", h.createGoal)
			r.Get("/{id}", h.getGoal)
			r.Put("/{id}", h.updateGoal)
			r.Delete("/{id}", h.deleteGoal)
		})

		r.Route("/api/wellness", func(r chi.Router) {
			r.Get("/logs", h.listWellnessLogs)

			r.Post("/mood-logs", h.createMoodLog)
			r.Get("/mood-logs/{id}", h.getMoodLog)
			r.Put("/mood-logs/{id}", h.updateMoodLog)
			r.Delete("/mood-logs/{id}", h.deleteMoodLog)

			r.Post("/stress-logs", h.createStressLog)
			r.Get("/stress-logs/{id}", h.getStressLog)
			r.Put("/stress-logs/{id}", h.updateStressLog)
			r.Delete("/stress-logs/{id}", h.deleteStressLog)

			r.Post("/sleep-logs", h.createSleepLog)
			r.Get("/sleep-logs/{id}", h.getSleepLog)
			r.Put("/sleep-logs/{id}", h.updateSleepLog)
			r.Delete("/sleep-logs/{id}", h.deleteSleepLog)
		})

		r.Post("/api/recommend/meal", h.recommendMeal)
		r.Post("/api/recommend/restaurant", h.recommendRestaurant)

		// routes for administrators
		r.Group(func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Route("/api/users/admin/users", func(r chi.Router) {
				r.Get("/", h.listUsers)
				r.Get("/{id}", h.getUser)
				r.Put("/{id}", h.updateUser)
				r.Get("/{id}/audit-logs", h.listUserAudit)
			})

			r.Route("/api/admin/restaurants", func(r chi.Router) {
				r.Get("/", h.listRestaurants)
				r.Post("/", h.createRestaurant)
				r.Get("/{id}", h.getRestaurant)
				r.Put("/{id}", h.updateRestaurant)
				r.Get("/{id}/menu-items", h.listMenuItems)
				r.Post("/{id}/menu-items", h.createMenuItem)
			})
		})
	})

	return router
}
