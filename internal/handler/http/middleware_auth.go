package http

import (
	"net/http"

	"github.com/MKhiriev/go-nutri-keeper/internal/logger"
	"github.com/MKhiriev/go-nutri-keeper/internal/service"
	"github.com/MKhiriev/go-nutri-keeper/internal/utils"
	"github.com/MKhiriev/go-nutri-keeper/models"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, resolves it through
// [service.AuthService.Authenticate], and stores the resulting user in the
// request context via [utils.WithUser]. The request logger is enriched with
// the user id.
//
// Requests are rejected with:
//   - 401 when the header is absent or malformed, or the token is expired,
//     invalid, or names a user that no longer exists;
//   - 403 when the account is suspended.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		ctx := logger.FromRequest(r).WithUserID(user.UserID).IntoContext(utils.WithUser(r.Context(), user))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly must run after auth. It lets through users with the admin role
// and answers 403 to everyone else.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		if !user.IsAdmin() {
			writeError(w, r, service.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// currentUser returns the user stored by auth. A missing user is reported
// as an internal error.
func currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return models.User{}, false
	}
	return user, true
}
