// Package utils holds small helpers shared by the server layers: request
// context values, JSON responses, the outbound HTTP client, session tokens
// and random verification tokens.
package utils

import (
	"context"

	"github.com/MKhiriev/go-nutri-keeper/models"
)

type contextKey string

func (c contextKey) String() string {
	return "nutri-keeper/" + string(c)
}

const (
	userIDKey contextKey = "user_id"
	userKey   contextKey = "user"
)

// WithUser stores the authenticated user, and its id separately, in ctx.
func WithUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, userIDKey, user.UserID)
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user stored by [WithUser].
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userKey).(models.User)
	return user, ok
}

// GetUserIDFromContext returns the id stored by [WithUser].
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
