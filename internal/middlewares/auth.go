package middlewares

import (
	"context"
	"net/http"

	"github.com/apriyandi/timbangan-api/internal/httperr"
	"github.com/apriyandi/timbangan-api/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (int64, error)
}

// userIDKey is an unexported type for context keys.
type userIDKey struct{}

// AuthMiddleware returns a middleware that validates the bearer token
// and attaches the authenticated user id to the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				httperr.Write(w, httperr.Unauthorized(err.Error()))
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				httperr.Write(w, httperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx = SetUserIDToContext(ctx, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetUserIDToContext returns a context carrying the authenticated user id.
func SetUserIDToContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// GetUserIDFromContext returns the authenticated user id set by
// AuthMiddleware. The second return is false outside protected routes.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
