// internal/api/handler/middleware.go
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"shopku-api/internal/auth"
	"shopku-api/internal/util"
)

type contextKey string

const userIDKey contextKey = "userID"

// Authenticator verifies the Authorization bearer token and stores the
// authenticated user's ID in the request context. Every route behind it can
// rely on UserIDFromContext succeeding.
func Authenticator(tokens *auth.TokenManager, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				respondWithError(logger, w, util.ErrUnauthorized)
				return
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondWithError(logger, w, util.ErrUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user's ID set by Authenticator.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
