package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/garage-ms/availability-service/internal/api/handlers"
)

type userIDKey struct{}

// Auth requires a positive X-User-ID header and stores the parsed ID in
// the request context. Authentication itself happens at the gateway; this
// service only needs the caller's identity.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get("X-User-ID")
		if raw == "" {
			handlers.RespondUnauthorized(w, "missing X-User-ID header")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid X-User-ID header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the authenticated user's ID, or 0 when the
// request did not pass through Auth
func UserIDFromContext(ctx context.Context) int64 {
	userID, _ := ctx.Value(userIDKey{}).(int64)
	return userID
}
