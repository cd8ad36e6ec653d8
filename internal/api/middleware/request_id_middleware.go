package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/northwestmeats/storefront/internal/constants"
)

// RequestIDMiddleware reuses an inbound request_id header when present,
// otherwise assigns a fresh one, and stores it in the request context.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("request_id")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), constants.RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
