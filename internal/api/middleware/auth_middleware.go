package middleware

import (
	"net/http"

	"github.com/northwestmeats/storefront/internal/api/respond"
	"github.com/northwestmeats/storefront/internal/apperr"
	"github.com/northwestmeats/storefront/internal/constants"
	"github.com/northwestmeats/storefront/internal/infra/token"
)

// AuthMiddleware guards protected routes: the request passes only when the
// payload middleware already attached a verified token payload.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload)
		if !ok {
			respond.ErrorJSON(w, apperr.New(apperr.UnauthenticatedCode, "authorization token missing or invalid"))
			return
		}
		next.ServeHTTP(w, r)
	})
}
