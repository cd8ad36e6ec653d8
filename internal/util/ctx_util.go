package util

import (
	"context"

	"github.com/northwestmeats/storefront/internal/constants"
	"github.com/northwestmeats/storefront/internal/infra/token"
)

// GetTokenPayloadFromContext returns the verified bearer payload attached by
// the auth payload middleware, or nil when the request carried no valid token.
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload {
	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		return v.(*token.Payload)
	}
	return nil
}

func GetRequestID(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		return v.(string)
	}
	return "unknown"
}
