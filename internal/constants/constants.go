package constants

import "time"

// for api auth
type ContextKey string

const (
	AuthorizationHeaderKey  ContextKey = "authorization"
	AuthorizationTypeBearer ContextKey = "bearer"
	AuthorizationPayloadKey ContextKey = "authorization_payload"
)

// AccessTokenDuration is the lifetime of an admin bearer token.
const AccessTokenDuration = 7 * 24 * time.Hour

// RecentOrdersLimit caps the recent-orders slice in the analytics overview.
const RecentOrdersLimit = 10

type RequestID string

const (
	RequestIDKey RequestID = "request_id"
)
