package token

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

// Payload is the verified content of a bearer token: which admin it asserts
// and for how long.
type Payload struct {
	ID        uuid.UUID          `json:"id"`
	AdminID   primitive.ObjectID `json:"admin_id"`
	Username  string             `json:"username"`
	IssuedAt  time.Time          `json:"issued_at"`
	ExpiresAt time.Time          `json:"expires_at"`
}

func NewPayload(adminID primitive.ObjectID, username string, duration time.Duration) *Payload {
	now := time.Now()
	return &Payload{
		ID:        uuid.New(),
		AdminID:   adminID,
		Username:  username,
		IssuedAt:  now,
		ExpiresAt: now.Add(duration),
	}
}

func (p *Payload) Valid() error {
	if time.Now().After(p.ExpiresAt) {
		return ErrExpiredToken
	}
	return nil
}
