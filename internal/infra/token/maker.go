package token

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Maker creates and verifies admin bearer tokens.
type Maker interface {
	CreateToken(adminID primitive.ObjectID, username string, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
