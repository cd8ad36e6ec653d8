package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InquiryStatus string

const (
	InquiryStatusNew       InquiryStatus = "new"
	InquiryStatusRead      InquiryStatus = "read"
	InquiryStatusResponded InquiryStatus = "responded"
)

func IsValidInquiryStatus(status string) bool {
	switch InquiryStatus(status) {
	case InquiryStatusNew, InquiryStatusRead, InquiryStatusResponded:
		return true
	default:
		return false
	}
}

type ContactInquiry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Message    string             `bson:"message" json:"message"`
	Status     InquiryStatus      `bson:"status" json:"status"`
	AdminNotes string             `bson:"adminNotes" json:"adminNotes"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}
