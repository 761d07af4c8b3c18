package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account document. Password holds only the bcrypt hash and
// is never serialized to JSON.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	PhoneNumber      string             `bson:"phone_number" json:"phone_number"`
	Gender           string             `bson:"gender" json:"gender"`
	DateOfBirth      string             `bson:"date_of_birth" json:"date_of_birth"`
	MembershipStatus string             `bson:"membership_status" json:"membership_status"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updated_at"`
}
