package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is the subdocument embedded in every job posting.
type Company struct {
	Name         string `bson:"name" json:"name"`
	ContactEmail string `bson:"contactEmail" json:"contactEmail"`
	ContactPhone string `bson:"contactPhone" json:"contactPhone"`
}

// Job is a job posting document. Jobs carry no owner reference: any
// authenticated caller may mutate any job in the gated variant.
type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Type        string             `bson:"type,omitempty" json:"type,omitempty"`
	Description string             `bson:"description" json:"description"`
	Company     Company            `bson:"company" json:"company"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
