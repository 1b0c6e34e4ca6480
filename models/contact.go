package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Email       string             `json:"email" bson:"email" validate:"required,email"`
	Subject     string             `json:"subject,omitempty" bson:"subject,omitempty"`
	Message     string             `json:"message" bson:"message" validate:"required"`
	Read        bool               `json:"read" bson:"read"`
	SubmittedAt time.Time          `json:"submittedAt" bson:"submittedAt"`
}

// ContactUpdate is used by the admin panel, mostly to toggle the read flag.
type ContactUpdate struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Subject *string `json:"subject"`
	Message *string `json:"message" validate:"omitempty,min=1"`
	Read    *bool   `json:"read"`
}
