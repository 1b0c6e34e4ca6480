package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ExperienceTypeInternship = "Internship"
	ExperienceTypeFullTime   = "Full-time"
	ExperienceTypeFreelance  = "Freelance"
)

type Experience struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Role        string             `json:"role" bson:"role" validate:"required"`
	Company     string             `json:"company" bson:"company" validate:"required"`
	Duration    string             `json:"duration" bson:"duration" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Type        string             `json:"type" bson:"type" validate:"omitempty,oneof=Internship Full-time Freelance"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type ExperienceUpdate struct {
	Role        *string `json:"role" validate:"omitempty,min=1"`
	Company     *string `json:"company" validate:"omitempty,min=1"`
	Duration    *string `json:"duration" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"omitempty,oneof=Internship Full-time Freelance"`
}
