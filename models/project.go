package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Project struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title" validate:"required"`
	Description   string             `json:"description" bson:"description" validate:"required"`
	Technologies  []string           `json:"technologies" bson:"technologies" validate:"required,min=1,dive,required"`
	LiveLink      string             `json:"liveLink,omitempty" bson:"liveLink,omitempty"`
	RepoLink      string             `json:"repoLink,omitempty" bson:"repoLink,omitempty"`
	Image         string             `json:"image,omitempty" bson:"image,omitempty"`
	ImagePublicID string             `json:"imagePublicId,omitempty" bson:"imagePublicId,omitempty"`
	Featured      bool               `json:"featured" bson:"featured"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// ProjectUpdate carries a partial update. Nil fields are left untouched so
// that a caller can set featured back to false without resending the rest.
type ProjectUpdate struct {
	Title         *string  `json:"title" validate:"omitempty,min=1"`
	Description   *string  `json:"description" validate:"omitempty,min=1"`
	Technologies  []string `json:"technologies" validate:"omitempty,min=1,dive,required"`
	LiveLink      *string  `json:"liveLink"`
	RepoLink      *string  `json:"repoLink"`
	Image         *string  `json:"image"`
	ImagePublicID *string  `json:"imagePublicId"`
	Featured      *bool    `json:"featured"`
}
