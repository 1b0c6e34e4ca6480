package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Achievement struct {
	ID                       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title                    string             `json:"title" bson:"title" validate:"required"`
	Description              string             `json:"description" bson:"description" validate:"required"`
	Date                     *time.Time         `json:"date,omitempty" bson:"date,omitempty"`
	Organization             string             `json:"organization,omitempty" bson:"organization,omitempty"`
	CredentialLink           string             `json:"credentialLink,omitempty" bson:"credentialLink,omitempty"`
	CertificateImage         string             `json:"certificateImage,omitempty" bson:"certificateImage,omitempty"`
	CertificateImagePublicID string             `json:"certificateImagePublicId,omitempty" bson:"certificateImagePublicId,omitempty"`
	CreatedAt                time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt                time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type AchievementUpdate struct {
	Title                    *string    `json:"title" validate:"omitempty,min=1"`
	Description              *string    `json:"description" validate:"omitempty,min=1"`
	Date                     *time.Time `json:"date"`
	Organization             *string    `json:"organization"`
	CredentialLink           *string    `json:"credentialLink"`
	CertificateImage         *string    `json:"certificateImage"`
	CertificateImagePublicID *string    `json:"certificateImagePublicId"`
}
