package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Skill categories accepted by the admin forms.
const (
	SkillCategoryLanguage  = "Language"
	SkillCategoryFramework = "Framework"
	SkillCategoryDatabase  = "Database"
	SkillCategoryTool      = "Tool"
	SkillCategoryOther     = "Other"
)

type Skill struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Category  string             `json:"category" bson:"category" validate:"required,oneof=Language Framework Database Tool Other"`
	Level     *int               `json:"level,omitempty" bson:"level,omitempty" validate:"omitempty,min=0,max=100"`
	Icon      string             `json:"icon,omitempty" bson:"icon,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type SkillUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Category *string `json:"category" validate:"omitempty,oneof=Language Framework Database Tool Other"`
	Level    *int    `json:"level" validate:"omitempty,min=0,max=100"`
	Icon     *string `json:"icon"`
}
