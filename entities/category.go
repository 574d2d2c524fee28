package entities

import "github.com/google/uuid"

type Category struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Slug         string    `gorm:"uniqueIndex" json:"slug"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	DisplayOrder int       `gorm:"default:0" json:"display_order"`

	Recipes []*Recipe `gorm:"many2many:recipe_categories" json:"recipes,omitempty"`
	Timestamp
}
