package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RecipeStatusDraft     = "draft"
	RecipeStatusPublished = "published"
	RecipeStatusArchived  = "archived"
)

type Recipe struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title            string         `json:"title"`
	Slug             string         `gorm:"uniqueIndex" json:"slug"`
	Description      string         `gorm:"type:text" json:"description"`
	IntroText        string         `gorm:"type:text" json:"intro_text,omitempty"`
	Notes            string         `gorm:"type:text" json:"notes,omitempty"`
	FeaturedImageURL string         `json:"featured_image_url,omitempty"`
	GalleryImages    datatypes.JSON `json:"gallery_images,omitempty"`
	Ingredients      datatypes.JSON `json:"ingredients"`
	Instructions     datatypes.JSON `json:"instructions"`
	VideoLinks       datatypes.JSON `json:"video_links,omitempty"`
	PrepTimeMinutes  *int           `json:"prep_time_minutes,omitempty"`
	CookTimeMinutes  *int           `json:"cook_time_minutes,omitempty"`
	TotalTimeMinutes *int           `json:"total_time_minutes,omitempty"`
	Servings         string         `json:"servings,omitempty"`
	Difficulty       string         `json:"difficulty,omitempty"`
	Cuisine          string         `json:"cuisine,omitempty"`
	MetaTitle        string         `json:"meta_title,omitempty"`
	MetaDescription  string         `json:"meta_description,omitempty"`
	Status           string         `gorm:"default:draft" json:"status"`
	PublishedAt      *time.Time     `gorm:"type:timestamp" json:"published_at,omitempty"`
	InstagramPostID  string         `gorm:"index" json:"instagram_post_id,omitempty"`
	InstagramPostURL string         `json:"instagram_post_url,omitempty"`

	Categories []*Category `gorm:"many2many:recipe_categories" json:"categories,omitempty"`
	Timestamp
}
