package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID   uuid.UUID `gorm:"index" json:"recipe_id"`
	Rating     int       `json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment,omitempty"`
	AuthorName string    `json:"author_name,omitempty"`
	Status     string    `gorm:"default:pending" json:"status"`
	IPHash     string    `gorm:"index" json:"-"`
	CreatedAt  time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}
