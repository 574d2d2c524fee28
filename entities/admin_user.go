package entities

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the allow-list: an authenticated session is only authorized
// when its email matches a row with IsActive=true.
type AdminUser struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email        string    `gorm:"uniqueIndex" json:"email"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
}
