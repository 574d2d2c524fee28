package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InstagramWebhookLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Payload   datatypes.JSON `json:"payload"`
	Processed bool           `gorm:"default:false" json:"processed"`
	CreatedAt time.Time      `gorm:"type:timestamp;default:now()" json:"created_at"`
}
