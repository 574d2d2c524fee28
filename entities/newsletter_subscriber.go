package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
)

type NewsletterSubscriber struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Email          string     `gorm:"uniqueIndex" json:"email"`
	Status         string     `gorm:"default:active" json:"status"`
	SubscribedAt   time.Time  `gorm:"type:timestamp;default:now()" json:"subscribed_at"`
	UnsubscribedAt *time.Time `gorm:"type:timestamp" json:"unsubscribed_at,omitempty"`
}
