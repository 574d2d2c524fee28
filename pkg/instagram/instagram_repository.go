package instagram

import (
	"context"

	"Recipe-Blog-Backend/entities"

	"gorm.io/gorm"
)

type (
	InstagramRepository interface {
		CreateWebhookLog(ctx context.Context, entry *entities.InstagramWebhookLog) error
	}

	instagramRepository struct {
		db *gorm.DB
	}
)

func NewInstagramRepository(db *gorm.DB) InstagramRepository {
	return &instagramRepository{db: db}
}

func (r *instagramRepository) CreateWebhookLog(ctx context.Context, entry *entities.InstagramWebhookLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
