package newsletter

import (
	"context"

	"Recipe-Blog-Backend/entities"

	"gorm.io/gorm"
)

type (
	NewsletterRepository interface {
		FindByEmail(ctx context.Context, email string) (*entities.NewsletterSubscriber, error)
		CreateSubscriber(ctx context.Context, subscriber *entities.NewsletterSubscriber) error
		UpdateSubscriber(ctx context.Context, subscriber *entities.NewsletterSubscriber) error
	}

	newsletterRepository struct {
		db *gorm.DB
	}
)

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entities.NewsletterSubscriber, error) {
	var subscriber entities.NewsletterSubscriber
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&subscriber).Error; err != nil {
		return nil, err
	}
	return &subscriber, nil
}

func (r *newsletterRepository) CreateSubscriber(ctx context.Context, subscriber *entities.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Create(subscriber).Error
}

func (r *newsletterRepository) UpdateSubscriber(ctx context.Context, subscriber *entities.NewsletterSubscriber) error {
	return r.db.WithContext(ctx).Save(subscriber).Error
}
