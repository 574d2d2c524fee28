package media

import (
	"context"

	"Recipe-Blog-Backend/entities"

	"gorm.io/gorm"
)

type (
	MediaRepository interface {
		CreateMedia(ctx context.Context, media *entities.Media) error
		GetMediaByID(ctx context.Context, id string) (*entities.Media, error)
		GetMedia(ctx context.Context) ([]*entities.Media, error)
		DeleteMedia(ctx context.Context, id string) error
	}

	mediaRepository struct {
		db *gorm.DB
	}
)

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) CreateMedia(ctx context.Context, media *entities.Media) error {
	return r.db.WithContext(ctx).Create(media).Error
}

func (r *mediaRepository) GetMediaByID(ctx context.Context, id string) (*entities.Media, error) {
	var media entities.Media
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) GetMedia(ctx context.Context) ([]*entities.Media, error) {
	var media []*entities.Media
	if err := r.db.WithContext(ctx).
		Order("uploaded_at desc").
		Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mediaRepository) DeleteMedia(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Media{}).Error
}
