package review

import (
	"context"
	"time"

	"Recipe-Blog-Backend/entities"

	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		CreateReview(ctx context.Context, review *entities.Review) error
		GetReviewByID(ctx context.Context, id string) (*entities.Review, error)
		GetReviewsByRecipe(ctx context.Context, recipeID string, status string, limit int) ([]*entities.Review, error)
		GetReviewsByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Review, int64, error)
		UpdateStatus(ctx context.Context, id string, status string) error
		CountRecentByIPHash(ctx context.Context, recipeID string, ipHash string, since time.Time) (int64, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReview(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) GetReviewsByRecipe(ctx context.Context, recipeID string, status string, limit int) ([]*entities.Review, error) {
	var reviews []*entities.Review
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND status = ?", recipeID, status).
		Order("created_at desc").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) GetReviewsByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Review{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (r *reviewRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *reviewRepository) CountRecentByIPHash(ctx context.Context, recipeID string, ipHash string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("recipe_id = ? AND ip_hash = ? AND created_at >= ?", recipeID, ipHash, since).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
