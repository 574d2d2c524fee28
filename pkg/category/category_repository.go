package category

import (
	"context"

	"Recipe-Blog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryRepository interface {
		CreateCategory(ctx context.Context, category *entities.Category) error
		UpdateCategory(ctx context.Context, category *entities.Category) error
		DeleteCategory(ctx context.Context, id string) error
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		CountRecipes(ctx context.Context, categoryID string) (int64, error)
		CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)
		SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Category{}).Error
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).
		Order("display_order asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) CountRecipes(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("recipe_categories").
		Where("category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Category{}).
		Where("id IN ?", ids).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Category{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
