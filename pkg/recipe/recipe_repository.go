package recipe

import (
	"context"

	"Recipe-Blog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uuid.UUID) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uuid.UUID) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, status string, categorySlug string, page, limit int) ([]*entities.Recipe, int64, error)
		GetPublishedRecipes(ctx context.Context) ([]*entities.Recipe, error)
		SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
		ExistsByInstagramPostID(ctx context.Context, postID string) (bool, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// CreateRecipe persists the recipe row and its category associations in a
// single transaction so a failed association insert rolls back the recipe.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Create(recipe).Error; err != nil {
			return err
		}
		return replaceCategories(tx, recipe, categoryIDs)
	})
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Save(recipe).Error; err != nil {
			return err
		}
		return replaceCategories(tx, recipe, categoryIDs)
	})
}

func replaceCategories(tx *gorm.DB, recipe *entities.Recipe, categoryIDs []uuid.UUID) error {
	categories := make([]*entities.Category, 0, len(categoryIDs))
	for _, id := range categoryIDs {
		categories = append(categories, &entities.Category{ID: id})
	}
	return tx.Model(recipe).Association("Categories").Replace(categories)
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	recipeUUID, err := uuid.Parse(id)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := entities.Recipe{ID: recipeUUID}
		if err := tx.Model(&recipe).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("slug = ?", slug).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, status string, categorySlug string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if status != "" {
		query = query.Where("recipes.status = ?", status)
	}
	if categorySlug != "" {
		query = query.
			Joins("JOIN recipe_categories ON recipes.id = recipe_categories.recipe_id").
			Joins("JOIN categories ON categories.id = recipe_categories.category_id").
			Where("categories.slug = ?", categorySlug)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Categories").
		Offset(offset).
		Limit(limit).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetPublishedRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("status = ?", entities.RecipeStatusPublished).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("slug = ?", slug)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) ExistsByInstagramPostID(ctx context.Context, postID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("instagram_post_id = ?", postID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
