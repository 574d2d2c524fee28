package category

import (
	"context"
	"errors"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CreateCategoryRequest) (domain.CategoryResponse, error) {
	taken, err := s.categoryRepository.SlugExists(ctx, req.Slug, uuid.Nil)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if taken {
		return domain.CategoryResponse{}, domain.ErrCategorySlugTaken
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category, 0), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.UpdateCategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryMissing
		}
		return domain.CategoryResponse{}, err
	}

	taken, err := s.categoryRepository.SlugExists(ctx, req.Slug, category.ID)
	if err != nil {
		return domain.CategoryResponse{}, err
	}
	if taken {
		return domain.CategoryResponse{}, domain.ErrCategorySlugTaken
	}

	category.Name = req.Name
	category.Slug = req.Slug
	category.Description = req.Description
	category.ImageURL = req.ImageURL
	if req.DisplayOrder != nil {
		category.DisplayOrder = *req.DisplayOrder
	}

	if err := s.categoryRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	count, err := s.categoryRepository.CountRecipes(ctx, id)
	if err != nil {
		return domain.CategoryResponse{}, err
	}

	return toCategoryResponse(category, count), nil
}

// DeleteCategory enforces the referential guard at the application layer: a
// category that still has recipes attached is never deleted.
func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryMissing
		}
		return err
	}

	count, err := s.categoryRepository.CountRecipes(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryHasRecipes
	}

	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		count, err := s.categoryRepository.CountRecipes(ctx, category.ID.String())
		if err != nil {
			return nil, err
		}
		responses = append(responses, toCategoryResponse(category, count))
	}
	return responses, nil
}

func toCategoryResponse(category *entities.Category, recipeCount int64) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:           category.ID.String(),
		Name:         category.Name,
		Slug:         category.Slug,
		Description:  category.Description,
		ImageURL:     category.ImageURL,
		DisplayOrder: category.DisplayOrder,
		RecipeCount:  recipeCount,
	}
}
