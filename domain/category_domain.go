package domain

import "errors"

var (
	MessageSuccessGetCategories  = "success get categories"
	MessageSuccessCreateCategory = "category created successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedCreateCategory = "failed to create category"
	MessageFailedUpdateCategory = "failed to update category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryHasRecipes = errors.New("cannot delete category with recipes, remove recipes first")
	ErrCategorySlugTaken  = errors.New("category slug already in use")
	ErrCategoryMissing    = errors.New("category not found")
)

type (
	CreateCategoryRequest struct {
		Name         string `json:"name" validate:"required"`
		Slug         string `json:"slug" validate:"required,slug"`
		Description  string `json:"description"`
		ImageURL     string `json:"image_url" validate:"omitempty,url"`
		DisplayOrder *int   `json:"display_order" validate:"omitempty,gte=0"`
	}

	UpdateCategoryRequest struct {
		CreateCategoryRequest
	}

	CategoryResponse struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Slug         string `json:"slug"`
		Description  string `json:"description,omitempty"`
		ImageURL     string `json:"image_url,omitempty"`
		DisplayOrder int    `json:"display_order"`
		RecipeCount  int64  `json:"recipe_count"`
	}
)
