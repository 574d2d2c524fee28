package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"

	ErrRecipeNotFound   = errors.New("recipe not found")
	ErrSlugTaken        = errors.New("slug already in use")
	ErrCategoryNotFound = errors.New("category not found")
)

type (
	IngredientGroup struct {
		ID    string   `json:"id"`
		Name  string   `json:"name"`
		Items []string `json:"items" validate:"dive,required"`
	}

	InstructionStep struct {
		ID   string `json:"id"`
		Step int    `json:"step" validate:"omitempty,gte=0"`
		Text string `json:"text" validate:"required"`
	}

	VideoLinks struct {
		Youtube   string `json:"youtube,omitempty" validate:"omitempty,url"`
		Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
		Tiktok    string `json:"tiktok,omitempty" validate:"omitempty,url"`
	}

	CreateRecipeRequest struct {
		Title            string            `json:"title" validate:"required"`
		Slug             string            `json:"slug" validate:"required,slug"`
		Description      string            `json:"description" validate:"required"`
		IntroText        string            `json:"intro_text"`
		Notes            string            `json:"notes"`
		FeaturedImageURL string            `json:"featured_image_url" validate:"omitempty,url"`
		GalleryImages    []string          `json:"gallery_images" validate:"dive,url"`
		Ingredients      []IngredientGroup `json:"ingredients" validate:"dive"`
		Instructions     []InstructionStep `json:"instructions" validate:"dive"`
		VideoLinks       *VideoLinks       `json:"video_links"`
		PrepTime         *int              `json:"prep_time" validate:"omitempty,gte=0"`
		CookTime         *int              `json:"cook_time" validate:"omitempty,gte=0"`
		Servings         string            `json:"servings"`
		Difficulty       string            `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Cuisine          string            `json:"cuisine"`
		MetaTitle        string            `json:"meta_title"`
		MetaDescription  string            `json:"meta_description"`
		Status           string            `json:"status" validate:"omitempty,oneof=draft published archived"`
		CategoryIDs      []string          `json:"category_ids" validate:"dive,uuid"`
	}

	UpdateRecipeRequest struct {
		CreateRecipeRequest
	}

	RecipeResponse struct {
		ID               string             `json:"id"`
		Title            string             `json:"title"`
		Slug             string             `json:"slug"`
		Description      string             `json:"description"`
		IntroText        string             `json:"intro_text,omitempty"`
		Notes            string             `json:"notes,omitempty"`
		FeaturedImageURL string             `json:"featured_image_url,omitempty"`
		GalleryImages    []string           `json:"gallery_images,omitempty"`
		Ingredients      []IngredientGroup  `json:"ingredients"`
		Instructions     []InstructionStep  `json:"instructions"`
		VideoLinks       *VideoLinks        `json:"video_links,omitempty"`
		PrepTime         *int               `json:"prep_time_minutes,omitempty"`
		CookTime         *int               `json:"cook_time_minutes,omitempty"`
		TotalTime        *int               `json:"total_time_minutes,omitempty"`
		Servings         string             `json:"servings,omitempty"`
		Difficulty       string             `json:"difficulty,omitempty"`
		Cuisine          string             `json:"cuisine,omitempty"`
		Status           string             `json:"status"`
		PublishedAt      *time.Time         `json:"published_at,omitempty"`
		InstagramPostURL string             `json:"instagram_post_url,omitempty"`
		Categories       []CategorySummary  `json:"categories"`
		CreatedAt        time.Time          `json:"created_at"`
		UpdatedAt        time.Time          `json:"updated_at"`
	}

	CategorySummary struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}

	RecipeListResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Total   int64            `json:"total"`
	}
)
