package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"
	"Recipe-Blog-Backend/pkg/category"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error)
		GetAllRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error)
		GetPublishedRecipes(ctx context.Context, categorySlug string, page, limit int) (domain.RecipeListResponse, error)
		GetPublishedRecipeBySlug(ctx context.Context, slug string) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		categoryRepository category.CategoryRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, categoryRepository category.CategoryRepository) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	taken, err := s.recipeRepository.SlugExists(ctx, req.Slug, uuid.Nil)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if taken {
		return domain.RecipeResponse{}, domain.ErrSlugTaken
	}

	categoryIDs, err := s.resolveCategoryIDs(ctx, req.CategoryIDs)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{ID: uuid.New()}
	if err := applyRequest(recipe, req); err != nil {
		return domain.RecipeResponse{}, err
	}

	if recipe.Status == entities.RecipeStatusPublished {
		now := time.Now()
		recipe.PublishedAt = &now
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, categoryIDs); err != nil {
		return domain.RecipeResponse{}, err
	}

	created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(created), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	taken, err := s.recipeRepository.SlugExists(ctx, req.Slug, recipe.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if taken {
		return domain.RecipeResponse{}, domain.ErrSlugTaken
	}

	categoryIDs, err := s.resolveCategoryIDs(ctx, req.CategoryIDs)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	wasPublished := recipe.Status == entities.RecipeStatusPublished
	if err := applyRequest(recipe, req.CreateRecipeRequest); err != nil {
		return domain.RecipeResponse{}, err
	}

	if recipe.Status == entities.RecipeStatusPublished && !wasPublished {
		now := time.Now()
		recipe.PublishedAt = &now
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, categoryIDs); err != nil {
		return domain.RecipeResponse{}, err
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(updated), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetAllRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, "", "", page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return toRecipeListResponse(recipes, count), nil
}

func (s *recipeService) GetPublishedRecipes(ctx context.Context, categorySlug string, page, limit int) (domain.RecipeListResponse, error) {
	recipes, count, err := s.recipeRepository.GetRecipes(ctx, entities.RecipeStatusPublished, categorySlug, page, limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return toRecipeListResponse(recipes, count), nil
}

func (s *recipeService) GetPublishedRecipeBySlug(ctx context.Context, slug string) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	if recipe.Status != entities.RecipeStatusPublished {
		return domain.RecipeResponse{}, domain.ErrRecipeNotFound
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) resolveCategoryIDs(ctx context.Context, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, v := range raw {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		count, err := s.categoryRepository.CountByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		if count != int64(len(ids)) {
			return nil, domain.ErrCategoryNotFound
		}
	}
	return ids, nil
}

func applyRequest(recipe *entities.Recipe, req domain.CreateRecipeRequest) error {
	recipe.Title = req.Title
	recipe.Slug = req.Slug
	recipe.Description = req.Description
	recipe.IntroText = req.IntroText
	recipe.Notes = req.Notes
	recipe.FeaturedImageURL = req.FeaturedImageURL
	recipe.PrepTimeMinutes = req.PrepTime
	recipe.CookTimeMinutes = req.CookTime
	recipe.TotalTimeMinutes = deriveTotalTime(req.PrepTime, req.CookTime)
	recipe.Servings = req.Servings
	recipe.Cuisine = req.Cuisine
	recipe.MetaTitle = req.MetaTitle
	recipe.MetaDescription = req.MetaDescription

	recipe.Difficulty = req.Difficulty
	if recipe.Difficulty == "" {
		recipe.Difficulty = "easy"
	}
	recipe.Status = req.Status
	if recipe.Status == "" {
		recipe.Status = entities.RecipeStatusDraft
	}

	if req.Ingredients == nil {
		req.Ingredients = []domain.IngredientGroup{}
	}
	if req.Instructions == nil {
		req.Instructions = []domain.InstructionStep{}
	}

	var err error
	if recipe.Ingredients, err = marshalJSON(req.Ingredients); err != nil {
		return err
	}
	if recipe.Instructions, err = marshalJSON(req.Instructions); err != nil {
		return err
	}
	if req.GalleryImages != nil {
		if recipe.GalleryImages, err = marshalJSON(req.GalleryImages); err != nil {
			return err
		}
	}
	if req.VideoLinks != nil {
		if recipe.VideoLinks, err = marshalJSON(req.VideoLinks); err != nil {
			return err
		}
	}
	return nil
}

// deriveTotalTime falls back to prep+cook when no explicit total is stored.
func deriveTotalTime(prep, cook *int) *int {
	if prep == nil && cook == nil {
		return nil
	}
	total := 0
	if prep != nil {
		total += *prep
	}
	if cook != nil {
		total += *cook
	}
	return &total
}

func marshalJSON(v any) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func toRecipeListResponse(recipes []*entities.Recipe, count int64) domain.RecipeListResponse {
	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		responses = append(responses, toRecipeResponse(recipe))
	}
	return domain.RecipeListResponse{Recipes: responses, Total: count}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	res := domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Title:            recipe.Title,
		Slug:             recipe.Slug,
		Description:      recipe.Description,
		IntroText:        recipe.IntroText,
		Notes:            recipe.Notes,
		FeaturedImageURL: recipe.FeaturedImageURL,
		PrepTime:         recipe.PrepTimeMinutes,
		CookTime:         recipe.CookTimeMinutes,
		TotalTime:        recipe.TotalTimeMinutes,
		Servings:         recipe.Servings,
		Difficulty:       recipe.Difficulty,
		Cuisine:          recipe.Cuisine,
		Status:           recipe.Status,
		PublishedAt:      recipe.PublishedAt,
		InstagramPostURL: recipe.InstagramPostURL,
		Categories:       []domain.CategorySummary{},
		CreatedAt:        recipe.CreatedAt,
		UpdatedAt:        recipe.UpdatedAt,
	}

	// JSON columns are schema-checked on write, so unmarshal failures here
	// only happen on hand-edited rows; such fields come back empty.
	_ = json.Unmarshal(recipe.Ingredients, &res.Ingredients)
	_ = json.Unmarshal(recipe.Instructions, &res.Instructions)
	if len(recipe.GalleryImages) > 0 {
		_ = json.Unmarshal(recipe.GalleryImages, &res.GalleryImages)
	}
	if len(recipe.VideoLinks) > 0 {
		res.VideoLinks = &domain.VideoLinks{}
		_ = json.Unmarshal(recipe.VideoLinks, res.VideoLinks)
	}
	if res.Ingredients == nil {
		res.Ingredients = []domain.IngredientGroup{}
	}
	if res.Instructions == nil {
		res.Instructions = []domain.InstructionStep{}
	}

	for _, cat := range recipe.Categories {
		res.Categories = append(res.Categories, domain.CategorySummary{
			ID:   cat.ID.String(),
			Name: cat.Name,
			Slug: cat.Slug,
		})
	}
	return res
}
