package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecipeService struct {
	created   []domain.CreateRecipeRequest
	createErr error
}

func (f *fakeRecipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	if f.createErr != nil {
		return domain.RecipeResponse{}, f.createErr
	}
	f.created = append(f.created, req)
	return domain.RecipeResponse{ID: uuid.NewString(), Title: req.Title, Slug: req.Slug, Status: "draft"}, nil
}

func (f *fakeRecipeService) UpdateRecipe(ctx context.Context, id string, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	return domain.RecipeResponse{}, nil
}

func (f *fakeRecipeService) DeleteRecipe(ctx context.Context, id string) error { return nil }

func (f *fakeRecipeService) GetRecipeByID(ctx context.Context, id string) (domain.RecipeResponse, error) {
	return domain.RecipeResponse{}, nil
}

func (f *fakeRecipeService) GetAllRecipes(ctx context.Context, page, limit int) (domain.RecipeListResponse, error) {
	return domain.RecipeListResponse{}, nil
}

func (f *fakeRecipeService) GetPublishedRecipes(ctx context.Context, categorySlug string, page, limit int) (domain.RecipeListResponse, error) {
	return domain.RecipeListResponse{}, nil
}

func (f *fakeRecipeService) GetPublishedRecipeBySlug(ctx context.Context, slug string) (domain.RecipeResponse, error) {
	return domain.RecipeResponse{}, nil
}

func recipeTestApp(service *fakeRecipeService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	handler := NewRecipeHandler(service, utils.Validate)
	app.Post("/admin/api/v1/recipes", handler.CreateRecipe)
	return app
}

func TestCreateRecipe_MissingFieldsRejected(t *testing.T) {
	service := &fakeRecipeService{}
	app := recipeTestApp(service)

	req := httptest.NewRequest("POST", "/admin/api/v1/recipes", strings.NewReader(`{"slug":"Not A Slug"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Errors []domain.FieldError `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	fields := map[string]bool{}
	for _, fe := range body.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["description"])
	assert.True(t, fields["slug"])

	// nothing reached the service
	assert.Empty(t, service.created)
}

func TestCreateRecipe_ValidPayload(t *testing.T) {
	service := &fakeRecipeService{}
	app := recipeTestApp(service)

	payload := `{
		"title": "Garlic Butter Chicken",
		"slug": "garlic-butter-chicken",
		"description": "Weeknight skillet chicken",
		"ingredients": [{"id":"g1","name":"Main","items":["chicken","garlic"]}],
		"instructions": [{"id":"s1","step":1,"text":"Sear the chicken"}]
	}`
	req := httptest.NewRequest("POST", "/admin/api/v1/recipes", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Len(t, service.created, 1)
	assert.Equal(t, "garlic-butter-chicken", service.created[0].Slug)
}

func TestCreateRecipe_SlugConflict(t *testing.T) {
	service := &fakeRecipeService{createErr: domain.ErrSlugTaken}
	app := recipeTestApp(service)

	payload := `{"title":"Dup","slug":"garlic-butter-chicken","description":"dup"}`
	req := httptest.NewRequest("POST", "/admin/api/v1/recipes", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
