package handlers

import (
	"errors"
	"strconv"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetPublishedRecipes(c *fiber.Ctx) error
		GetPublishedRecipeBySlug(c *fiber.Ctx) error
		GetAllRecipes(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetPublishedRecipes(c *fiber.Ctx) error {
	page, limit := pagination(c)
	categorySlug := c.Query("category", "")

	res, err := h.recipeService.GetPublishedRecipes(c.Context(), categorySlug, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetPublishedRecipeBySlug(c *fiber.Ctx) error {
	res, err := h.recipeService.GetPublishedRecipeBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetAllRecipes(c *fiber.Ctx) error {
	page, limit := pagination(c)

	res, err := h.recipeService.GetAllRecipes(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return recipeWriteError(c, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req)
	if err != nil {
		return recipeWriteError(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteRecipe, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func recipeWriteError(c *fiber.Ctx, message string, err error) error {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, message, err)
	case errors.Is(err, domain.ErrSlugTaken),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
	}
}

func pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}
