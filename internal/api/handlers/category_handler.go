package handlers

import (
	"errors"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/pkg/category"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CategoryHandler interface {
		GetCategories(c *fiber.Ctx) error
		CreateCategory(c *fiber.Ctx) error
		UpdateCategory(c *fiber.Ctx) error
		DeleteCategory(c *fiber.Ctx) error
	}

	categoryHandler struct {
		categoryService category.CategoryService
		validator       *validator.Validate
	}
)

func NewCategoryHandler(categoryService category.CategoryService, validator *validator.Validate) CategoryHandler {
	return &categoryHandler{
		categoryService: categoryService,
		validator:       validator,
	}
}

func (h *categoryHandler) GetCategories(c *fiber.Ctx) error {
	res, err := h.categoryService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *categoryHandler) CreateCategory(c *fiber.Ctx) error {
	req := new(domain.CreateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	res, err := h.categoryService.CreateCategory(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrCategorySlugTaken) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCategory, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateCategory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateCategory)
}

func (h *categoryHandler) UpdateCategory(c *fiber.Ctx) error {
	req := new(domain.UpdateCategoryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	res, err := h.categoryService.UpdateCategory(c.Context(), c.Params("id"), *req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryMissing):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateCategory, err)
		case errors.Is(err, domain.ErrCategorySlugTaken), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCategory, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateCategory, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateCategory)
}

func (h *categoryHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.categoryService.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrCategoryMissing):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteCategory, err)
		case errors.Is(err, domain.ErrCategoryHasRecipes), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCategory, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteCategory, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCategory)
}
