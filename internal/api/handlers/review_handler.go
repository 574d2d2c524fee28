package handlers

import (
	"errors"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		SubmitReview(c *fiber.Ctx) error
		GetApprovedReviews(c *fiber.Ctx) error
		GetReviewsByStatus(c *fiber.Ctx) error
		ModerateReview(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) SubmitReview(c *fiber.Ctx) error {
	req := new(domain.SubmitReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	res, err := h.reviewService.SubmitReview(c.Context(), *req, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReviewRateLimited):
			return presenters.ErrorResponse(c, fiber.StatusTooManyRequests, domain.MessageFailedSubmitReview, err)
		case errors.Is(err, domain.ErrRecipeNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedSubmitReview, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubmitReview, err)
		}
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSubmitReview)
}

func (h *reviewHandler) GetApprovedReviews(c *fiber.Ctx) error {
	res, err := h.reviewService.GetApprovedReviews(c.Context(), c.Params("slug"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) GetReviewsByStatus(c *fiber.Ctx) error {
	page, limit := pagination(c)
	status := c.Query("status", "pending")

	reviews, total, err := h.reviewService.GetReviewsByStatus(c.Context(), status, page, limit)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidReviewState) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetReviews, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"reviews": reviews,
		"total":   total,
		"page":    page,
		"limit":   limit,
	}, fiber.StatusOK, domain.MessageSuccessGetReviews)
}

func (h *reviewHandler) ModerateReview(c *fiber.Ctx) error {
	req := new(domain.ModerateReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	if err := h.reviewService.ModerateReview(c.Context(), c.Params("id"), req.Status); err != nil {
		switch {
		case errors.Is(err, domain.ErrReviewNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedModerateReview, err)
		case errors.Is(err, domain.ErrInvalidReviewState), errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedModerateReview, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedModerateReview, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessModerateReview)
}
