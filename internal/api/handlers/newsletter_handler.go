package handlers

import (
	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/pkg/newsletter"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	NewsletterHandler interface {
		Subscribe(c *fiber.Ctx) error
	}

	newsletterHandler struct {
		newsletterService newsletter.NewsletterService
		validator         *validator.Validate
	}
)

func NewNewsletterHandler(newsletterService newsletter.NewsletterService, validator *validator.Validate) NewsletterHandler {
	return &newsletterHandler{
		newsletterService: newsletterService,
		validator:         validator,
	}
}

func (h *newsletterHandler) Subscribe(c *fiber.Ctx) error {
	req := new(domain.SubscribeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	if err := h.newsletterService.Subscribe(c.Context(), req.Email); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSubscribe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessSubscribe)
}
