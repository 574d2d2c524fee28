package handlers

import (
	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/pkg/instagram"

	"github.com/gofiber/fiber/v2"
)

type (
	InstagramHandler interface {
		SyncRecentPosts(c *fiber.Ctx) error
	}

	instagramHandler struct {
		instagramService instagram.InstagramService
	}
)

func NewInstagramHandler(instagramService instagram.InstagramService) InstagramHandler {
	return &instagramHandler{instagramService: instagramService}
}

func (h *instagramHandler) SyncRecentPosts(c *fiber.Ctx) error {
	res, err := h.instagramService.SyncRecentPosts(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedInstagramSync, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessInstagramSync)
}
