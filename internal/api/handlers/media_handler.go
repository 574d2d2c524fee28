package handlers

import (
	"errors"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/pkg/media"

	"github.com/gofiber/fiber/v2"
)

type (
	MediaHandler interface {
		UploadMedia(c *fiber.Ctx) error
		GetMedia(c *fiber.Ctx) error
		DeleteMedia(c *fiber.Ctx) error
	}

	mediaHandler struct {
		mediaService media.MediaService
	}
)

func NewMediaHandler(mediaService media.MediaService) MediaHandler {
	return &mediaHandler{mediaService: mediaService}
}

func (h *mediaHandler) UploadMedia(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}

	report, err := h.mediaService.UploadBatch(c.Context(), files)
	if err != nil {
		if errors.Is(err, domain.ErrNoFilesUploaded) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadMedia, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUploadMedia, err)
	}

	return presenters.SuccessResponse(c, report, fiber.StatusOK, domain.MessageSuccessUploadMedia)
}

func (h *mediaHandler) GetMedia(c *fiber.Ctx) error {
	res, err := h.mediaService.GetMedia(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMedia, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMedia)
}

func (h *mediaHandler) DeleteMedia(c *fiber.Ctx) error {
	if err := h.mediaService.DeleteMedia(c.Context(), c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrMediaNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteMedia, err)
		case errors.Is(err, domain.ErrParseUUID):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMedia, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteMedia, err)
		}
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMedia)
}
