package handlers

import (
	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/pkg/search"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		SearchRecipes(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

func (h *searchHandler) SearchRecipes(c *fiber.Ctx) error {
	res, err := h.searchService.SearchRecipes(c.Context(), c.Query("q"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedSearch, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearch)
}
