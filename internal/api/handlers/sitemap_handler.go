package handlers

import (
	"Recipe-Blog-Backend/pkg/sitemap"

	"github.com/gofiber/fiber/v2"
)

type (
	SitemapHandler interface {
		GetSitemap(c *fiber.Ctx) error
	}

	sitemapHandler struct {
		sitemapService sitemap.SitemapService
	}
)

func NewSitemapHandler(sitemapService sitemap.SitemapService) SitemapHandler {
	return &sitemapHandler{sitemapService: sitemapService}
}

func (h *sitemapHandler) GetSitemap(c *fiber.Ctx) error {
	body, err := h.sitemapService.Generate(c.Context())
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")

	return c.Send(body)
}
