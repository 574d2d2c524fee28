package routes

import (
	"Recipe-Blog-Backend/internal/api/handlers"
	"Recipe-Blog-Backend/internal/middleware"
	"Recipe-Blog-Backend/pkg/auth"
	"Recipe-Blog-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	RecipeHandler     handlers.RecipeHandler
	CategoryHandler   handlers.CategoryHandler
	ReviewHandler     handlers.ReviewHandler
	SearchHandler     handlers.SearchHandler
	MediaHandler      handlers.MediaHandler
	InstagramHandler  handlers.InstagramHandler
	SitemapHandler    handlers.SitemapHandler
	NewsletterHandler handlers.NewsletterHandler
	AuthHandler       handlers.AuthHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	AuthService       auth.AuthService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.PublicRoute()
	c.AuthRoute()
	c.AdminRoute()
	c.CronRoute()
}

func (c *Config) PublicRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Get("/sitemap.xml", c.SitemapHandler.GetSitemap)

	api := c.App.Group("/api/v1")
	{
		api.Get("/recipes", c.RecipeHandler.GetPublishedRecipes)
		api.Get("/recipes/:slug", c.RecipeHandler.GetPublishedRecipeBySlug)
		api.Get("/recipes/:slug/reviews", c.ReviewHandler.GetApprovedReviews)
		api.Post("/reviews", c.ReviewHandler.SubmitReview)
		api.Get("/categories", c.CategoryHandler.GetCategories)
		api.Get("/search", c.SearchHandler.SearchRecipes)
		api.Post("/newsletter/subscribe", c.NewsletterHandler.Subscribe)
	}
}

func (c *Config) AuthRoute() {
	authGroup := c.App.Group("/auth")
	{
		authGroup.Get("/login", c.Middleware.LoginRedirect(c.AuthService, c.JWTService), func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"message":  "sign in required",
				"error":    c.Query("error"),
				"redirect": c.Query("redirect"),
			})
		})
		authGroup.Post("/login", c.AuthHandler.Login)
		authGroup.Get("/callback", c.AuthHandler.Callback)
		authGroup.Post("/logout", c.AuthHandler.Logout)
	}
}

func (c *Config) AdminRoute() {
	admin := c.App.Group("/admin", c.Middleware.AdminGate(c.AuthService, c.JWTService))
	admin.Get("/session", c.AuthHandler.Session)

	api := admin.Group("/api/v1")
	{
		api.Get("/recipes", c.RecipeHandler.GetAllRecipes)
		api.Post("/recipes", c.RecipeHandler.CreateRecipe)
		api.Get("/recipes/:id", c.RecipeHandler.GetRecipeByID)
		api.Put("/recipes/:id", c.RecipeHandler.UpdateRecipe)
		api.Delete("/recipes/:id", c.RecipeHandler.DeleteRecipe)

		api.Post("/categories", c.CategoryHandler.CreateCategory)
		api.Put("/categories/:id", c.CategoryHandler.UpdateCategory)
		api.Delete("/categories/:id", c.CategoryHandler.DeleteCategory)

		api.Get("/reviews", c.ReviewHandler.GetReviewsByStatus)
		api.Patch("/reviews/:id", c.ReviewHandler.ModerateReview)

		api.Get("/media", c.MediaHandler.GetMedia)
		api.Post("/media", c.MediaHandler.UploadMedia)
		api.Delete("/media/:id", c.MediaHandler.DeleteMedia)

		// manual runs present the same shared secret as the scheduler
		api.Post("/instagram/sync", c.Middleware.CronSecret(), c.InstagramHandler.SyncRecentPosts)
	}
}

func (c *Config) CronRoute() {
	cron := c.App.Group("/api/v1/cron", c.Middleware.CronSecret())
	// schedulers commonly probe with GET, so both verbs are accepted
	cron.Get("/instagram", c.InstagramHandler.SyncRecentPosts)
	cron.Post("/instagram", c.InstagramHandler.SyncRecentPosts)
}
