package config

import (
	"os"
	"time"

	"Recipe-Blog-Backend/internal/api/handlers"
	"Recipe-Blog-Backend/internal/api/routes"
	"Recipe-Blog-Backend/internal/middleware"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/internal/utils/storage"
	"Recipe-Blog-Backend/pkg/auth"
	"Recipe-Blog-Backend/pkg/category"
	"Recipe-Blog-Backend/pkg/instagram"
	"Recipe-Blog-Backend/pkg/jwt"
	"Recipe-Blog-Backend/pkg/media"
	"Recipe-Blog-Backend/pkg/newsletter"
	"Recipe-Blog-Backend/pkg/recipe"
	"Recipe-Blog-Backend/pkg/review"
	"Recipe-Blog-Backend/pkg/search"
	"Recipe-Blog-Backend/pkg/sitemap"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	recipeRepository := recipe.NewRecipeRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	mediaRepository := media.NewMediaRepository(db)
	adminRepository := auth.NewAdminRepository(db)
	instagramRepository := instagram.NewInstagramRepository(db)
	newsletterRepository := newsletter.NewNewsletterRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	authService := auth.NewAuthService(adminRepository, jwtService)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository)
	categoryService := category.NewCategoryService(categoryRepository)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository, utils.GetConfig("REVIEW_IP_SALT"))
	searchService := search.NewSearchService(recipeRepository)
	mediaService := media.NewMediaService(mediaRepository, s3)
	instagramService := instagram.NewInstagramService(instagram.NewInstagramClient(), recipeRepository, instagramRepository)
	sitemapService := sitemap.NewSitemapService(recipeRepository, categoryRepository, utils.GetConfig("SITE_URL"))
	newsletterService := newsletter.NewNewsletterService(newsletterRepository)

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	searchHandler := handlers.NewSearchHandler(searchService)
	mediaHandler := handlers.NewMediaHandler(mediaService)
	instagramHandler := handlers.NewInstagramHandler(instagramService)
	sitemapHandler := handlers.NewSitemapHandler(sitemapService)
	newsletterHandler := handlers.NewNewsletterHandler(newsletterService, validator)
	authHandler := handlers.NewAuthHandler(authService, jwtService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		RecipeHandler:     recipeHandler,
		CategoryHandler:   categoryHandler,
		ReviewHandler:     reviewHandler,
		SearchHandler:     searchHandler,
		MediaHandler:      mediaHandler,
		InstagramHandler:  instagramHandler,
		SitemapHandler:    sitemapHandler,
		NewsletterHandler: newsletterHandler,
		AuthHandler:       authHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
		AuthService:       authService,
	}
	routesConfig.Setup()
	return app, nil
}
