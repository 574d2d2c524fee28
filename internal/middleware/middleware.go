package middleware

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/pkg/auth"
	"Recipe-Blog-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AdminGate(authService auth.AuthService, jwtService jwt.JWTService) fiber.Handler
		LoginRedirect(authService auth.AuthService, jwtService jwt.JWTService) fiber.Handler
		CronSecret() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowCredentials: false,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
	})
}

// AdminGate protects every admin route. A missing or invalid session
// redirects to login with the original path preserved; a valid session whose
// email is not an active allow-list row is redirected with an unauthorized
// marker. Allow-list lookup failures deny. Whenever the session validates,
// a refreshed cookie is written no matter the outcome.
func (m *middleware) AdminGate(authService auth.AuthService, jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(domain.SessionCookieName)
		if token == "" {
			return redirectToLogin(c, c.Path())
		}

		email, err := jwtService.ValidateSessionToken(token)
		if err != nil {
			return redirectToLogin(c, c.Path())
		}

		SetSessionCookie(c, jwtService, email)

		active, err := authService.IsActiveAdmin(c.Context(), email)
		if err != nil || !active {
			// includes lookup errors: never fail open
			return c.Redirect(domain.LoginPath+"?error=unauthorized", fiber.StatusFound)
		}

		c.Locals("admin_email", email)
		return c.Next()
	}
}

// LoginRedirect sends an already-authorized admin away from the login page,
// honoring the preserved redirect target.
func (m *middleware) LoginRedirect(authService auth.AuthService, jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(domain.SessionCookieName)
		if token == "" {
			return c.Next()
		}

		email, err := jwtService.ValidateSessionToken(token)
		if err != nil {
			return c.Next()
		}

		SetSessionCookie(c, jwtService, email)

		active, err := authService.IsActiveAdmin(c.Context(), email)
		if err != nil || !active {
			return c.Next()
		}

		target := c.Query("redirect", domain.AdminLandingPath)
		return c.Redirect(target, fiber.StatusFound)
	}
}

// CronSecret guards the ingestion trigger. Scheduler and manual admin runs
// both present the same shared-secret bearer header; an unset secret
// disables the endpoint entirely.
func (m *middleware) CronSecret() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// LoadConfig exports the secret to the environment
		secret := os.Getenv("CRON_SECRET")
		if secret == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "ingestion endpoint disabled",
			})
		}
		if c.Get("Authorization") != fmt.Sprintf("Bearer %s", secret) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": domain.ErrCronUnauthorized.Error(),
			})
		}
		return c.Next()
	}
}

func redirectToLogin(c *fiber.Ctx, originalPath string) error {
	return c.Redirect(
		fmt.Sprintf("%s?redirect=%s", domain.LoginPath, url.QueryEscape(originalPath)),
		fiber.StatusFound,
	)
}

// SetSessionCookie writes (or silently rotates) the session cookie.
func SetSessionCookie(c *fiber.Ctx, jwtService jwt.JWTService, email string) {
	refreshed, err := jwtService.GenerateSessionToken(email)
	if err != nil {
		return
	}
	WriteSessionCookie(c, refreshed, jwtService.SessionTTL())
}

// WriteSessionCookie stores an already-issued session token.
func WriteSessionCookie(c *fiber.Ctx, token string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// ClearSessionCookie expires the session cookie on logout.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     domain.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
