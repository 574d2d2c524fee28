package handlers

import (
	"errors"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/api/presenters"
	"Recipe-Blog-Backend/internal/middleware"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/pkg/auth"
	"Recipe-Blog-Backend/pkg/jwt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Callback(c *fiber.Ctx) error
		Logout(c *fiber.Ctx) error
		Session(c *fiber.Ctx) error
	}

	authHandler struct {
		authService auth.AuthService
		jwtService  jwt.JWTService
		validator   *validator.Validate
	}
)

func NewAuthHandler(authService auth.AuthService, jwtService jwt.JWTService, validator *validator.Validate) AuthHandler {
	return &authHandler{
		authService: authService,
		jwtService:  jwtService,
		validator:   validator,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ValidationErrorResponse(c, domain.MessageValidationFailed, utils.FormatValidationErrors(err))
	}

	token, res, err := h.authService.Login(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) || errors.Is(err, domain.ErrNotAdmin) {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedLogin, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedLogin, err)
	}

	middleware.WriteSessionCookie(c, token, h.jwtService.SessionTTL())

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLogin)
}

// Callback completes the hosted-login flow: the identity provider
// redirects here with a one-time code, which is exchanged for the
// account email before the session cookie is set.
func (h *authHandler) Callback(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.Redirect(domain.LoginPath+"?error=missing_code", fiber.StatusFound)
	}

	email, err := h.authService.ExchangeCode(c.Context(), code)
	if err != nil {
		return c.Redirect(domain.LoginPath+"?error=exchange_failed", fiber.StatusFound)
	}

	allowed, err := h.authService.IsActiveAdmin(c.Context(), email)
	if err != nil || !allowed {
		return c.Redirect(domain.LoginPath+"?error=unauthorized", fiber.StatusFound)
	}

	middleware.SetSessionCookie(c, h.jwtService, email)

	return c.Redirect(c.Query("redirect", domain.AdminLandingPath), fiber.StatusFound)
}

func (h *authHandler) Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessLogout)
}

// Session reports the signed-in admin behind the gate, for admin UI chrome.
func (h *authHandler) Session(c *fiber.Ctx) error {
	email, _ := c.Locals("admin_email").(string)

	return presenters.SuccessResponse(c, domain.LoginResponse{Email: email}, fiber.StatusOK, domain.MessageSuccessLogin)
}
