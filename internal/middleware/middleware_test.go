package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Recipe-Blog-Backend/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJWT struct {
	validEmail string
}

func (f *fakeJWT) GenerateSessionToken(email string) (string, error) {
	return "token-" + email, nil
}

func (f *fakeJWT) ValidateSessionToken(token string) (string, error) {
	if f.validEmail != "" && token == "token-"+f.validEmail {
		return f.validEmail, nil
	}
	return "", domain.ErrTokenInvalid
}

func (f *fakeJWT) SessionTTL() time.Duration { return time.Hour }

type fakeAuth struct {
	active map[string]bool
	err    error
}

func (f *fakeAuth) Login(ctx context.Context, req domain.LoginRequest) (string, domain.LoginResponse, error) {
	return "", domain.LoginResponse{}, nil
}

func (f *fakeAuth) ExchangeCode(ctx context.Context, code string) (string, error) {
	return "", nil
}

func (f *fakeAuth) IsActiveAdmin(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.active[email], nil
}

func gatedApp(authSvc *fakeAuth, jwtSvc *fakeJWT) *fiber.App {
	app := fiber.New()
	app.Get("/admin/recipes", NewMiddleware().AdminGate(authSvc, jwtSvc), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("admin_email")})
	})
	return app
}

func TestAdminGate_NoCookieRedirectsWithPath(t *testing.T) {
	app := gatedApp(&fakeAuth{}, &fakeJWT{})

	req := httptest.NewRequest("GET", "/admin/recipes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/auth/login?redirect=%2Fadmin%2Frecipes", resp.Header.Get("Location"))
}

func TestAdminGate_InvalidTokenRedirects(t *testing.T) {
	app := gatedApp(&fakeAuth{}, &fakeJWT{validEmail: "chef@example.com"})

	req := httptest.NewRequest("GET", "/admin/recipes", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "garbage"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), domain.LoginPath+"?redirect=")
}

func TestAdminGate_ValidSessionNotOnAllowList(t *testing.T) {
	jwtSvc := &fakeJWT{validEmail: "stranger@example.com"}
	app := gatedApp(&fakeAuth{active: map[string]bool{}}, jwtSvc)

	req := httptest.NewRequest("GET", "/admin/recipes", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "token-stranger@example.com"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, domain.LoginPath+"?error=unauthorized", resp.Header.Get("Location"))
	// the session itself was valid, so the cookie is still refreshed
	assert.Contains(t, resp.Header.Get("Set-Cookie"), domain.SessionCookieName+"=")
}

func TestAdminGate_LookupErrorDenies(t *testing.T) {
	jwtSvc := &fakeJWT{validEmail: "chef@example.com"}
	app := gatedApp(&fakeAuth{err: errors.New("db down")}, jwtSvc)

	req := httptest.NewRequest("GET", "/admin/recipes", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "token-chef@example.com"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, domain.LoginPath+"?error=unauthorized", resp.Header.Get("Location"))
}

func TestAdminGate_AllowsActiveAdmin(t *testing.T) {
	jwtSvc := &fakeJWT{validEmail: "chef@example.com"}
	app := gatedApp(&fakeAuth{active: map[string]bool{"chef@example.com": true}}, jwtSvc)

	req := httptest.NewRequest("GET", "/admin/recipes", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "token-chef@example.com"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Set-Cookie"), domain.SessionCookieName+"=")
}

func TestLoginRedirect_SendsActiveAdminToTarget(t *testing.T) {
	jwtSvc := &fakeJWT{validEmail: "chef@example.com"}
	app := fiber.New()
	app.Get("/auth/login", NewMiddleware().LoginRedirect(&fakeAuth{active: map[string]bool{"chef@example.com": true}}, jwtSvc), func(c *fiber.Ctx) error {
		return c.SendString("login page")
	})

	req := httptest.NewRequest("GET", "/auth/login?redirect=%2Fadmin%2Frecipes", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "token-chef@example.com"})
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/recipes", resp.Header.Get("Location"))
}

func TestLoginRedirect_AnonymousSeesLoginPage(t *testing.T) {
	app := fiber.New()
	app.Get("/auth/login", NewMiddleware().LoginRedirect(&fakeAuth{}, &fakeJWT{}), func(c *fiber.Ctx) error {
		return c.SendString("login page")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/auth/login", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
