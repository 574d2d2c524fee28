package routes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

type stubRecipeHandler struct{}

func (stubRecipeHandler) GetPublishedRecipes(c *fiber.Ctx) error      { return ok(c) }
func (stubRecipeHandler) GetPublishedRecipeBySlug(c *fiber.Ctx) error { return ok(c) }
func (stubRecipeHandler) GetAllRecipes(c *fiber.Ctx) error            { return ok(c) }
func (stubRecipeHandler) GetRecipeByID(c *fiber.Ctx) error            { return ok(c) }
func (stubRecipeHandler) CreateRecipe(c *fiber.Ctx) error             { return ok(c) }
func (stubRecipeHandler) UpdateRecipe(c *fiber.Ctx) error             { return ok(c) }
func (stubRecipeHandler) DeleteRecipe(c *fiber.Ctx) error             { return ok(c) }

type stubCategoryHandler struct{}

func (stubCategoryHandler) GetCategories(c *fiber.Ctx) error  { return ok(c) }
func (stubCategoryHandler) CreateCategory(c *fiber.Ctx) error { return ok(c) }
func (stubCategoryHandler) UpdateCategory(c *fiber.Ctx) error { return ok(c) }
func (stubCategoryHandler) DeleteCategory(c *fiber.Ctx) error { return ok(c) }

type stubReviewHandler struct{}

func (stubReviewHandler) SubmitReview(c *fiber.Ctx) error       { return ok(c) }
func (stubReviewHandler) GetApprovedReviews(c *fiber.Ctx) error { return ok(c) }
func (stubReviewHandler) GetReviewsByStatus(c *fiber.Ctx) error { return ok(c) }
func (stubReviewHandler) ModerateReview(c *fiber.Ctx) error     { return ok(c) }

type stubSearchHandler struct{}

func (stubSearchHandler) SearchRecipes(c *fiber.Ctx) error { return ok(c) }

type stubMediaHandler struct{}

func (stubMediaHandler) UploadMedia(c *fiber.Ctx) error { return ok(c) }
func (stubMediaHandler) GetMedia(c *fiber.Ctx) error    { return ok(c) }
func (stubMediaHandler) DeleteMedia(c *fiber.Ctx) error { return ok(c) }

type stubSitemapHandler struct{}

func (stubSitemapHandler) GetSitemap(c *fiber.Ctx) error { return ok(c) }

type stubNewsletterHandler struct{}

func (stubNewsletterHandler) Subscribe(c *fiber.Ctx) error { return ok(c) }

type stubAuthHandler struct{}

func (stubAuthHandler) Login(c *fiber.Ctx) error    { return ok(c) }
func (stubAuthHandler) Callback(c *fiber.Ctx) error { return ok(c) }
func (stubAuthHandler) Logout(c *fiber.Ctx) error   { return ok(c) }
func (stubAuthHandler) Session(c *fiber.Ctx) error  { return ok(c) }

// countingSyncHandler records how often the ingestion run is reached.
type countingSyncHandler struct {
	invocations int
}

func (h *countingSyncHandler) SyncRecentPosts(c *fiber.Ctx) error {
	h.invocations++
	return ok(c)
}

type routeFakeJWT struct{}

func (routeFakeJWT) GenerateSessionToken(email string) (string, error) {
	return "session-" + email, nil
}

func (routeFakeJWT) ValidateSessionToken(token string) (string, error) {
	if len(token) > 8 && token[:8] == "session-" {
		return token[8:], nil
	}
	return "", domain.ErrTokenInvalid
}

func (routeFakeJWT) SessionTTL() time.Duration { return time.Hour }

type routeFakeAuth struct {
	active map[string]bool
}

func (f routeFakeAuth) Login(ctx context.Context, req domain.LoginRequest) (string, domain.LoginResponse, error) {
	return "", domain.LoginResponse{}, errors.New("not wired")
}

func (f routeFakeAuth) ExchangeCode(ctx context.Context, code string) (string, error) {
	return "", errors.New("not wired")
}

func (f routeFakeAuth) IsActiveAdmin(ctx context.Context, email string) (bool, error) {
	return f.active[email], nil
}

func syncTestApp(sync *countingSyncHandler) *fiber.App {
	app := fiber.New()
	cfg := &Config{
		App:               app,
		RecipeHandler:     stubRecipeHandler{},
		CategoryHandler:   stubCategoryHandler{},
		ReviewHandler:     stubReviewHandler{},
		SearchHandler:     stubSearchHandler{},
		MediaHandler:      stubMediaHandler{},
		InstagramHandler:  sync,
		SitemapHandler:    stubSitemapHandler{},
		NewsletterHandler: stubNewsletterHandler{},
		AuthHandler:       stubAuthHandler{},
		Middleware:        middleware.NewMiddleware(),
		JWTService:        routeFakeJWT{},
		AuthService:       routeFakeAuth{active: map[string]bool{"chef@example.com": true}},
	}
	cfg.Setup()
	return app
}

func adminSessionCookie() *http.Cookie {
	return &http.Cookie{Name: domain.SessionCookieName, Value: "session-chef@example.com"}
}

func TestAdminSyncRequiresSharedSecret(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")
	sync := &countingSyncHandler{}
	app := syncTestApp(sync)

	// a logged-in admin session alone is not enough
	req := httptest.NewRequest("POST", "/admin/api/v1/instagram/sync", nil)
	req.AddCookie(adminSessionCookie())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, sync.invocations)

	req = httptest.NewRequest("POST", "/admin/api/v1/instagram/sync", nil)
	req.AddCookie(adminSessionCookie())
	req.Header.Set("Authorization", "Bearer topsecret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, sync.invocations)
}

func TestAdminSyncStillRequiresSession(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")
	sync := &countingSyncHandler{}
	app := syncTestApp(sync)

	// the secret does not bypass the session gate
	req := httptest.NewRequest("POST", "/admin/api/v1/instagram/sync", nil)
	req.Header.Set("Authorization", "Bearer topsecret")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, 0, sync.invocations)
}

func TestCronSyncAcceptsGetAndPost(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")
	sync := &countingSyncHandler{}
	app := syncTestApp(sync)

	for _, method := range []string{"GET", "POST"} {
		req := httptest.NewRequest(method, "/api/v1/cron/instagram", nil)
		req.Header.Set("Authorization", "Bearer topsecret")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, method)
	}
	assert.Equal(t, 2, sync.invocations)
}

func TestCronSyncRejectsWrongSecret(t *testing.T) {
	t.Setenv("CRON_SECRET", "topsecret")
	sync := &countingSyncHandler{}
	app := syncTestApp(sync)

	req := httptest.NewRequest("POST", "/api/v1/cron/instagram", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, sync.invocations)
}

func TestCronSyncDisabledWithoutSecret(t *testing.T) {
	t.Setenv("CRON_SECRET", "")
	sync := &countingSyncHandler{}
	app := syncTestApp(sync)

	req := httptest.NewRequest("POST", "/api/v1/cron/instagram", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 0, sync.invocations)
}
