package review

import (
	"context"
	"testing"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRecipeRepo struct {
	bySlug map[string]*entities.Recipe
	byID   map[string]*entities.Recipe
}

func (f *fakeRecipeRepo) CreateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uuid.UUID) error {
	return nil
}

func (f *fakeRecipeRepo) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, categoryIDs []uuid.UUID) error {
	return nil
}

func (f *fakeRecipeRepo) DeleteRecipe(ctx context.Context, id string) error { return nil }

func (f *fakeRecipeRepo) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepo) GetRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	if r, ok := f.bySlug[slug]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecipeRepo) GetRecipes(ctx context.Context, status string, categorySlug string, page, limit int) ([]*entities.Recipe, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecipeRepo) GetPublishedRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	return nil, nil
}

func (f *fakeRecipeRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeRecipeRepo) ExistsByInstagramPostID(ctx context.Context, postID string) (bool, error) {
	return false, nil
}

type fakeReviewRepo struct {
	stored   []*entities.Review
	byRecipe []*entities.Review
	recent   int64
	statusOf map[string]string
}

func (f *fakeReviewRepo) CreateReview(ctx context.Context, review *entities.Review) error {
	f.stored = append(f.stored, review)
	return nil
}

func (f *fakeReviewRepo) GetReviewByID(ctx context.Context, id string) (*entities.Review, error) {
	for _, r := range f.stored {
		if r.ID.String() == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReviewRepo) GetReviewsByRecipe(ctx context.Context, recipeID string, status string, limit int) ([]*entities.Review, error) {
	return f.byRecipe, nil
}

func (f *fakeReviewRepo) GetReviewsByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Review, int64, error) {
	return f.stored, int64(len(f.stored)), nil
}

func (f *fakeReviewRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	if f.statusOf == nil {
		f.statusOf = map[string]string{}
	}
	f.statusOf[id] = status
	return nil
}

func (f *fakeReviewRepo) CountRecentByIPHash(ctx context.Context, recipeID string, ipHash string, since time.Time) (int64, error) {
	return f.recent, nil
}

func recipeFixture(slug string) *entities.Recipe {
	return &entities.Recipe{
		ID:     uuid.New(),
		Title:  "Garlic Butter Chicken",
		Slug:   slug,
		Status: entities.RecipeStatusPublished,
	}
}

func TestSubmitReview(t *testing.T) {
	target := recipeFixture("garlic-butter-chicken")
	recipeRepo := &fakeRecipeRepo{bySlug: map[string]*entities.Recipe{target.Slug: target}}
	reviewRepo := &fakeReviewRepo{}
	service := NewReviewService(reviewRepo, recipeRepo, "salt")

	res, err := service.SubmitReview(context.Background(), domain.SubmitReviewRequest{
		RecipeSlug: target.Slug,
		Rating:     5,
		Comment:    "Family favourite",
		AuthorName: "Dana",
	}, "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, entities.ReviewStatusPending, res.Status)
	assert.Equal(t, target.ID.String(), res.RecipeID)
	require.Len(t, reviewRepo.stored, 1)
	assert.NotEmpty(t, reviewRepo.stored[0].IPHash)
	assert.NotContains(t, reviewRepo.stored[0].IPHash, "203.0.113.7")
}

func TestSubmitReview_UnknownRecipe(t *testing.T) {
	service := NewReviewService(&fakeReviewRepo{}, &fakeRecipeRepo{}, "salt")

	_, err := service.SubmitReview(context.Background(), domain.SubmitReviewRequest{
		RecipeSlug: "no-such-recipe",
		Rating:     4,
	}, "203.0.113.7")
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSubmitReview_RateLimited(t *testing.T) {
	target := recipeFixture("garlic-butter-chicken")
	recipeRepo := &fakeRecipeRepo{bySlug: map[string]*entities.Recipe{target.Slug: target}}
	reviewRepo := &fakeReviewRepo{recent: 1}
	service := NewReviewService(reviewRepo, recipeRepo, "salt")

	_, err := service.SubmitReview(context.Background(), domain.SubmitReviewRequest{
		RecipeSlug: target.Slug,
		Rating:     3,
	}, "203.0.113.7")
	assert.ErrorIs(t, err, domain.ErrReviewRateLimited)
	assert.Empty(t, reviewRepo.stored)
}

func TestHashIP_StableAndSalted(t *testing.T) {
	a := NewReviewService(&fakeReviewRepo{}, &fakeRecipeRepo{}, "salt-a").(*reviewService)
	b := NewReviewService(&fakeReviewRepo{}, &fakeRecipeRepo{}, "salt-b").(*reviewService)

	assert.Equal(t, a.HashIP("203.0.113.7"), a.HashIP("203.0.113.7"))
	assert.NotEqual(t, a.HashIP("203.0.113.7"), b.HashIP("203.0.113.7"))
	assert.Len(t, a.HashIP("203.0.113.7"), 16)
}

func TestGetApprovedReviews(t *testing.T) {
	target := recipeFixture("garlic-butter-chicken")
	recipeRepo := &fakeRecipeRepo{bySlug: map[string]*entities.Recipe{target.Slug: target}}
	reviewRepo := &fakeReviewRepo{byRecipe: []*entities.Review{
		{ID: uuid.New(), RecipeID: target.ID, Rating: 5, Status: entities.ReviewStatusApproved},
		{ID: uuid.New(), RecipeID: target.ID, Rating: 4, Status: entities.ReviewStatusApproved},
	}}
	service := NewReviewService(reviewRepo, recipeRepo, "salt")

	res, err := service.GetApprovedReviews(context.Background(), target.Slug)
	require.NoError(t, err)

	assert.Equal(t, 2, res.ReviewCount)
	assert.InDelta(t, 4.5, res.AverageRating, 0.001)
}

func TestGetApprovedReviews_UnknownSlug(t *testing.T) {
	service := NewReviewService(&fakeReviewRepo{}, &fakeRecipeRepo{}, "salt")

	res, err := service.GetApprovedReviews(context.Background(), "missing")
	require.NoError(t, err)

	assert.Empty(t, res.Reviews)
	assert.Equal(t, 0, res.ReviewCount)
	assert.Zero(t, res.AverageRating)
}

func TestModerateReview(t *testing.T) {
	review := &entities.Review{ID: uuid.New(), Rating: 5, Status: entities.ReviewStatusPending}
	reviewRepo := &fakeReviewRepo{stored: []*entities.Review{review}}
	service := NewReviewService(reviewRepo, &fakeRecipeRepo{}, "salt")

	err := service.ModerateReview(context.Background(), review.ID.String(), entities.ReviewStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entities.ReviewStatusApproved, reviewRepo.statusOf[review.ID.String()])
}

func TestModerateReview_InvalidStatus(t *testing.T) {
	service := NewReviewService(&fakeReviewRepo{}, &fakeRecipeRepo{}, "salt")

	err := service.ModerateReview(context.Background(), uuid.NewString(), "starred")
	assert.ErrorIs(t, err, domain.ErrInvalidReviewState)
}

func TestModerateReview_NotFound(t *testing.T) {
	service := NewReviewService(&fakeReviewRepo{}, &fakeRecipeRepo{}, "salt")

	err := service.ModerateReview(context.Background(), uuid.NewString(), entities.ReviewStatusRejected)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}
