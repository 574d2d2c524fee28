package review

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"
	"Recipe-Blog-Backend/pkg/recipe"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const rateLimitWindow = 24 * time.Hour

type (
	ReviewService interface {
		SubmitReview(ctx context.Context, req domain.SubmitReviewRequest, submitterIP string) (domain.ReviewResponse, error)
		GetApprovedReviews(ctx context.Context, recipeSlug string) (domain.ReviewListResponse, error)
		GetReviewsByStatus(ctx context.Context, status string, page, limit int) ([]domain.ReviewResponse, int64, error)
		ModerateReview(ctx context.Context, id string, status string) error
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
		ipSalt           string
	}
)

func NewReviewService(reviewRepository ReviewRepository, recipeRepository recipe.RecipeRepository, ipSalt string) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
		ipSalt:           ipSalt,
	}
}

// HashIP produces a stable salted one-way hash of the submitter's address.
// The raw IP is never stored.
func (s *reviewService) HashIP(ip string) string {
	sum := sha256.Sum256([]byte(s.ipSalt + ip))
	return hex.EncodeToString(sum[:])[:16]
}

func (s *reviewService) SubmitReview(ctx context.Context, req domain.SubmitReviewRequest, submitterIP string) (domain.ReviewResponse, error) {
	target, err := s.resolveRecipe(ctx, req)
	if err != nil {
		return domain.ReviewResponse{}, err
	}

	ipHash := s.HashIP(submitterIP)

	// Hard-enforced rolling window: one submission per hashed IP per recipe
	// per 24 hours. A failed lookup rejects the submission (fail closed).
	since := time.Now().Add(-rateLimitWindow)
	recent, err := s.reviewRepository.CountRecentByIPHash(ctx, target.ID.String(), ipHash, since)
	if err != nil {
		return domain.ReviewResponse{}, err
	}
	if recent > 0 {
		return domain.ReviewResponse{}, domain.ErrReviewRateLimited
	}

	review := &entities.Review{
		ID:         uuid.New(),
		RecipeID:   target.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		AuthorName: req.AuthorName,
		Status:     entities.ReviewStatusPending,
		IPHash:     ipHash,
		CreatedAt:  time.Now(),
	}

	if err := s.reviewRepository.CreateReview(ctx, review); err != nil {
		return domain.ReviewResponse{}, err
	}

	return toReviewResponse(review), nil
}

func (s *reviewService) GetApprovedReviews(ctx context.Context, recipeSlug string) (domain.ReviewListResponse, error) {
	empty := domain.ReviewListResponse{Reviews: []domain.ReviewResponse{}}

	target, err := s.recipeRepository.GetRecipeBySlug(ctx, recipeSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return empty, nil
		}
		return empty, err
	}

	reviews, err := s.reviewRepository.GetReviewsByRecipe(ctx, target.ID.String(), entities.ReviewStatusApproved, 20)
	if err != nil {
		return empty, err
	}

	res := domain.ReviewListResponse{
		Reviews:     make([]domain.ReviewResponse, 0, len(reviews)),
		ReviewCount: len(reviews),
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		res.Reviews = append(res.Reviews, toReviewResponse(review))
	}
	if res.ReviewCount > 0 {
		res.AverageRating = float64(sum) / float64(res.ReviewCount)
	}
	return res, nil
}

func (s *reviewService) GetReviewsByStatus(ctx context.Context, status string, page, limit int) ([]domain.ReviewResponse, int64, error) {
	reviews, count, err := s.reviewRepository.GetReviewsByStatus(ctx, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, toReviewResponse(review))
	}
	return responses, count, nil
}

func (s *reviewService) ModerateReview(ctx context.Context, id string, status string) error {
	if status != entities.ReviewStatusPending &&
		status != entities.ReviewStatusApproved &&
		status != entities.ReviewStatusRejected {
		return domain.ErrInvalidReviewState
	}

	if _, err := s.reviewRepository.GetReviewByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	return s.reviewRepository.UpdateStatus(ctx, id, status)
}

func (s *reviewService) resolveRecipe(ctx context.Context, req domain.SubmitReviewRequest) (*entities.Recipe, error) {
	if req.RecipeID != "" {
		target, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
		if err == nil {
			return target, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	target, err := s.recipeRepository.GetRecipeBySlug(ctx, req.RecipeSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return target, nil
}

func toReviewResponse(review *entities.Review) domain.ReviewResponse {
	return domain.ReviewResponse{
		ID:         review.ID.String(),
		RecipeID:   review.RecipeID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		AuthorName: review.AuthorName,
		Status:     review.Status,
		CreatedAt:  review.CreatedAt,
	}
}
