package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessSubmitReview   = "review submitted successfully"
	MessageSuccessGetReviews     = "success get reviews"
	MessageSuccessModerateReview = "review status updated"

	MessageFailedSubmitReview   = "failed to submit review"
	MessageFailedGetReviews     = "failed to get reviews"
	MessageFailedModerateReview = "failed to update review status"

	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewRateLimited  = errors.New("already reviewed this recipe in the last 24 hours")
	ErrInvalidReviewState = errors.New("invalid moderation status")
)

type (
	SubmitReviewRequest struct {
		RecipeID   string `json:"recipe_id" validate:"omitempty,uuid"`
		RecipeSlug string `json:"recipe_slug" validate:"required"`
		Rating     int    `json:"rating" validate:"required,min=1,max=5"`
		Comment    string `json:"comment" validate:"omitempty,max=500"`
		AuthorName string `json:"author_name" validate:"omitempty,max=50"`
	}

	ModerateReviewRequest struct {
		Status string `json:"status" validate:"required,oneof=pending approved rejected"`
	}

	ReviewResponse struct {
		ID         string    `json:"id"`
		RecipeID   string    `json:"recipe_id"`
		Rating     int       `json:"rating"`
		Comment    string    `json:"comment,omitempty"`
		AuthorName string    `json:"author_name,omitempty"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"created_at"`
	}

	ReviewListResponse struct {
		Reviews       []ReviewResponse `json:"reviews"`
		AverageRating float64          `json:"average_rating"`
		ReviewCount   int              `json:"review_count"`
	}
)
