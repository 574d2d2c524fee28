package utils

import (
	"testing"

	"Recipe-Blog-Backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugRule(t *testing.T) {
	InitValidator()

	type subject struct {
		Slug string `validate:"slug"`
	}

	valid := []string{"garlic-butter-chicken", "40-clove-chicken", "mains"}
	for _, slug := range valid {
		assert.NoError(t, Validate.Struct(subject{Slug: slug}), slug)
	}

	invalid := []string{"Garlic-Chicken", "-leading", "trailing-", "two--hyphens", "with space", "with_underscore", ""}
	for _, slug := range invalid {
		assert.Error(t, Validate.Struct(subject{Slug: slug}), slug)
	}
}

func TestFormatValidationErrors_ReportsEveryField(t *testing.T) {
	InitValidator()

	req := domain.CreateRecipeRequest{Slug: "Not A Slug"}
	err := Validate.Struct(req)
	require.Error(t, err)

	fieldErrors := FormatValidationErrors(err)

	byField := map[string]string{}
	for _, fe := range fieldErrors {
		byField[fe.Field] = fe.Message
	}

	assert.Equal(t, "is required", byField["title"])
	assert.Equal(t, "is required", byField["description"])
	assert.Equal(t, "must be a lowercase, hyphenated, URL-safe slug", byField["slug"])
}

func TestSubmitReviewRating_Boundaries(t *testing.T) {
	InitValidator()

	tests := []struct {
		rating int
		valid  bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{6, false},
	}
	for _, tt := range tests {
		req := domain.SubmitReviewRequest{RecipeSlug: "garlic-butter-chicken", Rating: tt.rating}
		err := Validate.Struct(req)
		if tt.valid {
			assert.NoError(t, err, "rating %d", tt.rating)
		} else {
			assert.Error(t, err, "rating %d", tt.rating)
		}
	}
}

func TestFormatValidationErrors_NestedFieldNames(t *testing.T) {
	InitValidator()

	req := domain.SubmitReviewRequest{RecipeSlug: "garlic-butter-chicken", Rating: 9}
	err := Validate.Struct(req)
	require.Error(t, err)

	fieldErrors := FormatValidationErrors(err)
	require.Len(t, fieldErrors, 1)
	assert.Equal(t, "rating", fieldErrors[0].Field)
	assert.Equal(t, "must be at most 5", fieldErrors[0].Message)
}
