package domain

import "errors"

var (
	MessageSuccessInstagramSync = "instagram sync completed"

	MessageFailedInstagramSync = "failed to run instagram sync"

	ErrInstagramNotConfigured = errors.New("instagram credentials not configured")
)

type (
	InstagramPost struct {
		ID           string `json:"id"`
		Caption      string `json:"caption,omitempty"`
		MediaType    string `json:"media_type"`
		MediaURL     string `json:"media_url"`
		ThumbnailURL string `json:"thumbnail_url,omitempty"`
		Permalink    string `json:"permalink"`
		Timestamp    string `json:"timestamp"`
	}

	InstagramDraftResult struct {
		PostID   string `json:"post_id"`
		RecipeID string `json:"recipe_id"`
		Title    string `json:"title"`
		Slug     string `json:"slug"`
	}

	InstagramSyncResponse struct {
		Fetched int                    `json:"fetched"`
		Skipped int                    `json:"skipped"`
		Created int                    `json:"created"`
		Drafts  []InstagramDraftResult `json:"drafts"`
	}
)
