package domain

var (
	MessageSuccessSearch = "success search recipes"

	MessageFailedSearch = "failed to search recipes"
)

type (
	SearchResult struct {
		ID               string            `json:"id"`
		Title            string            `json:"title"`
		Slug             string            `json:"slug"`
		Description      string            `json:"description"`
		FeaturedImageURL string            `json:"featured_image_url,omitempty"`
		TotalTime        *int              `json:"total_time_minutes,omitempty"`
		Difficulty       string            `json:"difficulty,omitempty"`
		Categories       []CategorySummary `json:"categories"`
	}

	SearchResponse struct {
		Query   string         `json:"query"`
		Results []SearchResult `json:"results"`
		Total   int            `json:"total"`
	}
)
