package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

const graphAPIBase = "https://graph.instagram.com"

type (
	InstagramClient interface {
		FetchRecentPosts(ctx context.Context, limit int) ([]domain.InstagramPost, error)
	}

	instagramClient struct {
		httpClient *http.Client
	}

	mediaResponse struct {
		Data []domain.InstagramPost `json:"data"`
	}
)

func NewInstagramClient() InstagramClient {
	return &instagramClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchRecentPosts pulls the most recent media of the configured account.
// Missing credentials yield an empty list so page rendering and the cron
// run degrade instead of failing.
func (c *instagramClient) FetchRecentPosts(ctx context.Context, limit int) ([]domain.InstagramPost, error) {
	accessToken := utils.GetConfig("INSTAGRAM_ACCESS_TOKEN")
	userID := utils.GetConfig("INSTAGRAM_USER_ID")

	if accessToken == "" || userID == "" {
		log.Warn("instagram credentials not configured")
		return []domain.InstagramPost{}, nil
	}

	fields := strings.Join([]string{
		"id", "caption", "media_type", "media_url", "thumbnail_url", "permalink", "timestamp",
	}, ",")
	url := fmt.Sprintf("%s/%s/media?fields=%s&limit=%d&access_token=%s",
		graphAPIBase, userID, fields, limit, accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("instagram API returned %d", resp.StatusCode)
	}

	var body mediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Data == nil {
		return []domain.InstagramPost{}, nil
	}
	return body.Data, nil
}

var (
	tagMentionPattern = regexp.MustCompile(`[#@]\w+`)
	nonSlugPattern    = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	hyphenRunPattern  = regexp.MustCompile(`-+`)
)

// ExtractTitleFromCaption derives a draft title from the caption's first
// line: emoji and hashtag/mention tokens stripped, truncated to 100 chars,
// with a placeholder when nothing survives.
func ExtractTitleFromCaption(caption string) string {
	if caption == "" {
		return "Untitled Recipe"
	}

	firstLine := strings.TrimSpace(strings.SplitN(caption, "\n", 2)[0])
	cleaned := strings.TrimSpace(tagMentionPattern.ReplaceAllString(stripEmoji(firstLine), ""))

	if truncated := truncateRunes(cleaned, 100); truncated != cleaned {
		return truncated + "..."
	}
	if cleaned == "" {
		return "Untitled Recipe"
	}
	return cleaned
}

// truncateRunes cuts on a rune boundary so multi-byte captions stay valid
// UTF-8.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// GenerateSlug normalizes a title into a URL-safe slug: lowercase, strip
// non-alphanumerics, whitespace to hyphens, collapsed, at most 50 chars.
func GenerateSlug(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugPattern.ReplaceAllString(slug, "")
	slug = whitespacePattern.ReplaceAllString(strings.TrimSpace(slug), "-")
	slug = hyphenRunPattern.ReplaceAllString(slug, "-")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	return strings.Trim(slug, "-")
}

var recipeKeywords = []string{
	"recipe", "ingredients", "cook", "bake", "make",
	"dinner", "lunch", "breakfast", "meal", "dish",
	"prep", "serve", "easy", "quick", "delicious", "yummy", "homemade",
}

// IsLikelyRecipePost is the fixed keyword allow-list heuristic over captions.
func IsLikelyRecipePost(caption string) bool {
	if caption == "" {
		return false
	}
	lower := strings.ToLower(caption)
	for _, keyword := range recipeKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func stripEmoji(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 0x1F000 || (r >= 0x2600 && r <= 0x27BF) || r == 0xFE0F || r == 0x200D {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
