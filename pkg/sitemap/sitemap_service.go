package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"Recipe-Blog-Backend/pkg/category"
	"Recipe-Blog-Backend/pkg/recipe"

	"github.com/gofiber/fiber/v2/log"
)

// Fixed fallback catalog used when the database is unreachable at
// generation time; the sitemap must always render.
var (
	fallbackRecipeSlugs = []string{
		"creamy-mushroom-orzo",
		"shrimp-tomato-pasta",
		"40-clove-chicken",
		"garden-veggie-bowl",
		"herb-crusted-salmon",
		"sunday-roast-chicken",
		"mediterranean-salad",
		"crispy-breakfast-hash",
	}
	fallbackCategorySlugs = []string{
		"mains", "pasta", "chicken", "seafood", "soups", "appetizers", "breakfast",
	}
)

type (
	SitemapService interface {
		Generate(ctx context.Context) ([]byte, error)
	}

	sitemapService struct {
		recipeRepository   recipe.RecipeRepository
		categoryRepository category.CategoryRepository
		baseURL            string
	}

	urlSet struct {
		XMLName xml.Name   `xml:"urlset"`
		Xmlns   string     `xml:"xmlns,attr"`
		URLs    []urlEntry `xml:"url"`
	}

	urlEntry struct {
		Loc        string  `xml:"loc"`
		LastMod    string  `xml:"lastmod"`
		ChangeFreq string  `xml:"changefreq"`
		Priority   float64 `xml:"priority"`
	}
)

func NewSitemapService(recipeRepository recipe.RecipeRepository, categoryRepository category.CategoryRepository, baseURL string) SitemapService {
	return &sitemapService{
		recipeRepository:   recipeRepository,
		categoryRepository: categoryRepository,
		baseURL:            baseURL,
	}
}

func (s *sitemapService) Generate(ctx context.Context) ([]byte, error) {
	now := time.Now().Format("2006-01-02")

	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []urlEntry{
			{Loc: s.baseURL, LastMod: now, ChangeFreq: "daily", Priority: 1.0},
			{Loc: s.baseURL + "/recipes", LastMod: now, ChangeFreq: "daily", Priority: 0.9},
			{Loc: s.baseURL + "/search", LastMod: now, ChangeFreq: "weekly", Priority: 0.7},
			{Loc: s.baseURL + "/about", LastMod: now, ChangeFreq: "monthly", Priority: 0.5},
		},
	}

	set.URLs = append(set.URLs, s.recipeEntries(ctx, now)...)
	set.URLs = append(set.URLs, s.categoryEntries(ctx, now)...)

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func (s *sitemapService) recipeEntries(ctx context.Context, now string) []urlEntry {
	recipes, err := s.recipeRepository.GetPublishedRecipes(ctx)
	if err != nil || len(recipes) == 0 {
		if err != nil {
			log.Warnf("sitemap: falling back to built-in recipe list: %v", err)
		}
		entries := make([]urlEntry, 0, len(fallbackRecipeSlugs))
		for _, slug := range fallbackRecipeSlugs {
			entries = append(entries, urlEntry{
				Loc:        fmt.Sprintf("%s/recipes/%s", s.baseURL, slug),
				LastMod:    now,
				ChangeFreq: "weekly",
				Priority:   0.8,
			})
		}
		return entries
	}

	entries := make([]urlEntry, 0, len(recipes))
	for _, r := range recipes {
		entries = append(entries, urlEntry{
			Loc:        fmt.Sprintf("%s/recipes/%s", s.baseURL, r.Slug),
			LastMod:    r.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}
	return entries
}

func (s *sitemapService) categoryEntries(ctx context.Context, now string) []urlEntry {
	slugs := fallbackCategorySlugs
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err == nil && len(categories) > 0 {
		slugs = make([]string, 0, len(categories))
		for _, c := range categories {
			slugs = append(slugs, c.Slug)
		}
	} else if err != nil {
		log.Warnf("sitemap: falling back to built-in category list: %v", err)
	}

	entries := make([]urlEntry, 0, len(slugs))
	for _, slug := range slugs {
		entries = append(entries, urlEntry{
			Loc:        fmt.Sprintf("%s/category/%s", s.baseURL, slug),
			LastMod:    now,
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}
	return entries
}
