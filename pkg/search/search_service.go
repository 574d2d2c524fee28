package search

import (
	"context"
	"encoding/json"
	"strings"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"
	"Recipe-Blog-Backend/pkg/recipe"
)

type (
	SearchService interface {
		SearchRecipes(ctx context.Context, query string) (domain.SearchResponse, error)
	}

	searchService struct {
		recipeRepository recipe.RecipeRepository
	}
)

func NewSearchService(recipeRepository recipe.RecipeRepository) SearchService {
	return &searchService{recipeRepository: recipeRepository}
}

// SearchRecipes runs a literal substring filter over the published catalog:
// the query is split on whitespace and every token must appear somewhere in
// the recipe's combined title, description, category names and ingredient
// names. An empty query returns an empty result set, not the full catalog.
func (s *searchService) SearchRecipes(ctx context.Context, query string) (domain.SearchResponse, error) {
	res := domain.SearchResponse{
		Query:   query,
		Results: []domain.SearchResult{},
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return res, nil
	}

	recipes, err := s.recipeRepository.GetPublishedRecipes(ctx)
	if err != nil {
		return res, err
	}

	for _, candidate := range recipes {
		if MatchesAll(SearchableText(candidate), tokens) {
			res.Results = append(res.Results, toSearchResult(candidate))
		}
	}
	res.Total = len(res.Results)
	return res, nil
}

func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

func MatchesAll(searchable string, tokens []string) bool {
	for _, token := range tokens {
		if !strings.Contains(searchable, token) {
			return false
		}
	}
	return true
}

// SearchableText concatenates the fields a token may match against.
func SearchableText(r *entities.Recipe) string {
	parts := []string{r.Title, r.Description}
	for _, cat := range r.Categories {
		parts = append(parts, cat.Name)
	}

	var groups []domain.IngredientGroup
	if err := json.Unmarshal(r.Ingredients, &groups); err == nil {
		for _, group := range groups {
			parts = append(parts, group.Items...)
		}
	}

	return strings.ToLower(strings.Join(parts, " "))
}

func toSearchResult(r *entities.Recipe) domain.SearchResult {
	result := domain.SearchResult{
		ID:               r.ID.String(),
		Title:            r.Title,
		Slug:             r.Slug,
		Description:      r.Description,
		FeaturedImageURL: r.FeaturedImageURL,
		TotalTime:        r.TotalTimeMinutes,
		Difficulty:       r.Difficulty,
		Categories:       []domain.CategorySummary{},
	}
	for _, cat := range r.Categories {
		result.Categories = append(result.Categories, domain.CategorySummary{
			ID:   cat.ID.String(),
			Name: cat.Name,
			Slug: cat.Slug,
		})
	}
	return result
}
