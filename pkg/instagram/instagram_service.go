package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"Recipe-Blog-Backend/domain"
	"Recipe-Blog-Backend/entities"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/pkg/recipe"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const defaultFetchLimit = 10

type (
	InstagramService interface {
		SyncRecentPosts(ctx context.Context) (domain.InstagramSyncResponse, error)
	}

	instagramService struct {
		client              InstagramClient
		recipeRepository    recipe.RecipeRepository
		instagramRepository InstagramRepository
	}
)

func NewInstagramService(client InstagramClient, recipeRepository recipe.RecipeRepository, instagramRepository InstagramRepository) InstagramService {
	return &instagramService{
		client:              client,
		recipeRepository:    recipeRepository,
		instagramRepository: instagramRepository,
	}
}

// SyncRecentPosts fetches the latest posts, keeps those passing the recipe
// keyword heuristic and turns each unseen one into a draft recipe. A post
// whose id already has a recipe row is skipped, so reruns are idempotent.
func (s *instagramService) SyncRecentPosts(ctx context.Context) (domain.InstagramSyncResponse, error) {
	res := domain.InstagramSyncResponse{Drafts: []domain.InstagramDraftResult{}}

	posts, err := s.client.FetchRecentPosts(ctx, fetchLimit())
	if err != nil {
		return res, err
	}
	res.Fetched = len(posts)

	for _, post := range posts {
		if !IsLikelyRecipePost(post.Caption) {
			res.Skipped++
			continue
		}

		exists, err := s.recipeRepository.ExistsByInstagramPostID(ctx, post.ID)
		if err != nil {
			return res, err
		}
		if exists {
			res.Skipped++
			continue
		}

		draft, err := s.createDraft(ctx, post)
		if err != nil {
			log.Errorf("failed to create draft for post %s: %v", post.ID, err)
			res.Skipped++
			continue
		}

		res.Created++
		res.Drafts = append(res.Drafts, draft)
	}

	return res, nil
}

func (s *instagramService) createDraft(ctx context.Context, post domain.InstagramPost) (domain.InstagramDraftResult, error) {
	title := ExtractTitleFromCaption(post.Caption)
	slug := GenerateSlug(title)

	// rune-wise so a multi-byte caption never yields invalid UTF-8
	description := truncateRunes(post.Caption, 200)

	featuredImage := post.MediaURL
	if post.MediaType == "VIDEO" && post.ThumbnailURL != "" {
		featuredImage = post.ThumbnailURL
	}

	videoLinks, err := json.Marshal(domain.VideoLinks{Instagram: post.Permalink})
	if err != nil {
		return domain.InstagramDraftResult{}, err
	}

	draft := &entities.Recipe{
		ID:    uuid.New(),
		Title: title,
		// suffix keeps the slug unique across posts with identical captions
		Slug:             fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli()),
		Description:      description,
		FeaturedImageURL: featuredImage,
		Ingredients:      datatypes.JSON("[]"),
		Instructions:     datatypes.JSON("[]"),
		VideoLinks:       datatypes.JSON(videoLinks),
		Status:           entities.RecipeStatusDraft,
		InstagramPostID:  post.ID,
		InstagramPostURL: post.Permalink,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, draft, nil); err != nil {
		return domain.InstagramDraftResult{}, err
	}

	if err := s.logProcessedPost(ctx, post); err != nil {
		log.Warnf("failed to write webhook log for post %s: %v", post.ID, err)
	}

	return domain.InstagramDraftResult{
		PostID:   post.ID,
		RecipeID: draft.ID.String(),
		Title:    title,
		Slug:     draft.Slug,
	}, nil
}

func (s *instagramService) logProcessedPost(ctx context.Context, post domain.InstagramPost) error {
	payload, err := json.Marshal(post)
	if err != nil {
		return err
	}
	entry := &entities.InstagramWebhookLog{
		ID:        uuid.New(),
		Payload:   datatypes.JSON(payload),
		Processed: true,
		CreatedAt: time.Now(),
	}
	return s.instagramRepository.CreateWebhookLog(ctx, entry)
}

func fetchLimit() int {
	if raw := utils.GetConfig("INSTAGRAM_FETCH_LIMIT"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			return limit
		}
	}
	return defaultFetchLimit
}
