package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fanzone-backend/internal/domains/article/model"
	"fanzone-backend/internal/domains/article/repository"
	"fanzone-backend/internal/shared/utils"
	"fanzone-backend/pkg/cache"
)

const (
	articleCacheTTL       = 5 * time.Minute
	articleCacheKeyPrefix = "article:slug:"
)

type articleService struct {
	articleRepo repository.ArticleRepository
	cache       cache.Cache
}

func NewArticleService(articleRepo repository.ArticleRepository, c cache.Cache) ServiceInterface {
	return &articleService{
		articleRepo: articleRepo,
		cache:       c,
	}
}

func (s *articleService) CreateArticle(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	base := utils.GenerateSlug(req.Title)

	// Retry on a concurrent insert grabbing the same slug; the unique
	// index is the authority, the prefix scan just picks a candidate.
	for attempt := 0; attempt < 3; attempt++ {
		existing, err := s.articleRepo.ListSlugsWithPrefix(ctx, base)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve slug: %w", err)
		}
		taken := make(map[string]bool, len(existing))
		for _, slug := range existing {
			taken[slug] = true
		}

		now := time.Now()
		article := &model.Article{
			ID:        uuid.New(),
			Title:     req.Title,
			Slug:      utils.UniqueSlug(base, taken),
			Content:   req.Content,
			Tags:      req.Tags,
			Status:    model.ArticleStatusDraft,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if article.Tags == nil {
			article.Tags = []string{}
		}

		err = s.articleRepo.Create(ctx, article)
		if err == nil {
			return article, nil
		}
		if err != model.ErrSlugTaken {
			return nil, fmt.Errorf("failed to create article: %w", err)
		}
	}
	return nil, model.NewSlugTakenError()
}

func (s *articleService) Publish(ctx context.Context, articleID uuid.UUID) (*model.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, articleID)
	if err != nil {
		if err == model.ErrArticleNotFound {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}

	if article.IsPublished() {
		return article, nil
	}

	now := time.Now()
	article.Status = model.ArticleStatusPublished
	article.PublishedAt = &now
	article.UpdatedAt = now

	if err := s.articleRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to publish article: %w", err)
	}

	s.invalidate(ctx, article.Slug)
	return article, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*model.Article, error) {
	if !includeDrafts {
		var cached model.Article
		found, err := s.cache.Get(ctx, articleCacheKeyPrefix+slug, &cached)
		if err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("article cache read failed")
		} else if found {
			return &cached, nil
		}
	}

	article, err := s.articleRepo.GetBySlug(ctx, slug)
	if err != nil {
		if err == model.ErrArticleNotFound {
			return nil, model.NewArticleNotFoundError()
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}

	if !includeDrafts {
		if !article.IsPublished() {
			// Drafts are invisible to the public surface.
			return nil, model.NewArticleNotFoundError()
		}
		if err := s.cache.Set(ctx, articleCacheKeyPrefix+slug, article, articleCacheTTL); err != nil {
			log.Warn().Err(err).Str("slug", slug).Msg("article cache write failed")
		}
	}
	return article, nil
}

func (s *articleService) List(ctx context.Context, req model.ListArticlesRequest, includeDrafts bool) ([]*model.Article, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	status := model.ArticleStatusPublished
	if includeDrafts {
		switch model.ArticleStatus(req.Status) {
		case model.ArticleStatusDraft, model.ArticleStatusPublished:
			status = model.ArticleStatus(req.Status)
		default:
			status = ""
		}
	}

	articles, err := s.articleRepo.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *articleService) invalidate(ctx context.Context, slug string) {
	if err := s.cache.Delete(ctx, articleCacheKeyPrefix+slug); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("article cache invalidation failed")
	}
}
