package service

import (
	"context"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/article/model"
)

// ServiceInterface manages articles: DRAFT on create, PUBLISHED on an
// explicit publish step, slugs unique via numeric suffixes.
type ServiceInterface interface {
	// CreateArticle makes a DRAFT article with a collision-free slug.
	CreateArticle(ctx context.Context, req model.CreateArticleRequest) (*model.Article, error)

	// Publish transitions DRAFT -> PUBLISHED, stamping PublishedAt on
	// the first transition only. Publishing twice is a no-op.
	Publish(ctx context.Context, articleID uuid.UUID) (*model.Article, error)

	// GetBySlug returns the article. When includeDrafts is false,
	// unpublished articles read as not found.
	GetBySlug(ctx context.Context, slug string, includeDrafts bool) (*model.Article, error)

	// List returns articles newest first. When includeDrafts is false
	// only PUBLISHED articles are returned and the status filter is
	// ignored.
	List(ctx context.Context, req model.ListArticlesRequest, includeDrafts bool) ([]*model.Article, error)
}
