package repository

import (
	"context"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/article/model"
)

// ArticleRepository persists articles.
type ArticleRepository interface {
	// Create inserts the article; returns model.ErrSlugTaken on a slug
	// uniqueness violation.
	Create(ctx context.Context, article *model.Article) error

	// GetByID returns model.ErrArticleNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error)

	// GetBySlug returns model.ErrArticleNotFound when absent.
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)

	Update(ctx context.Context, article *model.Article) error

	// List returns articles newest first, optionally filtered by status.
	List(ctx context.Context, status model.ArticleStatus, limit int) ([]*model.Article, error)

	// ListSlugsWithPrefix returns every slug starting with prefix, used
	// for numeric-suffix collision resolution.
	ListSlugsWithPrefix(ctx context.Context, prefix string) ([]string, error)
}
