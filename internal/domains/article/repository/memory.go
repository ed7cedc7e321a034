package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/article/model"
)

// memoryArticleRepository backs tests.
type memoryArticleRepository struct {
	mu       sync.RWMutex
	articles map[uuid.UUID]*model.Article
	bySlug   map[string]uuid.UUID
}

func NewMemoryArticleRepository() ArticleRepository {
	return &memoryArticleRepository{
		articles: make(map[uuid.UUID]*model.Article),
		bySlug:   make(map[string]uuid.UUID),
	}
}

func (r *memoryArticleRepository) Create(ctx context.Context, article *model.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySlug[article.Slug]; taken {
		return model.ErrSlugTaken
	}
	copied := *article
	r.articles[article.ID] = &copied
	r.bySlug[article.Slug] = article.ID
	return nil
}

func (r *memoryArticleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.articles[id]
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	copied := *article
	return &copied, nil
}

func (r *memoryArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return nil, model.ErrArticleNotFound
	}
	copied := *r.articles[id]
	return &copied, nil
}

func (r *memoryArticleRepository) Update(ctx context.Context, article *model.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return model.ErrArticleNotFound
	}
	copied := *article
	r.articles[article.ID] = &copied
	return nil
}

func (r *memoryArticleRepository) List(ctx context.Context, status model.ArticleStatus, limit int) ([]*model.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articles := []*model.Article{}
	for _, article := range r.articles {
		if status != "" && article.Status != status {
			continue
		}
		copied := *article
		articles = append(articles, &copied)
	}

	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (r *memoryArticleRepository) ListSlugsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slugs := []string{}
	for slug := range r.bySlug {
		if strings.HasPrefix(slug, prefix) {
			slugs = append(slugs, slug)
		}
	}
	return slugs, nil
}
