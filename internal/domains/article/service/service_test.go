package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanzone-backend/internal/domains/article/model"
	"fanzone-backend/internal/domains/article/repository"
	"fanzone-backend/pkg/cache"
)

func newTestService() ServiceInterface {
	return NewArticleService(repository.NewMemoryArticleRepository(), cache.NewMemory())
}

func TestCreateArticleGeneratesSlug(t *testing.T) {
	svc := newTestService()

	article, err := svc.CreateArticle(context.Background(), model.CreateArticleRequest{
		Title:   "Test Match!",
		Content: "report",
	})
	require.NoError(t, err)

	assert.Equal(t, "test-match", article.Slug)
	assert.Equal(t, model.ArticleStatusDraft, article.Status)
	assert.Nil(t, article.PublishedAt)
}

func TestSlugCollisionGetsNumericSuffix(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.CreateArticle(ctx, model.CreateArticleRequest{Title: "Test Match", Content: "a"})
	require.NoError(t, err)
	second, err := svc.CreateArticle(ctx, model.CreateArticleRequest{Title: "Test Match", Content: "b"})
	require.NoError(t, err)
	third, err := svc.CreateArticle(ctx, model.CreateArticleRequest{Title: "Test Match", Content: "c"})
	require.NoError(t, err)

	assert.Equal(t, "test-match", first.Slug)
	assert.Equal(t, "test-match-1", second.Slug)
	assert.Equal(t, "test-match-2", third.Slug)
}

func TestPublishStampsPublishedAtOnce(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, model.CreateArticleRequest{Title: "Derby", Content: "x"})
	require.NoError(t, err)

	published, err := svc.Publish(ctx, article.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	assert.Equal(t, model.ArticleStatusPublished, published.Status)

	// Publishing again keeps the original timestamp.
	again, err := svc.Publish(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, published.PublishedAt, again.PublishedAt)
}

func TestGetBySlugHidesDraftsFromPublic(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, model.CreateArticleRequest{Title: "Preview", Content: "x"})
	require.NoError(t, err)

	_, err = svc.GetBySlug(ctx, article.Slug, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrArticleNotFound)

	// Admins see drafts.
	got, err := svc.GetBySlug(ctx, article.Slug, true)
	require.NoError(t, err)
	assert.Equal(t, article.ID, got.ID)

	_, err = svc.Publish(ctx, article.ID)
	require.NoError(t, err)

	got, err = svc.GetBySlug(ctx, article.Slug, false)
	require.NoError(t, err)
	assert.Equal(t, model.ArticleStatusPublished, got.Status)
}

func TestPublicListOnlyPublished(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	draft, err := svc.CreateArticle(ctx, model.CreateArticleRequest{Title: "Draft", Content: "x"})
	require.NoError(t, err)

	published, err := svc.CreateArticle(ctx, model.CreateArticleRequest{Title: "Live", Content: "x"})
	require.NoError(t, err)
	_, err = svc.Publish(ctx, published.ID)
	require.NoError(t, err)

	articles, err := svc.List(ctx, model.ListArticlesRequest{}, false)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, published.ID, articles[0].ID)

	all, err := svc.List(ctx, model.ListArticlesRequest{}, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	drafts, err := svc.List(ctx, model.ListArticlesRequest{Status: "DRAFT"}, true)
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, draft.ID, drafts[0].ID)
}
