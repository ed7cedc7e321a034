package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articlemodel "fanzone-backend/internal/domains/article/model"
	articlerepo "fanzone-backend/internal/domains/article/repository"
	articleservice "fanzone-backend/internal/domains/article/service"
	"fanzone-backend/internal/domains/comment/model"
	"fanzone-backend/internal/domains/comment/repository"
	"fanzone-backend/pkg/cache"
)

type fixture struct {
	svc       ServiceInterface
	published *articlemodel.Article
	draft     *articlemodel.Article
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	ctx := context.Background()

	articles := articlerepo.NewMemoryArticleRepository()
	articleSvc := articleservice.NewArticleService(articles, cache.NewMemory())

	published, err := articleSvc.CreateArticle(ctx, articlemodel.CreateArticleRequest{
		Title: "Match Report", Content: "full time",
	})
	require.NoError(t, err)
	published, err = articleSvc.Publish(ctx, published.ID)
	require.NoError(t, err)

	draft, err := articleSvc.CreateArticle(ctx, articlemodel.CreateArticleRequest{
		Title: "Unreleased", Content: "soon",
	})
	require.NoError(t, err)

	comments := repository.NewMemoryCommentRepository(articles)
	return &fixture{
		svc:       NewCommentService(comments, articles, cache.NewMemory(), strict),
		published: published,
		draft:     draft,
	}
}

func TestSubmitCreatesPending(t *testing.T) {
	f := newFixture(t, false)

	comment, err := f.svc.Submit(context.Background(), f.published.Slug, model.SubmitCommentRequest{
		AuthorName: "sam",
		Body:       "great write-up",
	})
	require.NoError(t, err)

	assert.Equal(t, model.CommentStatusPending, comment.Status)
	assert.Equal(t, f.published.ID, comment.ArticleID)
}

func TestSubmitTruncatesFields(t *testing.T) {
	f := newFixture(t, false)

	comment, err := f.svc.Submit(context.Background(), f.published.Slug, model.SubmitCommentRequest{
		AuthorName: strings.Repeat("a", 200),
		Body:       strings.Repeat("b", 5000),
	})
	require.NoError(t, err)

	assert.Len(t, comment.AuthorName, model.MaxAuthorNameLen)
	assert.Len(t, comment.Body, model.MaxBodyLen)
}

func TestSubmitRejectsDraftArticle(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.svc.Submit(context.Background(), f.draft.Slug, model.SubmitCommentRequest{
		AuthorName: "sam", Body: "hello",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrArticleNotFound)

	_, err = f.svc.Submit(context.Background(), "no-such-article", model.SubmitCommentRequest{
		AuthorName: "sam", Body: "hello",
	})
	assert.ErrorIs(t, err, model.ErrArticleNotFound)
}

func TestPublicListingShowsOnlyApproved(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.Submit(ctx, f.published.Slug, model.SubmitCommentRequest{
		AuthorName: "a", Body: "pending one",
	})
	require.NoError(t, err)

	rejected, err := f.svc.Submit(ctx, f.published.Slug, model.SubmitCommentRequest{
		AuthorName: "b", Body: "rejected one",
	})
	require.NoError(t, err)
	_, err = f.svc.Reject(ctx, rejected.ID)
	require.NoError(t, err)

	approved, err := f.svc.Submit(ctx, f.published.Slug, model.SubmitCommentRequest{
		AuthorName: "c", Body: "approved one",
	})
	require.NoError(t, err)
	_, err = f.svc.Approve(ctx, approved.ID)
	require.NoError(t, err)

	visible, err := f.svc.ListPublic(ctx, f.published.Slug)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, approved.ID, visible[0].ID)
}

func TestModerationQueueDefaultsToPending(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	comment, err := f.svc.Submit(ctx, f.published.Slug, model.SubmitCommentRequest{
		AuthorName: "a", Body: "hello",
	})
	require.NoError(t, err)

	for _, status := range []string{"", "BOGUS"} {
		entries, err := f.svc.ListForModeration(ctx, status)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, comment.ID, entries[0].ID)
		assert.Equal(t, f.published.Slug, entries[0].Article.Slug)
		assert.Equal(t, f.published.Title, entries[0].Article.Title)
	}
}

func TestPermissiveModeAllowsReModeration(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	comment, err := f.svc.Submit(ctx, f.published.Slug, model.SubmitCommentRequest{
		AuthorName: "a", Body: "hello",
	})
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, comment.ID)
	require.NoError(t, err)

	// Flipping an approved comment is allowed by default.
	updated, err := f.svc.Reject(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CommentStatusRejected, updated.Status)
}

func TestStrictModeBlocksReModeration(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	comment, err := f.svc.Submit(ctx, f.published.Slug, model.SubmitCommentRequest{
		AuthorName: "a", Body: "hello",
	})
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, comment.ID)
	require.NoError(t, err)

	_, err = f.svc.Reject(ctx, comment.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrAlreadyModerated)
}
