package service

import (
	"context"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanzone-backend/internal/domains/community/model"
	"fanzone-backend/internal/domains/community/repository"
)

func TestCreateAndListFeed(t *testing.T) {
	svc := NewCommunityService(repository.NewMemoryPostRepository())
	ctx := context.Background()
	userID := uuid.New()

	mediaURL := "/uploads/abc"
	_, err := svc.CreatePost(ctx, userID, model.CreatePostRequest{
		Body:     "match thread",
		MediaURL: &mediaURL,
	})
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, userID, model.CreatePostRequest{Body: "second"})
	require.NoError(t, err)

	posts, total, err := svc.ListFeed(ctx, model.ListPostsRequest{})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, posts, 2)
	assert.False(t, posts[0].CreatedAt.Before(posts[1].CreatedAt))
}

func TestCreatePostValidation(t *testing.T) {
	svc := NewCommunityService(repository.NewMemoryPostRepository())

	_, err := svc.CreatePost(context.Background(), uuid.New(), model.CreatePostRequest{})
	require.Error(t, err)

	var validationErrs validation.Errors
	assert.ErrorAs(t, err, &validationErrs)

	_, err = svc.CreatePost(context.Background(), uuid.New(), model.CreatePostRequest{
		Body: strings.Repeat("x", 1001),
	})
	require.Error(t, err)
}

func TestFeedPagination(t *testing.T) {
	svc := NewCommunityService(repository.NewMemoryPostRepository())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.CreatePost(ctx, uuid.New(), model.CreatePostRequest{Body: "post"})
		require.NoError(t, err)
	}

	page1, total, err := svc.ListFeed(ctx, model.ListPostsRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, total)
	assert.Len(t, page1, 2)

	page3, _, err := svc.ListFeed(ctx, model.ListPostsRequest{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page3, 1)
}
