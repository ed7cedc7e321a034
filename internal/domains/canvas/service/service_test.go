package service

import (
	"context"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanzone-backend/internal/domains/canvas/model"
	"fanzone-backend/internal/domains/canvas/repository"
	"fanzone-backend/internal/infrastructure/storage"
)

const (
	maxImageBytes = 10 * 1024 * 1024
	maxVideoBytes = 50 * 1024 * 1024
)

func newTestService(t *testing.T) (ServiceInterface, *model.Canvas) {
	t.Helper()

	repo := repository.NewMemoryCanvasRepository()
	store := storage.NewMemoryStore()
	svc := NewCanvasService(repo, store, maxImageBytes, maxVideoBytes)

	canvas, err := svc.CreateCanvas(context.Background(), model.CreateCanvasRequest{Name: "match day"})
	require.NoError(t, err)
	return svc, canvas
}

func mediaSubmission(postType, mimeType string, size int64) model.MediaSubmission {
	return model.MediaSubmission{
		Type:     postType,
		FileName: "upload.bin",
		MimeType: mimeType,
		Size:     size,
		Reader:   strings.NewReader("file-bytes"),
	}
}

func TestCreateCanvasAcceptsTitleAlias(t *testing.T) {
	repo := repository.NewMemoryCanvasRepository()
	svc := NewCanvasService(repo, storage.NewMemoryStore(), maxImageBytes, maxVideoBytes)

	canvas, err := svc.CreateCanvas(context.Background(), model.CreateCanvasRequest{Title: "away days"})
	require.NoError(t, err)
	assert.Equal(t, "away days", canvas.Name)

	_, err = svc.CreateCanvas(context.Background(), model.CreateCanvasRequest{})
	require.Error(t, err)
}

func TestCreateTextPost(t *testing.T) {
	svc, canvas := newTestService(t)

	post, err := svc.CreatePost(context.Background(), canvas.ID, model.TextSubmission{
		Type:    "TEXT",
		Content: "what a goal",
	})
	require.NoError(t, err)

	assert.Equal(t, model.PostTypeText, post.Type)
	require.NotNil(t, post.Content)
	assert.Equal(t, "what a goal", *post.Content)
	assert.Nil(t, post.FileURL)
}

func TestCreateTextPostRequiresContent(t *testing.T) {
	svc, canvas := newTestService(t)

	_, err := svc.CreatePost(context.Background(), canvas.ID, model.TextSubmission{Type: "TEXT"})
	require.Error(t, err)

	var validationErrs validation.Errors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestCreateTextPostRejectsWrongTypeLiteral(t *testing.T) {
	svc, canvas := newTestService(t)

	_, err := svc.CreatePost(context.Background(), canvas.ID, model.TextSubmission{
		Type:    "IMAGE",
		Content: "not text",
	})
	require.Error(t, err)
}

func TestCreateMediaPost(t *testing.T) {
	svc, canvas := newTestService(t)

	post, err := svc.CreatePost(context.Background(), canvas.ID, mediaSubmission("IMAGE", "image/png", 1024))
	require.NoError(t, err)

	assert.Equal(t, model.PostTypeImage, post.Type)
	assert.Nil(t, post.Content)
	require.NotNil(t, post.FileURL)
	assert.NotEmpty(t, *post.FileURL)
}

func TestCreateMediaPostRejectsDisallowedMime(t *testing.T) {
	svc, canvas := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, canvas.ID, mediaSubmission("IMAGE", "image/tiff", 1024))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrMimeNotAllowed)

	// Nothing was persisted.
	posts, err := svc.ListPosts(ctx, canvas.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestImageSizeBoundary(t *testing.T) {
	svc, canvas := newTestService(t)
	ctx := context.Background()

	// Exactly at the limit is accepted.
	_, err := svc.CreatePost(ctx, canvas.ID, mediaSubmission("IMAGE", "image/jpeg", maxImageBytes))
	require.NoError(t, err)

	// One byte over is rejected.
	_, err = svc.CreatePost(ctx, canvas.ID, mediaSubmission("IMAGE", "image/jpeg", maxImageBytes+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrFileTooLarge)
}

func TestVideoSizeBoundary(t *testing.T) {
	svc, canvas := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePost(ctx, canvas.ID, mediaSubmission("VIDEO", "video/mp4", maxVideoBytes))
	require.NoError(t, err)

	_, err = svc.CreatePost(ctx, canvas.ID, mediaSubmission("VIDEO", "video/mp4", maxVideoBytes+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrFileTooLarge)
}

func TestCreatePostUnknownCanvas(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreatePost(context.Background(), uuid.New(), model.TextSubmission{
		Type:    "TEXT",
		Content: "hello",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCanvasNotFound)
}

func TestCreatePostUnsupportedShape(t *testing.T) {
	svc, canvas := newTestService(t)

	_, err := svc.CreatePost(context.Background(), canvas.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnsupportedShape)
}

func TestListPostsNewestFirst(t *testing.T) {
	svc, canvas := newTestService(t)
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		_, err := svc.CreatePost(ctx, canvas.ID, model.TextSubmission{Type: "TEXT", Content: content})
		require.NoError(t, err)
	}

	posts, err := svc.ListPosts(ctx, canvas.ID)
	require.NoError(t, err)
	require.Len(t, posts, 3)

	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i-1].CreatedAt.Before(posts[i].CreatedAt))
	}
}

func TestListPostsUnknownCanvas(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ListPosts(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrCanvasNotFound)
}
