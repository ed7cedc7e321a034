package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fanzone-backend/internal/domains/canvas/model"
	"fanzone-backend/internal/domains/canvas/repository"
	"fanzone-backend/internal/infrastructure/storage"
)

type canvasService struct {
	canvasRepo    repository.CanvasRepository
	store         storage.Store
	maxImageBytes int64
	maxVideoBytes int64
}

func NewCanvasService(
	canvasRepo repository.CanvasRepository,
	store storage.Store,
	maxImageBytes int64,
	maxVideoBytes int64,
) ServiceInterface {
	return &canvasService{
		canvasRepo:    canvasRepo,
		store:         store,
		maxImageBytes: maxImageBytes,
		maxVideoBytes: maxVideoBytes,
	}
}

func (s *canvasService) CreateCanvas(ctx context.Context, req model.CreateCanvasRequest) (*model.Canvas, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	canvas := &model.Canvas{
		ID:        uuid.New(),
		Name:      req.ResolvedName(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.canvasRepo.CreateCanvas(ctx, canvas); err != nil {
		return nil, fmt.Errorf("failed to create canvas: %w", err)
	}
	return canvas, nil
}

func (s *canvasService) GetCanvas(ctx context.Context, canvasID uuid.UUID) (*model.Canvas, error) {
	canvas, err := s.canvasRepo.GetCanvasByID(ctx, canvasID)
	if err != nil {
		if err == model.ErrCanvasNotFound {
			return nil, model.NewCanvasNotFoundError()
		}
		return nil, fmt.Errorf("failed to load canvas: %w", err)
	}
	return canvas, nil
}

func (s *canvasService) ListCanvases(ctx context.Context, limit int) ([]*model.Canvas, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	canvases, err := s.canvasRepo.ListCanvases(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list canvases: %w", err)
	}
	return canvases, nil
}

func (s *canvasService) CreatePost(ctx context.Context, canvasID uuid.UUID, submission model.PostSubmission) (*model.Post, error) {
	if _, err := s.GetCanvas(ctx, canvasID); err != nil {
		return nil, err
	}

	switch sub := submission.(type) {
	case model.TextSubmission:
		return s.createTextPost(ctx, canvasID, sub)
	case model.MediaSubmission:
		return s.createMediaPost(ctx, canvasID, sub)
	default:
		return nil, model.NewUnsupportedShapeError()
	}
}

func (s *canvasService) createTextPost(ctx context.Context, canvasID uuid.UUID, sub model.TextSubmission) (*model.Post, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	content := sub.Content
	post := &model.Post{
		ID:        uuid.New(),
		CanvasID:  canvasID,
		Type:      model.PostTypeText,
		Content:   &content,
		CreatedAt: time.Now(),
	}

	if err := s.insertPost(ctx, post, ""); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *canvasService) createMediaPost(ctx context.Context, canvasID uuid.UUID, sub model.MediaSubmission) (*model.Post, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	postType := model.PostType(sub.Type)
	if !model.MimeAllowed(postType, sub.MimeType) {
		return nil, model.NewMimeNotAllowedError(sub.MimeType)
	}

	limit := s.maxImageBytes
	if postType == model.PostTypeVideo {
		limit = s.maxVideoBytes
	}
	// Inclusive limit: a file of exactly the limit is accepted.
	if sub.Size > limit {
		return nil, model.NewFileTooLargeError(postType, limit)
	}

	key := uuid.New().String() + strings.ToLower(filepath.Ext(sub.FileName))
	if err := s.store.Write(ctx, key, sub.Reader, sub.Size, sub.MimeType); err != nil {
		return nil, fmt.Errorf("failed to store post file: %w", err)
	}

	fileURL := s.store.PublicURL(key)
	post := &model.Post{
		ID:        uuid.New(),
		CanvasID:  canvasID,
		Type:      postType,
		FileURL:   &fileURL,
		CreatedAt: time.Now(),
	}

	if err := s.insertPost(ctx, post, key); err != nil {
		return nil, err
	}
	return post, nil
}

// insertPost writes the record; on a lost-canvas race it removes the
// already-stored file (fileKey non-empty for media posts).
func (s *canvasService) insertPost(ctx context.Context, post *model.Post, fileKey string) error {
	err := s.canvasRepo.CreatePost(ctx, post)
	if err == nil {
		return nil
	}

	if fileKey != "" {
		if delErr := s.store.Delete(ctx, fileKey); delErr != nil {
			log.Warn().Err(delErr).Str("key", fileKey).
				Msg("failed to clean up orphaned post file")
		}
	}
	if err == model.ErrCanvasNotFound {
		return model.NewCanvasNotFoundError()
	}
	return fmt.Errorf("failed to create canvas post: %w", err)
}

func (s *canvasService) ListPosts(ctx context.Context, canvasID uuid.UUID) ([]*model.Post, error) {
	if _, err := s.GetCanvas(ctx, canvasID); err != nil {
		return nil, err
	}

	posts, err := s.canvasRepo.ListPosts(ctx, canvasID)
	if err != nil {
		return nil, fmt.Errorf("failed to list canvas posts: %w", err)
	}
	return posts, nil
}
