package repository

import (
	"context"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/canvas/model"
)

// CanvasRepository persists canvases and their posts.
type CanvasRepository interface {
	CreateCanvas(ctx context.Context, canvas *model.Canvas) error

	// GetCanvasByID returns model.ErrCanvasNotFound when absent.
	GetCanvasByID(ctx context.Context, id uuid.UUID) (*model.Canvas, error)

	// ListCanvases returns canvases newest first.
	ListCanvases(ctx context.Context, limit int) ([]*model.Canvas, error)

	// CreatePost inserts a post after re-checking the parent canvas
	// exists, atomically where the backend supports it. Returns
	// model.ErrCanvasNotFound when the canvas is gone.
	CreatePost(ctx context.Context, post *model.Post) error

	// ListPosts returns a canvas's posts newest first.
	ListPosts(ctx context.Context, canvasID uuid.UUID) ([]*model.Post, error)
}
