package service

import (
	"context"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/canvas/model"
)

// ServiceInterface is the canvas posting pipeline.
type ServiceInterface interface {
	CreateCanvas(ctx context.Context, req model.CreateCanvasRequest) (*model.Canvas, error)
	GetCanvas(ctx context.Context, canvasID uuid.UUID) (*model.Canvas, error)
	ListCanvases(ctx context.Context, limit int) ([]*model.Canvas, error)

	// CreatePost dispatches on the submission variant: TEXT posts carry
	// content, media posts carry a stored file URL. Media admission
	// (MIME allow-list, size policy) happens before anything persists.
	CreatePost(ctx context.Context, canvasID uuid.UUID, submission model.PostSubmission) (*model.Post, error)

	// ListPosts returns the canvas's posts newest first.
	ListPosts(ctx context.Context, canvasID uuid.UUID) ([]*model.Post, error)
}
