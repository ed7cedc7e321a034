package repository

import (
	"context"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/comment/model"
)

// CommentRepository persists comments.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error

	// GetByID returns model.ErrCommentNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error)

	Update(ctx context.Context, comment *model.Comment) error

	// ListApprovedByArticle returns APPROVED comments for the article,
	// newest first.
	ListApprovedByArticle(ctx context.Context, articleID uuid.UUID) ([]*model.Comment, error)

	// ListForModeration returns comments in the given status joined
	// with their parent-article summary, newest first, capped at limit.
	ListForModeration(ctx context.Context, status model.CommentStatus, limit int) ([]*model.ModerationEntry, error)
}
