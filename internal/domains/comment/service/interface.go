package service

import (
	"context"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/comment/model"
)

// ServiceInterface is the comment moderation flow:
// PENDING (initial) -> APPROVED | REJECTED.
type ServiceInterface interface {
	// Submit creates a PENDING comment on a published article. Author
	// name and body are clipped to their caps, not rejected.
	Submit(ctx context.Context, articleSlug string, req model.SubmitCommentRequest) (*model.Comment, error)

	// ListPublic returns APPROVED comments of a published article,
	// newest first.
	ListPublic(ctx context.Context, articleSlug string) ([]*model.Comment, error)

	// ListForModeration returns the admin queue. Unknown or empty
	// status falls back to PENDING.
	ListForModeration(ctx context.Context, status string) ([]*model.ModerationEntry, error)

	// Approve / Reject transition the comment. In permissive mode any
	// prior state is overwritten; in strict mode only PENDING comments
	// may transition.
	Approve(ctx context.Context, commentID uuid.UUID) (*model.Comment, error)
	Reject(ctx context.Context, commentID uuid.UUID) (*model.Comment, error)
}
