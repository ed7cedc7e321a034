package model

import (
	"time"

	"github.com/google/uuid"

	articlemodel "fanzone-backend/internal/domains/article/model"
)

type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "PENDING"
	CommentStatusApproved CommentStatus = "APPROVED"
	CommentStatusRejected CommentStatus = "REJECTED"
)

// Field caps applied on submission.
const (
	MaxAuthorNameLen = 80
	MaxBodyLen       = 2000
)

// Comment starts PENDING and is promoted or rejected by a moderator.
// Publicly visible only when APPROVED and the parent article is
// PUBLISHED.
type Comment struct {
	ID         uuid.UUID     `json:"id"`
	ArticleID  uuid.UUID     `json:"article_id"`
	AuthorName string        `json:"author_name"`
	Body       string        `json:"body"`
	Status     CommentStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// ModerationEntry is a comment joined with its parent-article summary
// for the admin queue.
type ModerationEntry struct {
	Comment
	Article articlemodel.ArticleSummary `json:"article"`
}

// ValidStatus reports whether s is a known comment status.
func ValidStatus(s CommentStatus) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected:
		return true
	}
	return false
}
