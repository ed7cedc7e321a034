package model

import (
	"time"

	"github.com/google/uuid"
)

type PostType string

const (
	PostTypeText  PostType = "TEXT"
	PostTypeImage PostType = "IMAGE"
	PostTypeVideo PostType = "VIDEO"
)

// Canvas is a named container for posts.
type Canvas struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Post is a single content item inside a canvas. Exactly one of
// Content (TEXT) and FileURL (IMAGE/VIDEO) is set.
type Post struct {
	ID        uuid.UUID `json:"id"`
	CanvasID  uuid.UUID `json:"canvas_id"`
	Type      PostType  `json:"type"`
	Content   *string   `json:"content"`
	FileURL   *string   `json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
}

// AllowedMimeTypes is the admission list for media posts, checked
// before anything is persisted.
var AllowedMimeTypes = map[PostType][]string{
	PostTypeImage: {"image/jpeg", "image/png", "image/gif", "image/webp"},
	PostTypeVideo: {"video/mp4", "video/webm", "video/quicktime"},
}

// MimeAllowed reports whether mimeType is admissible for the post type.
func MimeAllowed(postType PostType, mimeType string) bool {
	for _, allowed := range AllowedMimeTypes[postType] {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
