package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// Error codes
const ErrCodePostNotFound = "COM001"

var ErrPostNotFound = errors.New("community post not found")

// Post is a short feed entry, optionally pointing at a finalized media
// asset's public URL.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Body      string    `json:"body"`
	MediaURL  *string   `json:"media_url"`
	CreatedAt time.Time `json:"created_at"`
}

type CreatePostRequest struct {
	Body     string  `json:"body"`
	MediaURL *string `json:"media_url"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Body, validation.Required, validation.Length(1, 1000)),
		validation.Field(&r.MediaURL, is.RequestURI),
	)
}

type ListPostsRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}
