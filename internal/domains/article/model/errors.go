package model

import "errors"

// Error codes
const (
	ErrCodeArticleNotFound = "ART001"
	ErrCodeSlugTaken       = "ART002"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	// ErrSlugTaken surfaces a unique-constraint violation on slug; the
	// service retries with a fresh suffix before giving up.
	ErrSlugTaken = errors.New("article slug already taken")
)

// ArticleError carries a stable code alongside the message.
type ArticleError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArticleError) Error() string {
	return e.Message
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

func NewArticleNotFoundError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeArticleNotFound,
		Message: "Article not found",
		Err:     ErrArticleNotFound,
	}
}

func NewSlugTakenError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeSlugTaken,
		Message: "An article with this slug already exists",
		Err:     ErrSlugTaken,
	}
}
