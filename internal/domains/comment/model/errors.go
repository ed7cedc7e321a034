package model

import "errors"

// Error codes
const (
	ErrCodeCommentNotFound  = "CMT001"
	ErrCodeArticleNotFound  = "CMT002"
	ErrCodeAlreadyModerated = "CMT003"
)

var (
	ErrCommentNotFound = errors.New("comment not found")
	ErrArticleNotFound = errors.New("article not found")
	// ErrAlreadyModerated fires only in strict moderation mode, when a
	// transition targets a comment no longer PENDING.
	ErrAlreadyModerated = errors.New("comment already moderated")
)

// CommentError carries a stable code alongside the message.
type CommentError struct {
	Code    string
	Message string
	Err     error
}

func (e *CommentError) Error() string {
	return e.Message
}

func (e *CommentError) Unwrap() error {
	return e.Err
}

func NewCommentNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeCommentNotFound,
		Message: "Comment not found",
		Err:     ErrCommentNotFound,
	}
}

func NewArticleNotFoundError() *CommentError {
	return &CommentError{
		Code:    ErrCodeArticleNotFound,
		Message: "Article not found",
		Err:     ErrArticleNotFound,
	}
}

func NewAlreadyModeratedError() *CommentError {
	return &CommentError{
		Code:    ErrCodeAlreadyModerated,
		Message: "Comment has already been moderated",
		Err:     ErrAlreadyModerated,
	}
}
