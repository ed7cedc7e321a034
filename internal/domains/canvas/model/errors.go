package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeCanvasNotFound   = "CNV001"
	ErrCodeFileTooLarge     = "CNV002"
	ErrCodeMimeNotAllowed   = "CNV003"
	ErrCodeUnsupportedShape = "CNV004"
)

var (
	ErrCanvasNotFound = errors.New("canvas not found")
	ErrFileTooLarge   = errors.New("file exceeds size limit")
	ErrMimeNotAllowed = errors.New("mime type not allowed")
	// ErrUnsupportedShape: the request declared a content type that is
	// neither JSON nor multipart.
	ErrUnsupportedShape = errors.New("unsupported payload shape")
)

// CanvasError carries a stable code alongside the message.
type CanvasError struct {
	Code    string
	Message string
	Err     error
}

func (e *CanvasError) Error() string {
	return e.Message
}

func (e *CanvasError) Unwrap() error {
	return e.Err
}

func NewCanvasNotFoundError() *CanvasError {
	return &CanvasError{
		Code:    ErrCodeCanvasNotFound,
		Message: "Canvas not found",
		Err:     ErrCanvasNotFound,
	}
}

func NewFileTooLargeError(postType PostType, limit int64) *CanvasError {
	return &CanvasError{
		Code:    ErrCodeFileTooLarge,
		Message: fmt.Sprintf("%s files may not exceed %d bytes", postType, limit),
		Err:     ErrFileTooLarge,
	}
}

func NewMimeNotAllowedError(mimeType string) *CanvasError {
	return &CanvasError{
		Code:    ErrCodeMimeNotAllowed,
		Message: fmt.Sprintf("mime type %q is not allowed", mimeType),
		Err:     ErrMimeNotAllowed,
	}
}

func NewUnsupportedShapeError() *CanvasError {
	return &CanvasError{
		Code:    ErrCodeUnsupportedShape,
		Message: "Request body must be JSON or multipart form data",
		Err:     ErrUnsupportedShape,
	}
}
