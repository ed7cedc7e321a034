package model

import "errors"

// Error codes
const (
	ErrCodeAssetNotFound = "MED001"
	ErrCodeBytesMissing  = "MED002"
	ErrCodeInvalidType   = "MED003"
)

var (
	ErrAssetNotFound = errors.New("media asset not found")
	// ErrBytesMissing: finalize was called before any bytes were
	// uploaded for the asset.
	ErrBytesMissing = errors.New("no uploaded bytes for media asset")
)

// MediaError carries a stable code alongside the message.
type MediaError struct {
	Code    string
	Message string
	Err     error
}

func (e *MediaError) Error() string {
	return e.Message
}

func (e *MediaError) Unwrap() error {
	return e.Err
}

func NewAssetNotFoundError() *MediaError {
	return &MediaError{
		Code:    ErrCodeAssetNotFound,
		Message: "Media asset not found",
		Err:     ErrAssetNotFound,
	}
}

func NewBytesMissingError() *MediaError {
	return &MediaError{
		Code:    ErrCodeBytesMissing,
		Message: "No bytes have been uploaded for this asset",
		Err:     ErrBytesMissing,
	}
}
