package model

import (
	"time"

	"github.com/google/uuid"
)

type AssetType string

const (
	AssetTypeImage AssetType = "IMAGE"
	AssetTypeVideo AssetType = "VIDEO"
)

type AssetStatus string

const (
	AssetStatusPending AssetStatus = "PENDING"
	AssetStatusReady   AssetStatus = "READY"
)

// Asset is a registered, possibly-not-yet-uploaded binary resource.
// Status moves PENDING -> READY exactly once, on finalize, and only
// after bytes exist in storage.
type Asset struct {
	ID       uuid.UUID   `json:"id"`
	FileName string      `json:"filename"`
	MimeType string      `json:"mime_type"`
	Type     AssetType   `json:"type"`
	Status   AssetStatus `json:"status"`

	// Set on finalize.
	OriginalPath string  `json:"original_path"`
	OriginalURL  string  `json:"original_url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Width        *int    `json:"width"`
	Height       *int    `json:"height"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ObjectKey is the storage key the upload endpoint writes to and
// finalize checks. Keyed by id so two registrations never collide.
func (a *Asset) ObjectKey() string {
	return a.ID.String()
}

// ThumbnailKey is where the worker writes the generated thumbnail.
func (a *Asset) ThumbnailKey() string {
	return a.ID.String() + "_thumb.jpg"
}
