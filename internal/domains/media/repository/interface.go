package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/media/model"
)

// AssetRepository is the record store for media assets.
type AssetRepository interface {
	// Create persists a freshly registered asset.
	Create(ctx context.Context, asset *model.Asset) error

	// GetByID returns model.ErrAssetNotFound when the id is unknown.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error)

	// Update overwrites the stored asset.
	Update(ctx context.Context, asset *model.Asset) error

	// List returns assets newest first, optionally filtered by status.
	List(ctx context.Context, status model.AssetStatus, limit int) ([]*model.Asset, error)

	// ListStalePending returns PENDING assets created before cutoff.
	ListStalePending(ctx context.Context, cutoff time.Time) ([]*model.Asset, error)

	// Delete removes the record. Missing ids are not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
