package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/media/model"
)

// ServiceInterface is the media asset lifecycle:
// register (PENDING) -> accept bytes -> finalize (READY).
type ServiceInterface interface {
	// RegisterAsset records metadata and hands back the upload target.
	RegisterAsset(ctx context.Context, req model.RegisterAssetRequest) (*model.PresignResponse, error)

	// AcceptBytes writes the raw stream to the asset's storage key,
	// overwriting any previous upload. Size and type are not
	// re-validated here; the presign step already fixed them.
	AcceptBytes(ctx context.Context, assetID uuid.UUID, reader io.Reader, size int64) error

	// Finalize promotes the asset to READY once bytes exist.
	Finalize(ctx context.Context, assetID uuid.UUID, req model.FinalizeRequest) (*model.Asset, error)

	// GetAsset returns a single asset.
	GetAsset(ctx context.Context, assetID uuid.UUID) (*model.Asset, error)

	// ListAssets is the admin listing, newest first.
	ListAssets(ctx context.Context, req model.ListAssetsRequest) ([]*model.Asset, error)

	// PurgeStale deletes PENDING assets registered before cutoff hours
	// ago, together with any orphaned bytes. Returns the purge count.
	PurgeStale(ctx context.Context, maxAgeHours int) (int, error)
}

// TaskEnqueuer schedules the post-finalize processing job. Nil-able:
// deployments without a worker simply skip enrichment.
type TaskEnqueuer interface {
	EnqueueProcessMediaAsset(ctx context.Context, assetID string) error
}
