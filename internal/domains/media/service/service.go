package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fanzone-backend/internal/domains/media/model"
	"fanzone-backend/internal/domains/media/repository"
	"fanzone-backend/internal/infrastructure/storage"
)

type mediaService struct {
	assetRepo repository.AssetRepository
	store     storage.Store
	enqueuer  TaskEnqueuer
}

func NewMediaService(
	assetRepo repository.AssetRepository,
	store storage.Store,
	enqueuer TaskEnqueuer,
) ServiceInterface {
	return &mediaService{
		assetRepo: assetRepo,
		store:     store,
		enqueuer:  enqueuer,
	}
}

func (s *mediaService) RegisterAsset(ctx context.Context, req model.RegisterAssetRequest) (*model.PresignResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &model.Asset{
		ID:        uuid.New(),
		FileName:  req.FileName,
		MimeType:  req.MimeType,
		Type:      model.AssetType(req.Type),
		Status:    model.AssetStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to register asset: %w", err)
	}

	return &model.PresignResponse{
		AssetID:   asset.ID.String(),
		UploadURL: "/uploads/" + asset.ObjectKey(),
		PublicURL: s.store.PublicURL(asset.ObjectKey()),
	}, nil
}

func (s *mediaService) AcceptBytes(ctx context.Context, assetID uuid.UUID, reader io.Reader, size int64) error {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		if err == model.ErrAssetNotFound {
			return model.NewAssetNotFoundError()
		}
		return fmt.Errorf("failed to load asset: %w", err)
	}

	if err := s.store.Write(ctx, asset.ObjectKey(), reader, size, asset.MimeType); err != nil {
		return fmt.Errorf("failed to store asset bytes: %w", err)
	}
	return nil
}

func (s *mediaService) Finalize(ctx context.Context, assetID uuid.UUID, req model.FinalizeRequest) (*model.Asset, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		if err == model.ErrAssetNotFound {
			return nil, model.NewAssetNotFoundError()
		}
		return nil, fmt.Errorf("failed to load asset: %w", err)
	}

	// Finalizing twice is a no-op; the PENDING->READY transition
	// happens at most once.
	if asset.Status == model.AssetStatusReady {
		return asset, nil
	}

	exists, err := s.store.Exists(ctx, asset.ObjectKey())
	if err != nil {
		return nil, fmt.Errorf("failed to check asset bytes: %w", err)
	}
	if !exists {
		return nil, model.NewBytesMissingError()
	}

	// The bytes-exist check and this update are two independent store
	// operations; the race window is accepted for this workload.
	asset.Status = model.AssetStatusReady
	asset.OriginalPath = asset.ObjectKey()
	asset.OriginalURL = s.store.PublicURL(asset.ObjectKey())
	asset.Width = req.Width
	asset.Height = req.Height
	asset.UpdatedAt = time.Now()

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to finalize asset: %w", err)
	}

	if s.enqueuer != nil && asset.Type == model.AssetTypeImage {
		if err := s.enqueuer.EnqueueProcessMediaAsset(ctx, asset.ID.String()); err != nil {
			// Enrichment only; the asset is READY regardless.
			log.Warn().Err(err).Str("asset_id", asset.ID.String()).
				Msg("failed to enqueue media processing")
		}
	}

	return asset, nil
}

func (s *mediaService) GetAsset(ctx context.Context, assetID uuid.UUID) (*model.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, assetID)
	if err != nil {
		if err == model.ErrAssetNotFound {
			return nil, model.NewAssetNotFoundError()
		}
		return nil, fmt.Errorf("failed to load asset: %w", err)
	}
	return asset, nil
}

func (s *mediaService) ListAssets(ctx context.Context, req model.ListAssetsRequest) ([]*model.Asset, error) {
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	var status model.AssetStatus
	switch model.AssetStatus(req.Status) {
	case model.AssetStatusPending, model.AssetStatusReady:
		status = model.AssetStatus(req.Status)
	}

	assets, err := s.assetRepo.List(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (s *mediaService) PurgeStale(ctx context.Context, maxAgeHours int) (int, error) {
	if maxAgeHours <= 0 {
		maxAgeHours = 24
	}
	cutoff := time.Now().Add(-time.Duration(maxAgeHours) * time.Hour)

	stale, err := s.assetRepo.ListStalePending(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale assets: %w", err)
	}

	purged := 0
	for _, asset := range stale {
		if err := s.store.Delete(ctx, asset.ObjectKey()); err != nil {
			log.Warn().Err(err).Str("asset_id", asset.ID.String()).
				Msg("failed to delete stale asset bytes")
			continue
		}
		if err := s.assetRepo.Delete(ctx, asset.ID); err != nil {
			return purged, fmt.Errorf("failed to delete stale asset record: %w", err)
		}
		purged++
	}
	return purged, nil
}
