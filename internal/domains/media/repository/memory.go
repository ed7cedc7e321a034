package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"fanzone-backend/internal/domains/media/model"
)

// memoryAssetRepository backs tests and storage-less deployments.
type memoryAssetRepository struct {
	mu     sync.RWMutex
	assets map[uuid.UUID]*model.Asset
}

func NewMemoryAssetRepository() AssetRepository {
	return &memoryAssetRepository{assets: make(map[uuid.UUID]*model.Asset)}
}

func (r *memoryAssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *asset
	r.assets[asset.ID] = &copied
	return nil
}

func (r *memoryAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	asset, ok := r.assets[id]
	if !ok {
		return nil, model.ErrAssetNotFound
	}
	copied := *asset
	return &copied, nil
}

func (r *memoryAssetRepository) Update(ctx context.Context, asset *model.Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[asset.ID]; !ok {
		return model.ErrAssetNotFound
	}
	copied := *asset
	r.assets[asset.ID] = &copied
	return nil
}

func (r *memoryAssetRepository) List(ctx context.Context, status model.AssetStatus, limit int) ([]*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assets := []*model.Asset{}
	for _, asset := range r.assets {
		if status != "" && asset.Status != status {
			continue
		}
		copied := *asset
		assets = append(assets, &copied)
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].CreatedAt.After(assets[j].CreatedAt)
	})
	if limit > 0 && len(assets) > limit {
		assets = assets[:limit]
	}
	return assets, nil
}

func (r *memoryAssetRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]*model.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assets := []*model.Asset{}
	for _, asset := range r.assets {
		if asset.Status == model.AssetStatusPending && asset.CreatedAt.Before(cutoff) {
			copied := *asset
			assets = append(assets, &copied)
		}
	}

	sort.Slice(assets, func(i, j int) bool {
		return assets[i].CreatedAt.Before(assets[j].CreatedAt)
	})
	return assets, nil
}

func (r *memoryAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.assets, id)
	return nil
}
