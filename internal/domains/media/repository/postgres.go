package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fanzone-backend/internal/domains/media/model"
)

type postgresAssetRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresAssetRepository(pool *pgxpool.Pool) AssetRepository {
	return &postgresAssetRepository{pool: pool}
}

const assetColumns = `
	id, filename, mime_type, type, status,
	original_path, original_url, thumbnail_url, width, height,
	created_at, updated_at
`

func (r *postgresAssetRepository) Create(ctx context.Context, asset *model.Asset) error {
	query := `
		INSERT INTO media_assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		asset.ID,
		asset.FileName,
		asset.MimeType,
		asset.Type,
		asset.Status,
		asset.OriginalPath,
		asset.OriginalURL,
		asset.ThumbnailURL,
		asset.Width,
		asset.Height,
		asset.CreatedAt,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create media asset: %w", err)
	}
	return nil
}

func (r *postgresAssetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM media_assets WHERE id = $1`

	asset, err := scanAsset(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get media asset: %w", err)
	}
	return asset, nil
}

func (r *postgresAssetRepository) Update(ctx context.Context, asset *model.Asset) error {
	query := `
		UPDATE media_assets
		SET status = $2, original_path = $3, original_url = $4,
		    thumbnail_url = $5, width = $6, height = $7, updated_at = $8
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		asset.ID,
		asset.Status,
		asset.OriginalPath,
		asset.OriginalURL,
		asset.ThumbnailURL,
		asset.Width,
		asset.Height,
		asset.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update media asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrAssetNotFound
	}
	return nil
}

func (r *postgresAssetRepository) List(ctx context.Context, status model.AssetStatus, limit int) ([]*model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM media_assets`
	args := []interface{}{}

	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d`, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list media assets: %w", err)
	}
	defer rows.Close()

	return collectAssets(rows)
}

func (r *postgresAssetRepository) ListStalePending(ctx context.Context, cutoff time.Time) ([]*model.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM media_assets
		WHERE status = $1 AND created_at < $2
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, model.AssetStatusPending, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list stale media assets: %w", err)
	}
	defer rows.Close()

	return collectAssets(rows)
}

func (r *postgresAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM media_assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media asset: %w", err)
	}
	return nil
}

func scanAsset(row pgx.Row) (*model.Asset, error) {
	asset := &model.Asset{}
	err := row.Scan(
		&asset.ID,
		&asset.FileName,
		&asset.MimeType,
		&asset.Type,
		&asset.Status,
		&asset.OriginalPath,
		&asset.OriginalURL,
		&asset.ThumbnailURL,
		&asset.Width,
		&asset.Height,
		&asset.CreatedAt,
		&asset.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func collectAssets(rows pgx.Rows) ([]*model.Asset, error) {
	assets := []*model.Asset{}
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan media asset: %w", err)
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}
