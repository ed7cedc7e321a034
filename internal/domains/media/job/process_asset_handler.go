package job

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"fanzone-backend/internal/domains/media/model"
	"fanzone-backend/internal/domains/media/repository"
	"fanzone-backend/internal/infrastructure/storage"
)

// ProcessAssetHandler enriches a finalized image asset: probes pixel
// dimensions when the client did not supply them and writes a JPEG
// thumbnail next to the original. Videos and already-enriched assets
// are skipped.
func ProcessAssetHandler(
	assetRepo repository.AssetRepository,
	store storage.Store,
	processor *storage.ImageProcessor,
	thumbnailSize int,
) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p ProcessAssetPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry
		}

		assetID, err := uuid.Parse(p.AssetID)
		if err != nil {
			return asynq.SkipRetry
		}

		asset, err := assetRepo.GetByID(ctx, assetID)
		if err != nil {
			if err == model.ErrAssetNotFound {
				// Purged between finalize and processing.
				return nil
			}
			return err
		}
		if asset.Status != model.AssetStatusReady || asset.Type != model.AssetTypeImage {
			return nil
		}

		reader, err := store.Open(ctx, asset.ObjectKey())
		if err != nil {
			return fmt.Errorf("open asset bytes: %w", err)
		}
		data, err := io.ReadAll(reader)
		reader.Close()
		if err != nil {
			return fmt.Errorf("read asset bytes: %w", err)
		}

		changed := false

		if asset.Width == nil || asset.Height == nil {
			width, height, err := processor.Probe(data)
			if err != nil {
				// Undecodable uploads stay READY without dimensions.
				log.Warn().Err(err).Str("asset_id", asset.ID.String()).
					Msg("could not probe image dimensions")
			} else {
				asset.Width = &width
				asset.Height = &height
				changed = true
			}
		}

		if asset.ThumbnailURL == nil {
			thumb, err := processor.Thumbnail(data, thumbnailSize)
			if err != nil {
				log.Warn().Err(err).Str("asset_id", asset.ID.String()).
					Msg("could not render thumbnail")
			} else {
				key := asset.ThumbnailKey()
				if err := store.Write(ctx, key, bytes.NewReader(thumb), int64(len(thumb)), "image/jpeg"); err != nil {
					return fmt.Errorf("write thumbnail: %w", err)
				}
				url := store.PublicURL(key)
				asset.ThumbnailURL = &url
				changed = true
			}
		}

		if !changed {
			return nil
		}

		asset.UpdatedAt = time.Now()
		if err := assetRepo.Update(ctx, asset); err != nil {
			return fmt.Errorf("update asset metadata: %w", err)
		}

		log.Info().Str("asset_id", asset.ID.String()).Msg("media asset processed")
		return nil
	}
}
