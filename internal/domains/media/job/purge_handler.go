package job

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"fanzone-backend/internal/domains/media/service"
)

// PurgeStaleAssetsHandler removes PENDING assets that never finalized,
// along with any bytes they uploaded. Scheduled nightly.
func PurgeStaleAssetsHandler(mediaService service.ServiceInterface) func(ctx context.Context, t *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		var p PurgeStaleAssetsPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			return asynq.SkipRetry
		}

		purged, err := mediaService.PurgeStale(ctx, p.MaxAgeHours)
		if err != nil {
			return err
		}

		log.Info().Int("purged", purged).Int("max_age_hours", p.MaxAgeHours).
			Msg("stale media assets purged")
		return nil
	}
}
