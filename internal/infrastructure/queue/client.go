package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	mediajob "fanzone-backend/internal/domains/media/job"
	"fanzone-backend/internal/shared"
)

// Client enqueues background tasks for the worker.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

// EnqueueProcessMediaAsset schedules the post-finalize probe/thumbnail
// job for an asset. Called after the asset is already READY, so a lost
// task degrades metadata, never correctness.
func (c *Client) EnqueueProcessMediaAsset(ctx context.Context, assetID string) error {
	payload, err := json.Marshal(mediajob.ProcessAssetPayload{AssetID: assetID})
	if err != nil {
		return fmt.Errorf("marshal process asset payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeProcessMediaAsset, payload)
	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(3),
		asynq.Timeout(2*time.Minute),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", shared.TypeProcessMediaAsset, err)
	}
	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
