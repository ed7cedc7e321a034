package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"fanzone-backend/internal/config"
	mediajob "fanzone-backend/internal/domains/media/job"
	"fanzone-backend/internal/infrastructure/queue"
	"fanzone-backend/internal/infrastructure/storage"
	"fanzone-backend/internal/shared"
	"fanzone-backend/pkg/container"
	"fanzone-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	logger.Init(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The worker consumes tasks, it never enqueues.
	c, err := container.New(ctx, cfg, container.Options{WithQueue: false})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build container")
	}
	defer c.Close()

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Host,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				shared.QueueMedia:   3,
				shared.QueueDefault: 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(shared.TypeProcessMediaAsset, mediajob.ProcessAssetHandler(
		c.AssetRepo, c.Store, storage.NewImageProcessor(), cfg.Job.ThumbnailSize,
	))
	mux.HandleFunc(shared.TypePurgeStaleAssets, mediajob.PurgeStaleAssetsHandler(c.MediaService))

	scheduler := queue.NewScheduler(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB, cfg.Job)
	if err := scheduler.RegisterJobs(); err != nil {
		log.Fatal().Err(err).Msg("failed to register scheduled jobs")
	}

	go func() {
		if err := scheduler.Start(); err != nil {
			log.Error().Err(err).Msg("scheduler stopped")
			stop()
		}
	}()
	go func() {
		log.Info().Msg("worker started")
		if err := server.Run(mux); err != nil {
			log.Error().Err(err).Msg("worker stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down worker")
	scheduler.Shutdown()
	server.Shutdown()
}
