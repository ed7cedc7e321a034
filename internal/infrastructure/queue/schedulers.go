package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"fanzone-backend/internal/config"
	mediajob "fanzone-backend/internal/domains/media/job"
	"fanzone-backend/internal/shared"
	"fanzone-backend/pkg/logger"
)

type Scheduler struct {
	scheduler *asynq.Scheduler
	jobConfig config.JobConfig
}

func NewScheduler(redisAddr, password string, db int, jobConfig config.JobConfig) *Scheduler {
	scheduler := asynq.NewScheduler(
		asynq.RedisClientOpt{Addr: redisAddr, Password: password, DB: db},
		&asynq.SchedulerOpts{
			Location: time.UTC,
			LogLevel: asynq.InfoLevel,
		},
	)

	return &Scheduler{scheduler: scheduler, jobConfig: jobConfig}
}

// RegisterJobs wires all recurring jobs.
func (s *Scheduler) RegisterJobs() error {
	return s.registerPurgeStaleAssetsJob()
}

// Purge PENDING assets nobody finalized. Nightly, off-peak: a stale
// registration only wastes storage, it is never user-visible.
func (s *Scheduler) registerPurgeStaleAssetsJob() error {
	payload, err := json.Marshal(mediajob.PurgeStaleAssetsPayload{
		MaxAgeHours: s.jobConfig.StaleAssetMaxAgeHours,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(shared.TypePurgeStaleAssets, payload)

	_, err = s.scheduler.Register(
		"0 3 * * *", // daily at 3 AM UTC
		task,
		asynq.Queue(shared.QueueMedia),
		asynq.MaxRetry(2),
		asynq.Timeout(10*time.Minute),
	)
	if err != nil {
		logger.Error("Failed to register PurgeStaleAssets job", err)
		return err
	}

	logger.Info("Registered PurgeStaleAssets: daily at 3 AM", map[string]interface{}{
		"max_age_hours": s.jobConfig.StaleAssetMaxAgeHours,
	})
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Run()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
