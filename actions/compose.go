package actions

import (
  "context"
  "time"

  "github.com/hibiken/asynq"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/queue/asynq/jobs"
)

type ComposeAction interface {
  Commit(ctx context.Context, data *models.ComposeData) error
}

// QueueComposeAction hands the post to the compose worker.
type QueueComposeAction struct {
  Client *asynq.Client
  Job    *jobs.Compose
}

func (a *QueueComposeAction) Commit(ctx context.Context, data *models.ComposeData) error {
  task, err := a.Job.Commit(data)
  if err != nil {
    return err
  }
  _, err = a.Client.EnqueueContext(
    ctx,
    task,
    asynq.Queue(config.ASYNQ_QUEUE_COMPOSE),
    asynq.MaxRetry(config.COMPOSE_MAX_RETRY),
    asynq.Timeout(time.Duration(config.LOCKS_COMPOSE_TTL)*time.Second),
  )
  return err
}
