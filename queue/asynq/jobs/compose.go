package jobs

import (
  "encoding/json"

  "github.com/hibiken/asynq"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
)

type Compose struct{}

func (h *Compose) Commit(data *models.ComposeData) (*asynq.Task, error) {
  payload, err := json.Marshal(data)
  if err != nil {
    return nil, err
  }
  return asynq.NewTask(config.ASYNQ_JOBS_COMPOSE_COMMIT, payload), nil
}
