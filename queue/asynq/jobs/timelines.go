package jobs

import (
  "encoding/json"

  "github.com/hibiken/asynq"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
)

type TimelinesRefreshPayload struct {
  AccountKey models.MicroBlogKey `json:"account_key"`
}

type Timelines struct{}

func (h *Timelines) Refresh(accountKey models.MicroBlogKey) (*asynq.Task, error) {
  payload, err := json.Marshal(TimelinesRefreshPayload{accountKey})
  if err != nil {
    return nil, err
  }
  return asynq.NewTask(config.ASYNQ_JOBS_TIMELINES_REFRESH, payload), nil
}
