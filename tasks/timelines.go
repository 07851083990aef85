package tasks

import (
  "errors"
  "log"
  "time"

  "github.com/hibiken/asynq"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/queue/asynq/jobs"
  "twiderex.local/twiderex/repositories"
)

type TimelinesTask struct {
  // Interval bounds how long an enqueued refresh blocks the next one for
  // the same account.
  Interval           time.Duration
  Job                *jobs.Timelines
  AnsqContext        *common.AnsqClientContext
  AccountsRepository *repositories.AccountsRepository
}

func NewTimelinesTask(ansqContext *common.AnsqClientContext) *TimelinesTask {
  return &TimelinesTask{
    Interval:    5 * time.Minute,
    AnsqContext: ansqContext,
    AccountsRepository: &repositories.AccountsRepository{
      Db: ansqContext.Db,
    },
  }
}

// Refresh enqueues one refresh per signed in account.
func (t *TimelinesTask) Refresh() (err error) {
  log.Println("tasks timelines refresh")
  accounts, err := t.AccountsRepository.Listings(t.AnsqContext.Ctx)
  if err != nil {
    return
  }
  for _, account := range accounts {
    job, err := t.Job.Refresh(account.AccountKey)
    if err != nil {
      continue
    }
    _, err = t.AnsqContext.Conn.Enqueue(
      job,
      asynq.Queue(config.ASYNQ_QUEUE_TIMELINES),
      asynq.MaxRetry(0),
      asynq.Unique(t.Interval),
      asynq.Timeout(time.Duration(config.LOCKS_TIMELINES_TTL)*time.Second),
    )
    if errors.Is(err, asynq.ErrDuplicateTask) {
      log.Println("timelines refresh still queued:", account.AccountKey.String())
    } else if err != nil {
      log.Println("timelines enqueue error:", account.AccountKey.String(), err)
    }
  }
  return nil
}
