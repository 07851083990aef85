package workers

import (
  "context"
  "encoding/json"
  "fmt"
  "log"
  "time"

  "github.com/hibiken/asynq"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/paging"
  "twiderex.local/twiderex/queue/asynq/jobs"
  "twiderex.local/twiderex/repositories"
)

type Timelines struct {
  AnsqContext        *common.AnsqServerContext
  AccountsRepository *repositories.AccountsRepository
  Cache              *repositories.CacheRepository
}

func NewTimelines(ansqContext *common.AnsqServerContext) *Timelines {
  h := &Timelines{
    AnsqContext: ansqContext,
  }
  h.AccountsRepository = &repositories.AccountsRepository{
    Db:     h.AnsqContext.Db,
    Secret: common.GetEnvString("TWIDEREX_SECRET"),
  }
  h.Cache = &repositories.CacheRepository{
    Db: h.AnsqContext.Db,
  }
  return h
}

// Refresh pulls the newest home and mentions pages into the cache, the same
// way a pull to refresh does.
func (h *Timelines) Refresh(ctx context.Context, t *asynq.Task) error {
  var payload jobs.TimelinesRefreshPayload
  if err := json.Unmarshal(t.Payload(), &payload); err != nil {
    log.Println("timelines payload error:", err)
    return nil
  }

  mutex := common.NewMutex(
    h.AnsqContext.Rdb,
    h.AnsqContext.Ctx,
    fmt.Sprintf(config.LOCKS_TIMELINES_SYNC, payload.AccountKey.String()),
  )
  locked, err := mutex.TryLock(time.Duration(config.LOCKS_TIMELINES_TTL) * time.Second)
  if err != nil {
    return fmt.Errorf("timelines lock %s: %w", payload.AccountKey.String(), err)
  }
  if !locked {
    return nil
  }
  defer mutex.Unlock()

  account, err := h.AccountsRepository.Find(ctx, payload.AccountKey)
  if err != nil {
    log.Println("account not exists", payload.AccountKey.String())
    return nil
  }
  details, err := h.AccountsRepository.Details(ctx, account)
  if err != nil {
    log.Println("account details error:", err)
    return nil
  }

  locker := &common.RedisLocker{Rdb: h.AnsqContext.Rdb}
  mediators := []*paging.TimelineMediator{
    paging.NewHomeTimelineMediator(h.Cache, details.AccountKey, details.Service, locker),
    paging.NewMentionTimelineMediator(h.Cache, details.AccountKey, details.Service, locker),
  }
  state := paging.PagingState[*models.TimelineItem]{Config: paging.DefaultConfig()}
  for _, mediator := range mediators {
    if result, ok := mediator.Load(ctx, paging.Refresh, state).(paging.Error); ok {
      log.Println("timeline refresh error:", mediator.PagingKey, result.Err)
      continue
    }
    h.cached(details.AccountKey, mediator.PagingKey, h.Cache.TimelineCount(ctx, details.AccountKey, mediator.PagingKey))
  }
  return nil
}

func (h *Timelines) cached(accountKey models.MicroBlogKey, pagingKey string, total int64) {
  log.Println("timeline cached", accountKey.String(), pagingKey, total)
  if h.AnsqContext.Nats == nil {
    return
  }
  payload, err := json.Marshal(&models.TimelineCached{
    AccountKey: accountKey,
    PagingKey:  pagingKey,
    Total:      total,
  })
  if err != nil {
    return
  }
  h.AnsqContext.Nats.Publish(config.NATS_STATUSES_CACHED, payload)
}

func (h *Timelines) Register() error {
  h.AnsqContext.Mux.HandleFunc(config.ASYNQ_JOBS_TIMELINES_REFRESH, h.Refresh)
  return nil
}
