package workers

import (
  "encoding/json"
  "fmt"
  "log"
  "time"

  "github.com/nats-io/nats.go"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
)

type Compose struct {
  NatsContext *common.NatsContext
  Cache       *repositories.CacheRepository
}

func NewCompose(natsContext *common.NatsContext) *Compose {
  h := &Compose{
    NatsContext: natsContext,
  }
  h.Cache = &repositories.CacheRepository{
    Db: h.NatsContext.Db,
  }
  return h
}

func (h *Compose) Subscribe() error {
  _, err := h.NatsContext.Conn.Subscribe(config.NATS_COMPOSE_COMMITTED, h.Apply)
  return err
}

// Apply puts a freshly sent status on top of the author's home timeline
// without waiting for the next refresh.
func (h *Compose) Apply(m *nats.Msg) {
  var payload *models.ComposeResult
  if err := json.Unmarshal(m.Data, &payload); err != nil || payload == nil {
    return
  }

  mutex := common.NewMutex(
    h.NatsContext.Rdb,
    h.NatsContext.Ctx,
    fmt.Sprintf(config.LOCKS_PAGING_REFRESH, payload.AccountKey.String(), config.PAGING_KEY_HOME),
  )
  if !mutex.Lock(time.Duration(config.LOCKS_PAGING_TTL) * time.Second) {
    return
  }
  defer mutex.Unlock()

  detail, err := h.Cache.LoadStatus(h.NatsContext.Ctx, payload.AccountKey, payload.StatusKey)
  if err != nil {
    log.Println("composed status not cached", payload.StatusKey.String())
    return
  }
  err = h.Cache.SaveTimeline(h.NatsContext.Ctx, &repositories.TimelineWrite{
    AccountKey: payload.AccountKey,
    PagingKey:  config.PAGING_KEY_HOME,
    Entries: []*models.PagingTimeline{
      {
        AccountKey: payload.AccountKey,
        PagingKey:  config.PAGING_KEY_HOME,
        StatusKey:  payload.StatusKey,
        Timestamp:  detail.Status.Timestamp,
        SortID:     detail.Status.Timestamp,
      },
    },
  })
  if err != nil {
    log.Println("composed status timeline error:", err)
    return
  }
  if payload.IsThreadMode {
    log.Println("thread continues from", payload.StatusKey.String())
  }
}
