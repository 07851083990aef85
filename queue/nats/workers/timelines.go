package workers

import (
  "encoding/json"
  "log"

  "github.com/nats-io/nats.go"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
)

type Timelines struct {
  NatsContext *common.NatsContext
}

func NewTimelines(natsContext *common.NatsContext) *Timelines {
  return &Timelines{
    NatsContext: natsContext,
  }
}

func (h *Timelines) Subscribe() error {
  _, err := h.NatsContext.Conn.Subscribe(config.NATS_STATUSES_CACHED, h.Apply)
  return err
}

func (h *Timelines) Apply(m *nats.Msg) {
  var payload *models.TimelineCached
  if err := json.Unmarshal(m.Data, &payload); err != nil || payload == nil {
    return
  }
  log.Println("statuses cached", payload.AccountKey.String(), payload.PagingKey, payload.Total)
}
