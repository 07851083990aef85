package workers

import (
  "encoding/json"
  "log"

  "github.com/nats-io/nats.go"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
)

type Notifications struct {
  NatsContext *common.NatsContext
}

func NewNotifications(natsContext *common.NatsContext) *Notifications {
  return &Notifications{
    NatsContext: natsContext,
  }
}

func (h *Notifications) Subscribe() error {
  if _, err := h.NatsContext.Conn.Subscribe(config.NATS_IN_APP_NOTIFICATIONS, h.Apply); err != nil {
    return err
  }
  _, err := h.NatsContext.Conn.Subscribe(config.NATS_DRAFTS_CHANGED, h.DraftsChanged)
  return err
}

func (h *Notifications) Apply(m *nats.Msg) {
  var notification *actions.Notification
  if err := json.Unmarshal(m.Data, &notification); err != nil || notification == nil {
    return
  }
  log.Printf("notification [%s] %s", notification.Kind, notification.Message)
}

func (h *Notifications) DraftsChanged(m *nats.Msg) {
  log.Println("draft changed", string(m.Data))
}
