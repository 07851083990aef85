package nats

import (
  "log"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/queue/nats/workers"
)

// Subscriber attaches one group of message handlers to the connection.
type Subscriber interface {
  Subscribe() error
}

type Workers struct {
  NatsContext *common.NatsContext
}

func NewWorkers(natsContext *common.NatsContext) *Workers {
  return &Workers{
    NatsContext: natsContext,
  }
}

func (h *Workers) Subscribers() map[string]Subscriber {
  return map[string]Subscriber{
    "notifications": workers.NewNotifications(h.NatsContext),
    "timelines":     workers.NewTimelines(h.NatsContext),
    "compose":       workers.NewCompose(h.NatsContext),
  }
}

// Subscribe attaches every subscriber and flushes so the server knows about
// the subscriptions before the first publish.
func (h *Workers) Subscribe() error {
  for name, subscriber := range h.Subscribers() {
    if err := subscriber.Subscribe(); err != nil {
      return err
    }
    log.Println("nats workers subscribed:", name)
  }
  return h.NatsContext.Conn.Flush()
}
