package asynq

import (
  "log"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/queue/asynq/workers"
)

// Registrar binds one group of task handlers to the server mux.
type Registrar interface {
  Register() error
}

type Workers struct {
  AnsqContext *common.AnsqServerContext
}

func NewWorkers(ansqContext *common.AnsqServerContext) *Workers {
  return &Workers{
    AnsqContext: ansqContext,
  }
}

func (h *Workers) Registrars() map[string]Registrar {
  return map[string]Registrar{
    "compose":   workers.NewCompose(h.AnsqContext),
    "timelines": workers.NewTimelines(h.AnsqContext),
  }
}

func (h *Workers) Register() error {
  for name, registrar := range h.Registrars() {
    if err := registrar.Register(); err != nil {
      return err
    }
    log.Println("asynq workers registered:", name)
  }
  return nil
}
