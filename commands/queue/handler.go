package queue

import (
  "context"
  "os"
  "os/signal"
  "syscall"

  "github.com/go-redis/redis/v8"
  "github.com/nats-io/nats.go"
  "gorm.io/gorm"

  "twiderex.local/twiderex/common"
)

// Handler owns the connections shared by the asynq and nats workers. Ctx is
// cancelled on SIGINT or SIGTERM.
type Handler struct {
  Db     *gorm.DB
  Rdb    *redis.Client
  Nc     *nats.Conn
  Ctx    context.Context
  cancel context.CancelFunc
}

func NewHandler() *Handler {
  ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
  return &Handler{
    Db:     common.NewDB(),
    Rdb:    common.NewRedis(),
    Nc:     common.NewNats(),
    Ctx:    ctx,
    cancel: cancel,
  }
}

func (h *Handler) Close() {
  h.cancel()
  h.Nc.Drain()
  h.Rdb.Close()
}
