package common

import (
  "context"
  "sync"

  "github.com/go-redis/redis/v8"
  "github.com/hibiken/asynq"
  "github.com/nats-io/nats.go"
  "gorm.io/gorm"
)

// ApiContext is shared by every /v1 router. Mux serializes writes that must
// not interleave across requests (login, draft edits).
type ApiContext struct {
  Db    *gorm.DB
  Rdb   *redis.Client
  Ctx   context.Context
  Nats  *nats.Conn
  Asynq *asynq.Client
  Mux   sync.Mutex
}

type NatsContext struct {
  Db   *gorm.DB
  Rdb  *redis.Client
  Ctx  context.Context
  Conn *nats.Conn
}

type AnsqServerContext struct {
  Db   *gorm.DB
  Rdb  *redis.Client
  Ctx  context.Context
  Mux  *asynq.ServeMux
  Nats *nats.Conn
}

type AnsqClientContext struct {
  Db   *gorm.DB
  Rdb  *redis.Client
  Ctx  context.Context
  Conn *asynq.Client
  Nats *nats.Conn
}
