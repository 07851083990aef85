package common

import (
  "context"
  "log"
  "time"

  "github.com/go-redis/redis/v8"
  "github.com/rs/xid"
)

var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func NewRedis() *redis.Client {
  return redis.NewClient(&redis.Options{
    Addr:     GetEnvStringOr("REDIS_HOST", "127.0.0.1:6379"),
    Password: GetEnvString("REDIS_PASSWORD"),
    DB:       GetEnvInt("REDIS_DB"),
  })
}

// Mutex is a single-holder redis lock. The value is a per-holder xid so only
// the holder can release it.
type Mutex struct {
  rdb   *redis.Client
  ctx   context.Context
  key   string
  value string
}

func NewMutex(
  rdb *redis.Client,
  ctx context.Context,
  key string,
) *Mutex {
  return &Mutex{
    rdb:   rdb,
    ctx:   ctx,
    key:   key,
    value: xid.New().String(),
  }
}

// TryLock reports false with a nil error when another holder has the key.
func (m *Mutex) TryLock(ttl time.Duration) (bool, error) {
  return m.rdb.SetNX(m.ctx, m.key, m.value, ttl).Result()
}

func (m *Mutex) Lock(ttl time.Duration) bool {
  ok, err := m.TryLock(ttl)
  if err != nil {
    log.Println("mutex lock error:", m.key, err)
    return false
  }
  return ok
}

func (m *Mutex) Unlock() {
  // the holder context may already be cancelled
  ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
  defer cancel()
  if err := unlockScript.Run(ctx, m.rdb, []string{m.key}, m.value).Err(); err != nil {
    log.Println("mutex unlock error:", m.key, err)
  }
}

// RedisLocker hands out Mutex locks keyed by paging key.
type RedisLocker struct {
  Rdb *redis.Client
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
  mutex := NewMutex(l.Rdb, ctx, key)
  ok, err := mutex.TryLock(ttl)
  if err != nil || !ok {
    return nil, false, err
  }
  return mutex.Unlock, true, nil
}
