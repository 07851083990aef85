package common

import (
  "strconv"
  "strings"

  "github.com/hibiken/asynq"
  "github.com/nats-io/nats.go"
)

func asynqRedisOpt() asynq.RedisClientOpt {
  return asynq.RedisClientOpt{
    Addr: GetEnvStringOr("ASYNQ_REDIS_ADDR", "127.0.0.1:6379"),
    DB:   GetEnvInt("ASYNQ_REDIS_DB"),
  }
}

// asynqQueues parses ASYNQ_QUEUE entries of the form "name" or "name,weight".
func asynqQueues(items []string) map[string]int {
  queues := make(map[string]int)
  for _, item := range items {
    data := strings.Split(item, ",")
    name := strings.TrimSpace(data[0])
    if name == "" {
      continue
    }
    weight := 1
    if len(data) > 1 {
      if n, err := strconv.Atoi(strings.TrimSpace(data[1])); err == nil && n > 0 {
        weight = n
      }
    }
    queues[name] = weight
  }
  return queues
}

func NewAsynqServer() *asynq.Server {
  return asynq.NewServer(asynqRedisOpt(), asynq.Config{
    Concurrency: GetEnvInt("ASYNQ_CONCURRENCY"),
    Queues:      asynqQueues(GetEnvArray("ASYNQ_QUEUE")),
  })
}

func NewAsynqClient() *asynq.Client {
  return asynq.NewClient(asynqRedisOpt())
}

func NewNats() *nats.Conn {
  nc, err := nats.Connect(
    GetEnvStringOr("NATS_URL", nats.DefaultURL),
    nats.Token(GetEnvString("NATS_TOKEN")),
    nats.Name("twiderex"),
  )
  if err != nil {
    panic(err)
  }
  return nc
}
