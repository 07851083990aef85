package queue

import (
  "log"

  "github.com/hibiken/asynq"
  "github.com/urfave/cli/v2"

  "twiderex.local/twiderex/common"
  asynqQueue "twiderex.local/twiderex/queue/asynq"
)

func NewAsynqCommand() *cli.Command {
  var h *Handler
  return &cli.Command{
    Name:  "asynq",
    Usage: "run compose and timeline refresh jobs",
    Before: func(c *cli.Context) error {
      h = NewHandler()
      return nil
    },
    After: func(c *cli.Context) error {
      h.Close()
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := RunAsynq(h); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

// RunAsynq serves jobs until the handler context ends.
func RunAsynq(h *Handler) error {
  mux := asynq.NewServeMux()
  ansqContext := &common.AnsqServerContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Mux:  mux,
    Nats: h.Nc,
  }
  if err := asynqQueue.NewWorkers(ansqContext).Register(); err != nil {
    return err
  }

  server := common.NewAsynqServer()
  if err := server.Start(mux); err != nil {
    return err
  }
  log.Println("asynq workers running")
  <-h.Ctx.Done()
  server.Shutdown()
  log.Println("asynq workers stopped")
  return nil
}
