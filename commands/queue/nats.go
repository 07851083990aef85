package queue

import (
  "log"

  "github.com/urfave/cli/v2"
  "golang.org/x/sync/errgroup"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/queue/nats"
)

func NewNatsCommand() *cli.Command {
  var h *Handler
  return &cli.Command{
    Name:  "nats",
    Usage: "run notification and cache event subscribers",
    Before: func(c *cli.Context) error {
      h = NewHandler()
      return nil
    },
    After: func(c *cli.Context) error {
      h.Close()
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := RunNats(h); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

// RunNats keeps the subscriptions alive until the handler context ends.
func RunNats(h *Handler) error {
  natsContext := &common.NatsContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Conn: h.Nc,
  }
  if err := nats.NewWorkers(natsContext).Subscribe(); err != nil {
    return err
  }
  log.Println("nats workers running")
  <-h.Ctx.Done()
  log.Println("nats workers stopped")
  return nil
}

func NewAllCommand() *cli.Command {
  var h *Handler
  return &cli.Command{
    Name:  "all",
    Usage: "run asynq and nats workers in one process",
    Before: func(c *cli.Context) error {
      h = NewHandler()
      return nil
    },
    After: func(c *cli.Context) error {
      h.Close()
      return nil
    },
    Action: func(c *cli.Context) error {
      var g errgroup.Group
      g.Go(func() error {
        defer h.cancel()
        return RunAsynq(h)
      })
      g.Go(func() error {
        defer h.cancel()
        return RunNats(h)
      })
      if err := g.Wait(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}
