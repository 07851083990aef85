package commands

import (
  "context"
  "fmt"
  "log"
  "os"
  "os/signal"
  "syscall"
  "time"

  "github.com/robfig/cron/v3"
  "github.com/urfave/cli/v2"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/tasks"
)

type CronHandler struct {
  AnsqContext *common.AnsqClientContext
}

func NewCronCommand() *cli.Command {
  var h CronHandler
  return &cli.Command{
    Name:  "cron",
    Usage: "enqueue periodic timeline refreshes",
    Flags: []cli.Flag{
      &cli.DurationFlag{
        Name:  "interval",
        Usage: "time between refreshes",
        Value: timelinesInterval(),
      },
      &cli.BoolFlag{
        Name:  "now",
        Usage: "enqueue one refresh right away",
      },
    },
    Before: func(c *cli.Context) error {
      h = CronHandler{
        AnsqContext: &common.AnsqClientContext{
          Db:   common.NewDB(),
          Rdb:  common.NewRedis(),
          Ctx:  context.Background(),
          Conn: common.NewAsynqClient(),
        },
      }
      return nil
    },
    After: func(c *cli.Context) error {
      return h.AnsqContext.Conn.Close()
    },
    Action: func(c *cli.Context) error {
      if err := h.run(c.Duration("interval"), c.Bool("now")); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func timelinesInterval() time.Duration {
  interval, err := time.ParseDuration(common.GetEnvStringOr("TWIDEREX_TIMELINES_INTERVAL", "5m"))
  if err != nil || interval <= 0 {
    return 5 * time.Minute
  }
  return interval
}

func (h *CronHandler) run(interval time.Duration, now bool) error {
  ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
  defer stop()

  timelines := tasks.NewTimelinesTask(h.AnsqContext)
  timelines.Interval = interval
  refresh := func() {
    if err := timelines.Refresh(); err != nil {
      log.Println("timelines refresh error:", err)
    }
  }

  c := cron.New()
  if _, err := c.AddFunc(fmt.Sprintf("@every %v", interval), refresh); err != nil {
    return err
  }
  if now {
    refresh()
  }
  c.Start()
  log.Println("cron running...", interval)

  <-ctx.Done()
  <-c.Stop().Done()
  log.Println("cron stopped")
  return nil
}
