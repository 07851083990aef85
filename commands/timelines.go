package commands

import (
  "context"
  "fmt"
  "log"

  "github.com/go-redis/redis/v8"
  "github.com/hibiken/asynq"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/tasks"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

type TimelinesHandler struct {
  Db    *gorm.DB
  Rdb   *redis.Client
  Ctx   context.Context
  Cache *repositories.CacheRepository
}

func NewTimelinesCommand() *cli.Command {
  var h TimelinesHandler
  return &cli.Command{
    Name:  "timelines",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = TimelinesHandler{
        Db:  common.NewDB(),
        Rdb: common.NewRedis(),
        Ctx: context.Background(),
      }
      h.Cache = &repositories.CacheRepository{
        Db: h.Db,
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "refresh",
        Usage: "queue a refresh of every account's home and mentions",
        Action: func(c *cli.Context) error {
          if err := h.Refresh(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "list",
        Usage: "",
        Flags: []cli.Flag{
          &cli.StringFlag{
            Name:     "account",
            Usage:    "account key, id@host",
            Required: true,
          },
          &cli.StringFlag{
            Name:  "kind",
            Value: config.PAGING_KEY_HOME,
          },
          &cli.IntFlag{
            Name:  "limit",
            Value: config.DEFAULT_LOAD_COUNT,
          },
        },
        Action: func(c *cli.Context) error {
          if err := h.List(c); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *TimelinesHandler) Refresh() error {
  client := common.NewAsynqClient()
  defer client.Close()
  return h.refresh(client)
}

func (h *TimelinesHandler) refresh(client *asynq.Client) error {
  return tasks.NewTimelinesTask(&common.AnsqClientContext{
    Db:   h.Db,
    Rdb:  h.Rdb,
    Ctx:  h.Ctx,
    Conn: client,
  }).Refresh()
}

// List prints what the cache holds for a timeline, newest first.
func (h *TimelinesHandler) List(c *cli.Context) error {
  accountKey := models.ValueOf(c.String("account"))
  items, err := h.Cache.TimelineItems(h.Ctx, accountKey, c.String("kind"), 0, c.Int("limit"))
  if err != nil {
    return err
  }
  log.Println("timeline items:", len(items))
  for _, item := range transform.TimelineItemsToUi(items, nil) {
    if gap, ok := item.(*ui.Gap); ok {
      fmt.Printf("---- gap %v..%v ----\n", gap.SinceID, gap.MaxID)
      continue
    }
    status := ui.StatusOf(item)
    if status == nil {
      continue
    }
    base := status.Base()
    fmt.Printf(
      "[%v] @%v %v\n  %v\n",
      ui.HumanizedTimestamp(base.Timestamp),
      base.User.ScreenName,
      base.StatusKey.String(),
      base.Content,
    )
  }
  return nil
}
