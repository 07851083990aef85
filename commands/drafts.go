package commands

import (
  "context"
  "fmt"

  "github.com/urfave/cli/v2"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/ui"
)

type DraftsHandler struct {
  Ctx        context.Context
  Repository *repositories.DraftsRepository
}

func NewDraftsCommand() *cli.Command {
  var h DraftsHandler
  return &cli.Command{
    Name:  "drafts",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = DraftsHandler{
        Ctx: context.Background(),
      }
      h.Repository = &repositories.DraftsRepository{
        Db:   common.NewDB(),
        Rdb:  common.NewRedis(),
        Nats: common.NewNats(),
      }
      return nil
    },
    After: func(c *cli.Context) error {
      if h.Repository != nil && h.Repository.Nats != nil {
        h.Repository.Nats.Close()
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "list",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.List(); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:      "delete",
        Usage:     "",
        ArgsUsage: "<draft id>",
        Action: func(c *cli.Context) error {
          if err := h.Delete(c); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *DraftsHandler) List() error {
  drafts, err := h.Repository.Listings(h.Ctx)
  if err != nil {
    return err
  }
  fmt.Printf("%v drafts\n", h.Repository.Count(h.Ctx))
  for _, draft := range drafts {
    fmt.Printf(
      "%v\t%v\t%v\t%v media\n  %v\n",
      draft.DraftID,
      ui.HumanizedTimestamp(draft.CreatedAt),
      draft.ComposeType.String(),
      len(draft.Media),
      draft.Content,
    )
  }
  return nil
}

func (h *DraftsHandler) Delete(c *cli.Context) error {
  if c.NArg() < 1 {
    return fmt.Errorf("draft id is required")
  }
  return h.Repository.Delete(h.Ctx, c.Args().First())
}
