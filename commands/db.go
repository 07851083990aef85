package commands

import (
  "log"

  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/models"
)

type DbHandler struct {
  Db    *gorm.DB
  Cache *models.Cache
}

func NewDbCommand() *cli.Command {
  var h DbHandler
  return &cli.Command{
    Name:  "db",
    Usage: "manage the local cache database",
    Before: func(c *cli.Context) error {
      h = DbHandler{
        Db:    common.NewDB(),
        Cache: models.NewCache(),
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "migrate",
        Usage: "create or update every table",
        Action: func(c *cli.Context) error {
          log.Println("migrating cache tables")
          if err := h.Cache.AutoMigrate(h.Db); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "reset",
        Usage: "drop cached timelines, users and messages (accounts and drafts stay)",
        Flags: []cli.Flag{
          &cli.BoolFlag{
            Name:  "yes",
            Usage: "skip the confirmation check",
          },
        },
        Action: func(c *cli.Context) error {
          if !c.Bool("yes") {
            return cli.Exit("refusing to reset without --yes", 1)
          }
          log.Println("resetting cache tables")
          if err := h.Cache.Reset(h.Db); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}
