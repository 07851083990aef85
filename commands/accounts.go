package commands

import (
  "fmt"
  "log"

  "github.com/urfave/cli/v2"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
)

type AccountsHandler struct {
  Repository *repositories.AccountsRepository
}

func NewAccountsCommand() *cli.Command {
  var h AccountsHandler
  return &cli.Command{
    Name:  "accounts",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = AccountsHandler{}
      h.Repository = &repositories.AccountsRepository{
        Db:     common.NewDB(),
        Secret: common.GetEnvString("TWIDEREX_SECRET"),
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "add",
        Usage: "",
        Flags: []cli.Flag{
          &cli.StringFlag{
            Name:     "platform",
            Usage:    "twitter or mastodon",
            Required: true,
          },
          &cli.StringFlag{
            Name:  "host",
            Usage: "instance host, twitter.com for twitter",
          },
          &cli.StringFlag{
            Name:     "token",
            Usage:    "access token of the account",
            Required: true,
          },
        },
        Action: func(c *cli.Context) error {
          if err := h.Add(c); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:  "list",
        Usage: "",
        Action: func(c *cli.Context) error {
          if err := h.List(c); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:      "activate",
        Usage:     "",
        ArgsUsage: "<account key>",
        Action: func(c *cli.Context) error {
          if err := h.Activate(c); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
      {
        Name:      "delete",
        Usage:     "",
        ArgsUsage: "<account key>",
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

func (h *AccountsHandler) Add(c *cli.Context) error {
  platform, err := models.ParsePlatformType(c.String("platform"))
  if err != nil {
    return err
  }
  host := c.String("host")
  if host == "" && platform == models.PlatformTwitter {
    host = config.TWITTER_HOST
  }
  if host == "" {
    return fmt.Errorf("host is required for %v", platform.String())
  }
  account, err := h.Repository.Add(c.Context, platform, host, c.String("token"))
  if err != nil {
    return err
  }
  log.Println("account added:", account.AccountKey.String(), account.ScreenName)
  return nil
}

func (h *AccountsHandler) List(c *cli.Context) error {
  accounts, err := h.Repository.Listings(c.Context)
  if err != nil {
    return err
  }
  active, _ := h.Repository.Active(c.Context)
  for _, account := range accounts {
    marker := " "
    if active != nil && active.AccountKey == account.AccountKey {
      marker = "*"
    }
    fmt.Printf("%v %v\t%v\t@%v\n", marker, account.AccountKey.String(), account.Type.String(), account.ScreenName)
  }
  return nil
}

func (h *AccountsHandler) Activate(c *cli.Context) error {
  if c.NArg() < 1 {
    return fmt.Errorf("account key is required")
  }
  return h.Repository.Activate(c.Context, models.ValueOf(c.Args().First()))
}

func (h *AccountsHandler) Delete(c *cli.Context) error {
  if c.NArg() < 1 {
    return fmt.Errorf("account key is required")
  }
  return h.Repository.Delete(c.Context, models.ValueOf(c.Args().First()))
}
