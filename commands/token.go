package commands

import (
  "fmt"
  "log"
  "time"

  "github.com/urfave/cli/v2"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  jwtRepositories "twiderex.local/twiderex/repositories/jwt"
)

type TokenHandler struct {
  AccountsRepository *repositories.AccountsRepository
  Repository         *jwtRepositories.TokenRepository
}

func NewTokenCommand() *cli.Command {
  var h TokenHandler
  return &cli.Command{
    Name:  "token",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = TokenHandler{}
      h.AccountsRepository = &repositories.AccountsRepository{
        Db:     common.NewDB(),
        Secret: common.GetEnvString("TWIDEREX_SECRET"),
      }
      h.Repository = &jwtRepositories.TokenRepository{
        Secret: common.GetEnvString("TWIDEREX_SECRET"),
      }
      return nil
    },
    Subcommands: []*cli.Command{
      {
        Name:  "issue",
        Usage: "",
        Flags: []cli.Flag{
          &cli.StringFlag{
            Name:     "account",
            Usage:    "account key, id@host",
            Required: true,
          },
          &cli.IntFlag{
            Name:  "ttl",
            Usage: "seconds the token stays valid",
            Value: config.TOKEN_TTL,
          },
        },
        Action: func(c *cli.Context) error {
          if err := h.Issue(c); err != nil {
            return cli.Exit(err.Error(), 1)
          }
          return nil
        },
      },
    },
  }
}

func (h *TokenHandler) Issue(c *cli.Context) error {
  log.Println("token issuing...")
  accountKey := models.ValueOf(c.String("account"))
  if _, err := h.AccountsRepository.Find(c.Context, accountKey); err != nil {
    return fmt.Errorf("account %v: %w", accountKey.String(), err)
  }
  token, err := h.Repository.AccessToken(accountKey.String(), time.Duration(c.Int("ttl"))*time.Second)
  if err != nil {
    return err
  }
  fmt.Println(token)
  return nil
}
