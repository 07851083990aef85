package commands

import (
  "github.com/urfave/cli/v2"

  "twiderex.local/twiderex/commands/queue"
)

func NewQueueCommand() *cli.Command {
  return &cli.Command{
    Name:  "queue",
    Usage: "background workers",
    Subcommands: []*cli.Command{
      queue.NewAsynqCommand(),
      queue.NewNatsCommand(),
      queue.NewAllCommand(),
    },
  }
}
