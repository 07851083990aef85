package main

import (
  "log"
  "os"
  "path/filepath"

  "github.com/joho/godotenv"
  "github.com/urfave/cli/v2"

  "twiderex.local/twiderex/commands"
)

// loadEnv reads the first .env found next to the binary or in the working
// directory. Variables already set in the environment win.
func loadEnv() {
  candidates := []string{filepath.Join(filepath.Dir(os.Args[0]), ".env")}
  if dir, err := os.Getwd(); err == nil {
    candidates = append(candidates, filepath.Join(dir, ".env"))
  }
  for _, file := range candidates {
    if err := godotenv.Load(file); err == nil {
      return
    }
  }
  log.Println("no .env file, using the environment")
}

func main() {
  loadEnv()

  app := &cli.App{
    Name:    "twiderex",
    Usage:   "headless microblog client",
    Version: "0.1.0",
    Commands: []*cli.Command{
      commands.NewDbCommand(),
      commands.NewAccountsCommand(),
      commands.NewTokenCommand(),
      commands.NewTimelinesCommand(),
      commands.NewDraftsCommand(),
      commands.NewApiCommand(),
      commands.NewQueueCommand(),
      commands.NewCronCommand(),
    },
  }

  if err := app.Run(os.Args); err != nil {
    log.Fatalln("error", err)
  }
}
