package commands

import (
  "context"
  "encoding/json"
  "fmt"
  "log"
  "net/http"
  "os"
  "strings"

  "github.com/go-chi/chi/v5"
  "github.com/go-chi/cors"
  "github.com/go-redis/redis/v8"
  "github.com/hibiken/asynq"
  "github.com/nats-io/nats.go"
  "github.com/urfave/cli/v2"
  "gorm.io/gorm"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/api/v1"
  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/location"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/preferences"
  "twiderex.local/twiderex/repositories"
  jwtRepositories "twiderex.local/twiderex/repositories/jwt"
)

type ApiHandler struct {
  Db    *gorm.DB
  Rdb   *redis.Client
  Ctx   context.Context
  Nats  *nats.Conn
  Asynq *asynq.Client
}

func NewApiCommand() *cli.Command {
  var h ApiHandler
  return &cli.Command{
    Name:  "api",
    Usage: "",
    Before: func(c *cli.Context) error {
      h = ApiHandler{
        Db:    common.NewDB(),
        Rdb:   common.NewRedis(),
        Ctx:   context.Background(),
        Nats:  common.NewNats(),
        Asynq: common.NewAsynqClient(),
      }
      return nil
    },
    Action: func(c *cli.Context) error {
      if err := h.Run(); err != nil {
        return cli.Exit(err.Error(), 1)
      }
      return nil
    },
  }
}

func (h *ApiHandler) Run() error {
  log.Println("api running...")

  defer h.Nats.Close()
  defer h.Asynq.Close()

  apiContext, err := h.context()
  if err != nil {
    return err
  }
  defer apiContext.Sessions.Close()

  if err := h.subscribe(apiContext); err != nil {
    return err
  }

  r := chi.NewRouter()
  r.Use(cors.Handler(cors.Options{
    AllowedOrigins: strings.Split(common.GetEnvStringOr("TWIDEREX_API_ORIGINS", "http://localhost:*"), ","),
    AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
    AllowedHeaders: []string{"Authorization", "Content-Type"},
    MaxAge:         300,
  }))
  r.Route("/v1", func(r chi.Router) {
    r.Mount("/login", v1.NewLoginRouter(apiContext))
    r.Group(func(r chi.Router) {
      r.Use(api.Authenticator(apiContext.Tokens))
      r.Mount("/accounts", v1.NewAccountsRouter(apiContext))
      r.Mount("/timelines", v1.NewTimelinesRouter(apiContext))
      r.Mount("/search", v1.NewSearchRouter(apiContext))
      r.Mount("/users", v1.NewUsersRouter(apiContext))
      r.Mount("/dm", v1.NewDirectMessagesRouter(apiContext))
      r.Mount("/drafts", v1.NewDraftsRouter(apiContext))
      r.Mount("/compose", v1.NewComposeRouter(apiContext))
      r.Mount("/settings", v1.NewSettingsRouter(apiContext))
      r.Mount("/notifications", v1.NewNotificationsRouter(apiContext))
    })
  })

  err = http.ListenAndServe(
    fmt.Sprintf("127.0.0.1:%v", os.Getenv("TWIDEREX_API_PORT")),
    r,
  )
  if err != nil {
    return err
  }

  return nil
}

func (h *ApiHandler) context() (*api.Context, error) {
  holder, err := preferences.NewHolder(common.GetEnvString("TWIDEREX_PREFERENCES"))
  if err != nil {
    return nil, err
  }
  var fixed *location.Location
  if value := common.GetEnvString("TWIDEREX_LOCATION"); value != "" {
    if fixed, err = location.Parse(value); err != nil {
      return nil, err
    }
  }

  base := &common.ApiContext{
    Db:    h.Db,
    Rdb:   h.Rdb,
    Ctx:   h.Ctx,
    Nats:  h.Nats,
    Asynq: h.Asynq,
  }
  secret := common.GetEnvString("TWIDEREX_SECRET")
  return &api.Context{
    ApiContext: base,
    Sessions:   api.NewSessions(base, secret),
    Drafts: &repositories.DraftsRepository{
      Db:   h.Db,
      Rdb:  h.Rdb,
      Nats: h.Nats,
    },
    Preferences:  holder,
    Notification: actions.NewInAppNotification(h.Nats),
    Location:     location.NewStaticProvider(fixed),
    Tokens: &jwtRepositories.TokenRepository{
      Secret: secret,
    },
  }, nil
}

// subscribe keeps open sessions in step with what the queue workers write.
func (h *ApiHandler) subscribe(apiContext *api.Context) error {
  _, err := h.Nats.Subscribe(config.NATS_DRAFTS_CHANGED, func(m *nats.Msg) {
    apiContext.Drafts.Refresh(h.Ctx)
  })
  if err != nil {
    return err
  }
  _, err = h.Nats.Subscribe(config.NATS_STATUSES_CACHED, func(m *nats.Msg) {
    var cached models.TimelineCached
    if err := json.Unmarshal(m.Data, &cached); err != nil {
      log.Println("timelines cached payload error:", err)
      return
    }
    apiContext.Sessions.Each(func(accountKey string, session *api.Session) {
      if accountKey != cached.AccountKey.String() {
        return
      }
      for _, vm := range session.Timelines() {
        if err := vm.Reload(h.Ctx); err != nil {
          log.Println("timeline reload error:", accountKey, err)
        }
      }
    })
  })
  return err
}
