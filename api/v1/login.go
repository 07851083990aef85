package v1

import (
  "net/http"
  "time"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
)

type LoginHandler struct {
  ApiContext         *api.Context
  Response           *api.ResponseHandler
  AccountsRepository *repositories.AccountsRepository
}

type Token struct {
  AccessToken string `json:"access_token"`
  AccountKey  string `json:"account_key"`
  ExpiresIn   int64  `json:"expires_in"`
}

func NewLoginRouter(apiContext *api.Context) http.Handler {
  h := LoginHandler{
    ApiContext: apiContext,
  }
  h.AccountsRepository = h.ApiContext.Sessions.Accounts

  r := chi.NewRouter()
  r.Post("/", h.Do)

  return r
}

// Do signs an account in with a platform access token and answers with the
// bearer token for the rest of the API.
func (h *LoginHandler) Do(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  r.ParseMultipartForm(1024)

  if r.Form.Get("platform") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "platform is empty")
    return
  }

  if r.Form.Get("access_token") == "" {
    h.Response.Error(http.StatusForbidden, 1004, "access token is empty")
    return
  }

  platform, err := models.ParsePlatformType(r.Form.Get("platform"))
  if err != nil {
    h.Response.Error(http.StatusForbidden, 1004, err.Error())
    return
  }
  host := r.Form.Get("host")
  if host == "" && platform == models.PlatformTwitter {
    host = config.TWITTER_HOST
  }
  if host == "" {
    h.Response.Error(http.StatusForbidden, 1004, "host is empty")
    return
  }

  account, err := h.AccountsRepository.Add(r.Context(), platform, host, r.Form.Get("access_token"))
  if err != nil {
    serviceError(h.Response, err)
    return
  }

  ttl := time.Duration(config.TOKEN_TTL) * time.Second
  accessToken, err := h.ApiContext.Tokens.AccessToken(account.AccountKey.String(), ttl)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 500, "server error")
    return
  }

  h.Response.Json(&Token{
    AccessToken: accessToken,
    AccountKey:  account.AccountKey.String(),
    ExpiresIn:   config.TOKEN_TTL,
  })
}
