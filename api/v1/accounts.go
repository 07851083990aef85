package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
)

type AccountsHandler struct {
  ApiContext *api.Context
}

func NewAccountsRouter(apiContext *api.Context) http.Handler {
  h := AccountsHandler{
    ApiContext: apiContext,
  }

  r := chi.NewRouter()
  r.Get("/me", h.Me)
  r.Delete("/me", h.Logout)
  return r
}

func (h *AccountsHandler) Me(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return
  }
  account := s.Account.Value()
  response.Json(map[string]interface{}{
    "account_key": account.AccountKey.String(),
    "platform":    account.Type.String(),
    "host":        account.Host,
    "user":        account.User,
  })
}

// Logout removes the account together with its session.
func (h *AccountsHandler) Logout(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  accountKey, ok := api.AccountKey(r.Context())
  if !ok {
    response.Error(http.StatusUnauthorized, 1001, "token is empty")
    return
  }
  h.ApiContext.Sessions.Remove(accountKey)
  if err := h.ApiContext.Sessions.Accounts.Delete(r.Context(), accountKey); err != nil {
    response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }
  response.Json(map[string]bool{
    "deleted": true,
  })
}
