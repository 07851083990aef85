package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
)

type NotificationsHandler struct {
  ApiContext *api.Context
}

func NewNotificationsRouter(apiContext *api.Context) http.Handler {
  h := NotificationsHandler{
    ApiContext: apiContext,
  }

  r := chi.NewRouter()
  r.Get("/latest", h.Latest)
  return r
}

// Latest returns the most recent in-app notification, or null.
func (h *NotificationsHandler) Latest(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  response.Json(h.ApiContext.Notification.Source().Value())
}
