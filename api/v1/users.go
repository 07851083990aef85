package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/viewmodels"
)

type UsersHandler struct {
  ApiContext *api.Context
}

func NewUsersRouter(apiContext *api.Context) http.Handler {
  h := UsersHandler{
    ApiContext: apiContext,
  }

  r := chi.NewRouter()
  r.Get("/{key}/timeline", h.Timeline)
  r.Post("/{key}/timeline/more", h.MoreTimeline)

  return r
}

func (h *UsersHandler) timeline(w http.ResponseWriter, r *http.Request) (*viewmodels.StatusListViewModel, bool, bool) {
  response := &api.ResponseHandler{Writer: w}
  userKey := models.ValueOf(chi.URLParam(r, "key"))
  if userKey.ID == "" {
    response.Error(http.StatusBadRequest, 1007, "user key is empty")
    return nil, false, false
  }
  excludeReplies := r.URL.Query().Get("exclude_replies") == "true"
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return nil, false, false
  }
  sessions := h.ApiContext.Sessions
  screenKey := userKey.String()
  if excludeReplies {
    screenKey += ":exclude_replies"
  }
  vm, created := s.UserTimeline(screenKey, func(account *repositories.AccountDetails) *viewmodels.StatusListViewModel {
    return viewmodels.NewUserTimelineViewModel(sessions.Cache, account, userKey, excludeReplies, sessions.Locker, h.ApiContext.Notification)
  })
  return vm, created, true
}

func (h *UsersHandler) Timeline(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, created, ok := h.timeline(w, r)
  if !ok {
    return
  }
  if created {
    if err := vm.Refresh(r.Context()); err != nil {
      serviceError(response, err)
      return
    }
  }
  response.Json(timelineView(vm.Snapshot()))
}

func (h *UsersHandler) MoreTimeline(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, _, ok := h.timeline(w, r)
  if !ok {
    return
  }
  if err := vm.LoadMore(r.Context()); err != nil {
    serviceError(response, err)
    return
  }
  response.Json(timelineView(vm.Snapshot()))
}
