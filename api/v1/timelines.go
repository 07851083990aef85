package v1

import (
  "encoding/json"
  "net/http"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/ui"
  "twiderex.local/twiderex/viewmodels"
)

type TimelinesHandler struct {
  ApiContext *api.Context
}

func NewTimelinesRouter(apiContext *api.Context) http.Handler {
  h := TimelinesHandler{
    ApiContext: apiContext,
  }

  r := chi.NewRouter()
  r.Get("/{kind}", h.Show)
  r.Post("/{kind}/refresh", h.Refresh)
  r.Post("/{kind}/more", h.More)
  r.Post("/{kind}/gaps", h.Gap)

  return r
}

func (h *TimelinesHandler) timeline(w http.ResponseWriter, r *http.Request) (*viewmodels.TimelineViewModel, bool, bool) {
  response := &api.ResponseHandler{Writer: w}
  kind, err := viewmodels.ParseTimelineKind(chi.URLParam(r, "kind"))
  if err != nil {
    response.Error(http.StatusNotFound, 1006, err.Error())
    return nil, false, false
  }
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return nil, false, false
  }
  sessions := h.ApiContext.Sessions
  vm, created := s.Timeline(kind, func(account *repositories.AccountDetails) *viewmodels.TimelineViewModel {
    return viewmodels.NewTimelineViewModel(kind, sessions.Cache, account, sessions.Locker, h.ApiContext.Notification)
  })
  return vm, created, true
}

// Show returns the cached page, loading it the first time the timeline is
// opened in this session.
func (h *TimelinesHandler) Show(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, created, ok := h.timeline(w, r)
  if !ok {
    return
  }
  if created {
    vm.Refresh(r.Context())
  } else {
    vm.Reload(r.Context())
  }
  response.Json(timelineView(vm.Snapshot()))
}

func (h *TimelinesHandler) Refresh(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, _, ok := h.timeline(w, r)
  if !ok {
    return
  }
  if err := vm.Refresh(r.Context()); err != nil {
    serviceError(response, err)
    return
  }
  response.Json(timelineView(vm.Snapshot()))
}

func (h *TimelinesHandler) More(w http.ResponseWriter, r *http.Request) {
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

func (h *TimelinesHandler) Gap(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  var gap ui.Gap
  if err := json.NewDecoder(r.Body).Decode(&gap); err != nil || gap.MaxID == "" || gap.SinceID == "" {
    response.Error(http.StatusBadRequest, 1007, "max_id and since_id are required")
    return
  }
  vm, _, ok := h.timeline(w, r)
  if !ok {
    return
  }
  if err := vm.LoadGap(r.Context(), gap); err != nil {
    serviceError(response, err)
    return
  }
  response.Json(timelineView(vm.Snapshot()))
}
