package v1

import (
  "net/http"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/viewmodels"
)

type DirectMessagesHandler struct {
  ApiContext *api.Context
}

func NewDirectMessagesRouter(apiContext *api.Context) http.Handler {
  h := DirectMessagesHandler{
    ApiContext: apiContext,
  }

  r := chi.NewRouter()
  r.Get("/conversations", h.Conversations)
  r.Post("/conversations/refresh", h.Refresh)
  r.Post("/conversations/more", h.More)
  r.Get("/conversations/{key}/events", h.Events)
  r.Post("/conversations/{key}/events/more", h.MoreEvents)

  return r
}

func (h *DirectMessagesHandler) conversations(w http.ResponseWriter, r *http.Request) (*viewmodels.DMConversationViewModel, bool, bool) {
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return nil, false, false
  }
  if _, ok := s.Account.Value().Service.(services.DirectMessageService); !ok {
    serviceError(&api.ResponseHandler{Writer: w}, services.ErrUnsupported)
    return nil, false, false
  }
  sessions := h.ApiContext.Sessions
  vm, created := s.Conversations(func(account *flow.StateFlow[*repositories.AccountDetails]) *viewmodels.DMConversationViewModel {
    return viewmodels.NewDMConversationViewModel(sessions.Cache, account, sessions.Locker)
  })
  return vm, created, true
}

func (h *DirectMessagesHandler) Conversations(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, created, ok := h.conversations(w, r)
  if !ok {
    return
  }
  if created {
    if err := vm.Refresh(r.Context()); err != nil {
      serviceError(response, err)
      return
    }
  }
  response.Json(pagingView(vm.Snapshot(r.Context())))
}

func (h *DirectMessagesHandler) Refresh(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, _, ok := h.conversations(w, r)
  if !ok {
    return
  }
  if err := vm.Refresh(r.Context()); err != nil {
    serviceError(response, err)
    return
  }
  response.Json(pagingView(vm.Snapshot(r.Context())))
}

func (h *DirectMessagesHandler) More(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, _, ok := h.conversations(w, r)
  if !ok {
    return
  }
  if err := vm.LoadMore(r.Context()); err != nil {
    serviceError(response, err)
    return
  }
  response.Json(pagingView(vm.Snapshot(r.Context())))
}

func (h *DirectMessagesHandler) events(w http.ResponseWriter, r *http.Request) (*viewmodels.DMEventViewModel, bool, bool) {
  response := &api.ResponseHandler{Writer: w}
  conversationKey := models.ValueOf(chi.URLParam(r, "key"))
  if conversationKey.ID == "" {
    response.Error(http.StatusBadRequest, 1007, "conversation key is empty")
    return nil, false, false
  }
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return nil, false, false
  }
  service, ok := s.Account.Value().Service.(services.DirectMessageService)
  if !ok {
    serviceError(response, services.ErrUnsupported)
    return nil, false, false
  }
  sessions := h.ApiContext.Sessions
  vm, created := s.DMEvents(conversationKey.String(), func(account *repositories.AccountDetails) *viewmodels.DMEventViewModel {
    return viewmodels.NewDMEventViewModel(sessions.Cache, account, conversationKey, service, sessions.Locker)
  })
  return vm, created, true
}

func (h *DirectMessagesHandler) Events(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, created, ok := h.events(w, r)
  if !ok {
    return
  }
  if created {
    if err := vm.Refresh(r.Context()); err != nil {
      serviceError(response, err)
      return
    }
  }
  response.Json(pagingView(vm.Snapshot()))
}

func (h *DirectMessagesHandler) MoreEvents(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, _, ok := h.events(w, r)
  if !ok {
    return
  }
  if err := vm.LoadMore(r.Context()); err != nil {
    serviceError(response, err)
    return
  }
  response.Json(pagingView(vm.Snapshot()))
}
