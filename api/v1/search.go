package v1

import (
  "net/http"
  "strings"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/viewmodels"
)

type SearchHandler struct {
  ApiContext *api.Context
}

func NewSearchRouter(apiContext *api.Context) http.Handler {
  h := SearchHandler{
    ApiContext: apiContext,
  }

  r := chi.NewRouter()
  r.Get("/users", h.Users)
  r.Post("/users/more", h.MoreUsers)
  r.Get("/statuses", h.Statuses)
  r.Post("/statuses/more", h.MoreStatuses)
  r.Get("/media", h.Media)
  r.Post("/media/more", h.MoreMedia)

  return r
}

func searchKeyword(w http.ResponseWriter, r *http.Request) (string, bool) {
  keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
  if keyword == "" {
    (&api.ResponseHandler{Writer: w}).Error(http.StatusBadRequest, 1007, "keyword is empty")
    return "", false
  }
  return keyword, true
}

func (h *SearchHandler) users(w http.ResponseWriter, r *http.Request) (*viewmodels.SearchUserViewModel, bool, bool) {
  response := &api.ResponseHandler{Writer: w}
  keyword, ok := searchKeyword(w, r)
  if !ok {
    return nil, false, false
  }
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return nil, false, false
  }
  service, ok := s.Account.Value().Service.(services.SearchService)
  if !ok {
    serviceError(response, services.ErrUnsupported)
    return nil, false, false
  }
  vm, created := s.SearchUser(keyword, func(*repositories.AccountDetails) *viewmodels.SearchUserViewModel {
    return viewmodels.NewSearchUserViewModel(service, keyword)
  })
  return vm, created, true
}

func (h *SearchHandler) Users(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, created, ok := h.users(w, r)
  if !ok {
    return
  }
  if created {
    vm.Refresh(r.Context())
  }
  response.Json(pagingView(vm.Source().Value()))
}

func (h *SearchHandler) MoreUsers(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  vm, _, ok := h.users(w, r)
  if !ok {
    return
  }
  if err := vm.LoadMore(r.Context()); err != nil {
    serviceError(response, err)
    return
  }
  response.Json(pagingView(vm.Source().Value()))
}

type statusListOpener func(s *api.Session, keyword string) (*viewmodels.StatusListViewModel, bool)

func (h *SearchHandler) statuses(s *api.Session, keyword string) (*viewmodels.StatusListViewModel, bool) {
  sessions := h.ApiContext.Sessions
  return s.SearchStatuses(keyword, func(account *repositories.AccountDetails) *viewmodels.StatusListViewModel {
    return viewmodels.NewSearchStatusViewModel(sessions.Cache, account, keyword, sessions.Locker, h.ApiContext.Notification)
  })
}

func (h *SearchHandler) media(s *api.Session, keyword string) (*viewmodels.StatusListViewModel, bool) {
  sessions := h.ApiContext.Sessions
  return s.SearchMedia(keyword, func(account *repositories.AccountDetails) *viewmodels.StatusListViewModel {
    return viewmodels.NewSearchMediaViewModel(sessions.Cache, account, keyword, sessions.Locker, h.ApiContext.Notification)
  })
}

// showStatuses refreshes a search the first time its keyword is opened and
// otherwise returns what is loaded.
func (h *SearchHandler) showStatuses(w http.ResponseWriter, r *http.Request, open statusListOpener, more bool) {
  response := &api.ResponseHandler{Writer: w}
  keyword, ok := searchKeyword(w, r)
  if !ok {
    return
  }
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return
  }
  vm, created := open(s, keyword)
  var err error
  switch {
  case created:
    err = vm.Refresh(r.Context())
  case more:
    err = vm.LoadMore(r.Context())
  }
  if err != nil {
    serviceError(response, err)
    return
  }
  response.Json(timelineView(vm.Snapshot()))
}

func (h *SearchHandler) Statuses(w http.ResponseWriter, r *http.Request) {
  h.showStatuses(w, r, h.statuses, false)
}

func (h *SearchHandler) MoreStatuses(w http.ResponseWriter, r *http.Request) {
  h.showStatuses(w, r, h.statuses, true)
}

func (h *SearchHandler) Media(w http.ResponseWriter, r *http.Request) {
  h.showStatuses(w, r, h.media, false)
}

func (h *SearchHandler) MoreMedia(w http.ResponseWriter, r *http.Request) {
  h.showStatuses(w, r, h.media, true)
}
