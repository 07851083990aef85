package v1

import (
  "encoding/json"
  "errors"
  "net/http"
  "strconv"

  "github.com/go-chi/chi/v5"
  "gorm.io/gorm"

  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/viewmodels"
)

type DraftsHandler struct {
  ApiContext *api.Context
  Response   *api.ResponseHandler
  Repository *repositories.DraftsRepository
}

func NewDraftsRouter(apiContext *api.Context) http.Handler {
  h := DraftsHandler{
    ApiContext: apiContext,
  }
  h.Repository = h.ApiContext.Drafts

  r := chi.NewRouter()
  r.Get("/", h.Listings)
  r.Post("/", h.Save)
  r.Get("/{id}", h.Show)
  r.Delete("/{id}", h.Delete)
  r.Post("/{id}/send", h.Send)
  return r
}

func (h *DraftsHandler) Listings(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  var current int
  if !r.URL.Query().Has("current") {
    current = 1
  } else {
    current, _ = strconv.Atoi(r.URL.Query().Get("current"))
  }
  if current < 1 {
    h.Response.Error(http.StatusForbidden, 1004, "current not valid")
    return
  }

  var pageSize int
  if !r.URL.Query().Has("page_size") {
    pageSize = 20
  } else {
    pageSize, _ = strconv.Atoi(r.URL.Query().Get("page_size"))
  }
  if pageSize < 1 || pageSize > 100 {
    h.Response.Error(http.StatusForbidden, 1004, "page size not valid")
    return
  }

  total := h.Repository.Count(r.Context())
  drafts, err := h.Repository.Paginate(r.Context(), current, pageSize)
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }

  h.Response.Pagenate(drafts, total, current, pageSize)
}

func (h *DraftsHandler) Show(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  draft, err := h.Repository.Get(r.Context(), chi.URLParam(r, "id"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1010, "draft not found")
    return
  }
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }

  h.Response.Json(draft)
}

// Save stores the compose body as a draft of the signed in account.
func (h *DraftsHandler) Save(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  var body ComposeBody
  if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
    h.Response.Error(http.StatusBadRequest, 1007, "request body not valid")
    return
  }
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return
  }
  vm, err := body.viewModel(composeDependencies(h.ApiContext, s))
  if err != nil {
    h.Response.Error(http.StatusBadRequest, 1008, err.Error())
    return
  }
  defer vm.Clear()
  if err := vm.SaveDraft(r.Context()); err != nil {
    h.Response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }

  h.Response.Json(map[string]string{
    "draft_id": vm.DraftID,
  })
}

func (h *DraftsHandler) Delete(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  if err := h.Repository.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
    h.Response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }

  h.Response.Json(map[string]bool{
    "deleted": true,
  })
}

// Send reopens the draft in a compose screen and commits it. The draft is
// removed by the compose worker once the post went out.
func (h *DraftsHandler) Send(
  w http.ResponseWriter,
  r *http.Request,
) {
  h.ApiContext.Mux.Lock()
  defer h.ApiContext.Mux.Unlock()

  h.Response = &api.ResponseHandler{
    Writer: w,
  }

  draft, err := h.Repository.Get(r.Context(), chi.URLParam(r, "id"))
  if errors.Is(err, gorm.ErrRecordNotFound) {
    h.Response.Error(http.StatusNotFound, 1010, "draft not found")
    return
  }
  if err != nil {
    h.Response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return
  }
  vm := viewmodels.NewDraftComposeViewModel(composeDependencies(h.ApiContext, s), *draft)
  defer vm.Clear()
  if err := vm.Compose(r.Context()); err != nil {
    h.Response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }

  h.Response.Json(map[string]string{
    "draft_id": vm.DraftID,
  })
}
