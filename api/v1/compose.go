package v1

import (
  "encoding/json"
  "errors"
  "net/http"
  "strconv"
  "strings"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/queue/asynq/jobs"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/viewmodels"
)

type VoteBody struct {
  Options  []string `json:"options"`
  Expired  int64    `json:"expired"`
  Multiple bool     `json:"multiple"`
}

type ComposeBody struct {
  DraftID              string    `json:"draft_id"`
  Content              string    `json:"content"`
  Images               []string  `json:"images"`
  ComposeType          string    `json:"compose_type"`
  StatusKey            string    `json:"status_key"`
  ExcludedReplyUserIds []string  `json:"excluded_reply_user_ids"`
  Visibility           string    `json:"visibility"`
  IsSensitive          bool      `json:"is_sensitive"`
  ContentWarningText   string    `json:"content_warning_text"`
  IsThreadMode         bool      `json:"is_thread_mode"`
  Location             bool      `json:"location"`
  Vote                 *VoteBody `json:"vote"`
}

var errContentEmpty = errors.New("content and images are empty")

// viewModel opens a compose screen for the body and fills it in the way a
// user would.
func (b *ComposeBody) viewModel(deps viewmodels.ComposeDependencies) (*viewmodels.ComposeViewModel, error) {
  composeType := models.ComposeNew
  if b.ComposeType != "" {
    t, err := models.ParseComposeType(b.ComposeType)
    if err != nil {
      return nil, err
    }
    composeType = t
  }
  var statusKey *models.MicroBlogKey
  if b.StatusKey != "" {
    key := models.ValueOf(b.StatusKey)
    statusKey = &key
  }
  if composeType != models.ComposeNew && statusKey == nil {
    return nil, errors.New("status_key is required")
  }
  if b.Content == "" && len(b.Images) == 0 {
    return nil, errContentEmpty
  }
  vm := viewmodels.NewComposeViewModel(deps, statusKey, composeType)
  if b.DraftID != "" {
    vm.DraftID = b.DraftID
  }
  text := b.Content
  vm.SetText(viewmodels.TextFieldValue{Text: text, Selection: viewmodels.Cursor(len([]rune(text)))})
  vm.PutImages(b.Images)
  if len(b.ExcludedReplyUserIds) > 0 {
    vm.ExcludedReplyUserIds.Set(append([]string{}, b.ExcludedReplyUserIds...))
  }
  if b.Visibility != "" {
    vm.SetVisibility(models.Visibility(b.Visibility))
  }
  vm.SetImageSensitive(b.IsSensitive)
  if b.ContentWarningText != "" {
    vm.SetContentWarningEnabled(true)
    vm.SetContentWarningText(viewmodels.TextFieldValue{Text: b.ContentWarningText})
  }
  if b.IsThreadMode {
    vm.SetEnableThreadMode(true)
  }
  if b.Location {
    vm.TrackingLocation()
  }
  if b.Vote != nil {
    vm.SetInVoteMode(true)
    vote := vm.VoteState.Value()
    for i, option := range b.Vote.Options {
      vote.SetOption(option, i)
    }
    if b.Vote.Expired > 0 {
      vote.SetExpired(viewmodels.VoteExpired(b.Vote.Expired))
    }
    vote.SetMultiple(b.Vote.Multiple)
  }
  return vm, nil
}

func composeDependencies(apiContext *api.Context, s *api.Session) viewmodels.ComposeDependencies {
  return viewmodels.ComposeDependencies{
    Account: s.Account,
    Drafts:  apiContext.Drafts,
    Compose: &actions.QueueComposeAction{
      Client: apiContext.Asynq,
      Job:    &jobs.Compose{},
    },
    Draft: &actions.RepositoryDraftAction{
      Repository: apiContext.Drafts,
    },
    Statuses: &repositories.StatusesRepository{
      Cache: apiContext.Sessions.Cache,
    },
    Users: &repositories.UsersRepository{
      Db: apiContext.Db,
    },
    Emojis: &repositories.EmojiRepository{
      Rdb: apiContext.Rdb,
    },
    Notification: apiContext.Notification,
    Location:     apiContext.Location,
  }
}

type ComposeHandler struct {
  ApiContext      *api.Context
  EmojiRepository *repositories.EmojiRepository
}

func NewComposeRouter(apiContext *api.Context) http.Handler {
  h := ComposeHandler{
    ApiContext: apiContext,
  }
  h.EmojiRepository = &repositories.EmojiRepository{
    Rdb: h.ApiContext.Rdb,
  }

  r := chi.NewRouter()
  r.Post("/", h.Commit)
  r.Get("/emojis", h.Emojis)
  return r
}

func (h *ComposeHandler) Commit(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  var body ComposeBody
  if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
    response.Error(http.StatusBadRequest, 1007, "request body not valid")
    return
  }
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return
  }
  vm, err := body.viewModel(composeDependencies(h.ApiContext, s))
  if err != nil {
    response.Error(http.StatusBadRequest, 1008, err.Error())
    return
  }
  defer vm.Clear()
  if err := vm.Compose(r.Context()); err != nil {
    response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }
  response.Json(map[string]string{
    "draft_id": vm.DraftID,
  })
}

// Emojis lists the custom emojis of the account's instance, optionally
// narrowed to the ones closest to query.
func (h *ComposeHandler) Emojis(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  s, ok := session(h.ApiContext, w, r)
  if !ok {
    return
  }
  account := s.Account.Value()
  service, ok := account.Service.(services.EmojiService)
  if !ok {
    serviceError(response, services.ErrUnsupported)
    return
  }
  emojis, err := h.EmojiRepository.Get(r.Context(), account.Host, service)
  if err != nil {
    serviceError(response, err)
    return
  }
  if query := strings.TrimSpace(r.URL.Query().Get("query")); query != "" {
    limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
    if limit < 1 {
      limit = 20
    }
    emojis = repositories.SearchEmojis(emojis, query, limit)
  }
  response.Json(emojis)
}
