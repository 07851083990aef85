package v1

import (
  "context"
  "encoding/json"
  "io"
  "net/http"
  "time"

  "github.com/go-chi/chi/v5"

  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/preferences"
  "twiderex.local/twiderex/presenters"
)

type SettingsHandler struct {
  ApiContext *api.Context
  Events     chan presenters.AppearanceEvent
  Appearance *flow.StateFlow[presenters.AppearanceState]
}

func NewSettingsRouter(apiContext *api.Context) http.Handler {
  h := SettingsHandler{
    ApiContext: apiContext,
    Events:     make(chan presenters.AppearanceEvent),
  }
  h.Appearance = presenters.AppearancePresenter(h.ApiContext.Ctx, h.Events, h.ApiContext.Preferences)

  r := chi.NewRouter()
  r.Get("/", h.Sections)
  r.Get("/appearance", h.ShowAppearance)
  r.Post("/appearance", h.UpdateAppearance)
  r.Get("/display", h.ShowDisplay)
  r.Post("/display", h.UpdateDisplay)
  return r
}

func (h *SettingsHandler) Sections(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  response.Json(presenters.Settings())
}

func (h *SettingsHandler) ShowAppearance(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  response.Json(h.Appearance.Value())
}

// UpdateAppearance hands the event to the presenter and answers with the
// state it produced.
func (h *SettingsHandler) UpdateAppearance(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  payload, err := io.ReadAll(r.Body)
  if err != nil {
    response.Error(http.StatusBadRequest, 1007, "request body not valid")
    return
  }
  event, err := presenters.ParseAppearanceEvent(payload)
  if err != nil {
    response.Error(http.StatusBadRequest, 1008, err.Error())
    return
  }

  ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
  defer cancel()
  reply := make(chan presenters.AppearanceState, 1)
  select {
  case h.Events <- presenters.AppearanceRequest{Event: event, Reply: reply}:
  case <-ctx.Done():
    response.Error(http.StatusServiceUnavailable, 1011, "appearance is busy")
    return
  }

  select {
  case state := <-reply:
    response.Json(state)
  case <-ctx.Done():
    response.Error(http.StatusServiceUnavailable, 1011, "appearance is busy")
  }
}

func (h *SettingsHandler) ShowDisplay(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  response.Json(h.ApiContext.Preferences.DisplayPreferences.Data().Value())
}

// UpdateDisplay merges the fields present in the body into the stored
// display preferences.
func (h *SettingsHandler) UpdateDisplay(w http.ResponseWriter, r *http.Request) {
  response := &api.ResponseHandler{Writer: w}
  payload, err := io.ReadAll(r.Body)
  if err != nil {
    response.Error(http.StatusBadRequest, 1007, "request body not valid")
    return
  }
  var decodeErr error
  display, err := h.ApiContext.Preferences.DisplayPreferences.UpdateData(func(prefs preferences.DisplayPreferences) preferences.DisplayPreferences {
    next := prefs
    if decodeErr = json.Unmarshal(payload, &next); decodeErr != nil {
      return prefs
    }
    return next
  })
  if decodeErr != nil {
    response.Error(http.StatusBadRequest, 1007, "request body not valid")
    return
  }
  if err != nil {
    response.Error(http.StatusInternalServerError, 1009, err.Error())
    return
  }
  response.Json(display)
}
