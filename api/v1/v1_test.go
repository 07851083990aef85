package v1

import (
  "context"
  "encoding/json"
  "errors"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/preferences"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/ui"
)

func newContext(t *testing.T) *api.Context {
  db, err := common.NewSqliteDB(":memory:")
  require.NoError(t, err)
  require.NoError(t, models.NewCache().AutoMigrate(db))
  holder, err := preferences.NewHolder("")
  require.NoError(t, err)
  ctx, cancel := context.WithCancel(context.Background())
  t.Cleanup(cancel)
  return &api.Context{
    ApiContext:   &common.ApiContext{Db: db, Ctx: ctx},
    Drafts:       &repositories.DraftsRepository{Db: db},
    Preferences:  holder,
    Notification: actions.NewInAppNotification(nil),
  }
}

func serve(handler http.Handler, method string, target string, body string) *httptest.ResponseRecorder {
  r := httptest.NewRequest(method, target, strings.NewReader(body))
  w := httptest.NewRecorder()
  handler.ServeHTTP(w, r)
  return w
}

func TestDraftsRouter(t *testing.T) {
  apiContext := newContext(t)
  ctx := context.Background()
  for i, id := range []string{"a", "b", "c"} {
    require.NoError(t, apiContext.Drafts.Save(ctx, ui.Draft{DraftID: id, Content: id, CreatedAt: int64(i)}))
  }
  router := NewDraftsRouter(apiContext)

  w := serve(router, http.MethodGet, "/?current=1&page_size=2", "")
  require.Equal(t, http.StatusOK, w.Code)
  var page struct {
    Data     []ui.Draft `json:"data"`
    Total    int64      `json:"total"`
    Current  int        `json:"current"`
    PageSize int        `json:"page_size"`
  }
  require.NoError(t, json.NewDecoder(w.Body).Decode(&page))
  require.Equal(t, int64(3), page.Total)
  require.Equal(t, 2, page.PageSize)
  require.Equal(t, []string{"c", "b"}, []string{page.Data[0].DraftID, page.Data[1].DraftID})

  w = serve(router, http.MethodGet, "/?current=0", "")
  require.Equal(t, http.StatusForbidden, w.Code)
  w = serve(router, http.MethodGet, "/?page_size=101", "")
  require.Equal(t, http.StatusForbidden, w.Code)

  w = serve(router, http.MethodGet, "/b", "")
  require.Equal(t, http.StatusOK, w.Code)
  require.Contains(t, w.Body.String(), `"draft_id":"b"`)

  w = serve(router, http.MethodDelete, "/b", "")
  require.Equal(t, http.StatusOK, w.Code)
  w = serve(router, http.MethodGet, "/b", "")
  require.Equal(t, http.StatusNotFound, w.Code)
  w = serve(router, http.MethodPost, "/b/send", "")
  require.Equal(t, http.StatusNotFound, w.Code)

  w = serve(router, http.MethodPost, "/", "{")
  require.Equal(t, http.StatusBadRequest, w.Code)
  w = serve(router, http.MethodPost, "/", `{"content":"hi"}`)
  require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSettingsRouter(t *testing.T) {
  apiContext := newContext(t)
  router := NewSettingsRouter(apiContext)

  w := serve(router, http.MethodGet, "/", "")
  require.Equal(t, http.StatusOK, w.Code)
  require.Contains(t, w.Body.String(), "/settings/appearance")

  w = serve(router, http.MethodPost, "/appearance", `{"type":"set_theme","value":"dark"}`)
  require.Equal(t, http.StatusOK, w.Code)
  require.Contains(t, w.Body.String(), `"theme":"dark"`)
  require.Equal(t, preferences.ThemeDark, apiContext.Preferences.AppearancePreferences.Data().Value().Theme)

  w = serve(router, http.MethodPost, "/appearance", `{"type":"show_primary_color_dialog"}`)
  require.Equal(t, http.StatusOK, w.Code)
  require.Contains(t, w.Body.String(), `"show_primary_color_dialog":true`)

  w = serve(router, http.MethodPost, "/appearance", `{"type":"set_theme","value":"sepia"}`)
  require.Equal(t, http.StatusBadRequest, w.Code)

  w = serve(router, http.MethodPost, "/display", `{"font_scale":1.25,"avatar_style":"square"}`)
  require.Equal(t, http.StatusOK, w.Code)
  display := apiContext.Preferences.DisplayPreferences.Data().Value()
  require.Equal(t, 1.25, display.FontScale)
  require.Equal(t, preferences.AvatarStyleSquare, display.AvatarStyle)
  require.True(t, display.ShowNumbers)

  w = serve(router, http.MethodPost, "/display", `nope`)
  require.Equal(t, http.StatusBadRequest, w.Code)
  require.Equal(t, 1.25, apiContext.Preferences.DisplayPreferences.Data().Value().FontScale)
}

func TestSettingsRouterAnswersWithNewState(t *testing.T) {
  for i := 0; i < 20; i++ {
    apiContext := newContext(t)
    router := NewSettingsRouter(apiContext)
    w := serve(router, http.MethodPost, "/appearance", `{"type":"set_theme","value":"dark"}`)
    require.Equal(t, http.StatusOK, w.Code)
    require.Contains(t, w.Body.String(), `"theme":"dark"`)
  }
}

func TestNotificationsRouter(t *testing.T) {
  apiContext := newContext(t)
  router := NewNotificationsRouter(apiContext)

  w := serve(router, http.MethodGet, "/latest", "")
  require.Equal(t, http.StatusOK, w.Code)
  require.Equal(t, "null", strings.TrimSpace(w.Body.String()))

  apiContext.Notification.NotifyError(errors.New("boom"))
  w = serve(router, http.MethodGet, "/latest", "")
  require.Equal(t, http.StatusOK, w.Code)
  require.NotEqual(t, "null", strings.TrimSpace(w.Body.String()))
}

func TestListRoutes(t *testing.T) {
  apiContext := newContext(t)
  search := NewSearchRouter(apiContext)
  users := NewUsersRouter(apiContext)
  dm := NewDirectMessagesRouter(apiContext)

  for _, target := range []string{"/statuses", "/media", "/users"} {
    w := serve(search, http.MethodGet, target+"?keyword=%20", "")
    require.Equal(t, http.StatusBadRequest, w.Code, target)
    require.JSONEq(t, `{"code":1007,"message":"keyword is empty"}`, w.Body.String())
  }
  w := serve(search, http.MethodPost, "/media/more", "")
  require.Equal(t, http.StatusBadRequest, w.Code)

  cases := []struct {
    handler http.Handler
    method  string
    target  string
  }{
    {search, http.MethodGet, "/statuses?keyword=go"},
    {search, http.MethodPost, "/media/more?keyword=go"},
    {users, http.MethodGet, "/2@twitter.com/timeline?exclude_replies=true"},
    {users, http.MethodPost, "/2@twitter.com/timeline/more"},
    {dm, http.MethodGet, "/conversations/1-2@twitter.com/events"},
    {dm, http.MethodPost, "/conversations/1-2@twitter.com/events/more"},
  }
  for _, c := range cases {
    w := serve(c.handler, c.method, c.target, "")
    require.Equal(t, http.StatusUnauthorized, w.Code, c.target)
    require.JSONEq(t, `{"code":1001,"message":"token is empty"}`, w.Body.String())
  }
}
