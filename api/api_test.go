package api

import (
  "encoding/json"
  "fmt"
  "net/http"
  "net/http/httptest"
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/lifecycle"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  jwtRepositories "twiderex.local/twiderex/repositories/jwt"
  "twiderex.local/twiderex/viewmodels"
)

func TestResponseHandler(t *testing.T) {
  w := httptest.NewRecorder()
  (&ResponseHandler{Writer: w}).Pagenate([]string{"a"}, 3, 2, 1)
  require.Equal(t, http.StatusOK, w.Code)
  require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
  require.JSONEq(t, `{"data":["a"],"total":3,"current":2,"page_size":1}`, w.Body.String())

  w = httptest.NewRecorder()
  (&ResponseHandler{Writer: w}).Error(http.StatusNotFound, 1003, "account not found")
  require.Equal(t, http.StatusNotFound, w.Code)
  require.JSONEq(t, `{"code":1003,"message":"account not found"}`, w.Body.String())
}

func TestAuthenticator(t *testing.T) {
  tokens := &jwtRepositories.TokenRepository{Secret: "secret"}
  handler := Authenticator(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    key, ok := AccountKey(r.Context())
    require.True(t, ok)
    (&ResponseHandler{Writer: w}).Json(key)
  }))

  serve := func(header string) *httptest.ResponseRecorder {
    r := httptest.NewRequest(http.MethodGet, "/v1/accounts/me", nil)
    if header != "" {
      r.Header.Set("Authorization", header)
    }
    w := httptest.NewRecorder()
    handler.ServeHTTP(w, r)
    return w
  }

  w := serve("")
  require.Equal(t, http.StatusUnauthorized, w.Code)
  require.JSONEq(t, `{"code":1001,"message":"token is empty"}`, w.Body.String())

  w = serve("Basic abc")
  require.Equal(t, http.StatusUnauthorized, w.Code)

  w = serve("Bearer nonsense")
  require.Equal(t, http.StatusUnauthorized, w.Code)
  require.JSONEq(t, `{"code":1002,"message":"token is invalid"}`, w.Body.String())

  account := models.MicroBlogKey{ID: "7", Host: "mastodon.social"}
  token, err := tokens.AccessToken(account.String(), time.Hour)
  require.NoError(t, err)
  w = serve("Bearer " + token)
  require.Equal(t, http.StatusOK, w.Code)
  var key models.MicroBlogKey
  require.NoError(t, json.NewDecoder(w.Body).Decode(&key))
  require.Equal(t, account, key)
}

func TestSessionKeepsLatestSearchOnly(t *testing.T) {
  s := &Session{
    Lifecycle: lifecycle.New(),
    Account:   flow.NewStateFlow[*repositories.AccountDetails](nil),
    screens:   map[string]*screen{},
  }
  search := func(keyword string) (*viewmodels.SearchUserViewModel, bool) {
    return s.SearchUser(keyword, func(*repositories.AccountDetails) *viewmodels.SearchUserViewModel {
      return viewmodels.NewSearchUserViewModel(nil, keyword)
    })
  }

  first, created := search("alice")
  require.True(t, created)
  again, created := search("alice")
  require.False(t, created)
  require.Same(t, first, again)

  for i := 0; i < 100; i++ {
    search(fmt.Sprintf("keyword-%d", i))
  }
  require.Len(t, s.screens, 1)
  require.Equal(t, "keyword-99", s.screens["search:users"].key)
  require.True(t, first.IsCleared())

  latest, created := search("keyword-99")
  require.False(t, created)
  require.False(t, latest.IsCleared())

  s.Lifecycle.Destroy()
  require.Eventually(t, latest.IsCleared, time.Second, 10*time.Millisecond)
}
