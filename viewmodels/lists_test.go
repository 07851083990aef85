package viewmodels

import (
  "context"
  "errors"
  "strconv"
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

func newCache(t *testing.T) *repositories.CacheRepository {
  db, err := common.NewSqliteDB(":memory:")
  require.NoError(t, err)
  require.NoError(t, models.NewCache().AutoMigrate(db))
  return &repositories.CacheRepository{Db: db}
}

// microBlog answers the DM, lookup and search calls of a twitter account.
type microBlog struct {
  services.MicroBlogService
  dms      map[string]*services.DirectMessagePage
  search   map[string]*services.SearchResult
  users    map[int][]*services.User
  errorMsg string
}

func (s *microBlog) GetDirectMessages(ctx context.Context, cursor string, count int) (*services.DirectMessagePage, error) {
  if s.errorMsg != "" {
    return nil, errors.New(s.errorMsg)
  }
  return s.dms[cursor], nil
}

func (s *microBlog) LookupUsers(ctx context.Context, ids []string) ([]*services.User, error) {
  users := make([]*services.User, len(ids))
  for i, id := range ids {
    users[i] = &services.User{ID: id, Host: models.Twitter(id).Host, Name: "User " + id, ScreenName: "user" + id}
  }
  return users, nil
}

func (s *microBlog) SearchMedia(ctx context.Context, query string, count int, nextPage string) (*services.SearchResult, error) {
  if s.errorMsg != "" {
    return nil, errors.New(s.errorMsg)
  }
  if result, ok := s.search[nextPage]; ok {
    return result, nil
  }
  return &services.SearchResult{}, nil
}

func (s *microBlog) SearchUsers(ctx context.Context, query string, page int, count int) ([]*services.User, error) {
  if s.errorMsg != "" {
    return nil, errors.New(s.errorMsg)
  }
  return s.users[page], nil
}

func dmPages() map[string]*services.DirectMessagePage {
  me := &services.User{ID: "1", Host: models.Twitter("1").Host, Name: "Me", ScreenName: "me"}
  return map[string]*services.DirectMessagePage{
    "": {
      Events: []*services.DirectMessageEvent{
        {ID: "100", SenderID: "2", RecipientID: "1", Text: "hi", CreatedAt: time.Unix(100, 0)},
      },
      Users:      []*services.User{me},
      NextCursor: "older",
    },
    "older": {
      Events: []*services.DirectMessageEvent{
        {ID: "80", SenderID: "1", RecipientID: "2", Text: "hey", CreatedAt: time.Unix(80, 0)},
      },
      Users: []*services.User{me},
    },
  }
}

func accountWith(service services.MicroBlogService) *repositories.AccountDetails {
  account := twitterAccount()
  account.Service = service
  return account
}

func TestDMConversationViewModel(t *testing.T) {
  ctx := context.Background()
  service := &microBlog{dms: dmPages()}
  account := flow.NewStateFlow(accountWith(service))
  vm := NewDMConversationViewModel(newCache(t), account, nil)
  defer vm.Clear()

  require.NoError(t, vm.Refresh(ctx))
  data := vm.Snapshot(ctx)
  require.Len(t, data.Items, 1)
  require.Equal(t, "hi", data.Items[0].Latest.Content)
  require.Equal(t, "User 2", data.Items[0].Conversation.Name)
  require.Eventually(t, func() bool {
    return len(vm.Source.Value().Items) == 1
  }, time.Second, 10*time.Millisecond)

  service.errorMsg = "dm down"
  require.EqualError(t, vm.Refresh(ctx), "dm down")
  require.Len(t, vm.Snapshot(ctx).Items, 1)

  account.Set(nil)
  require.Eventually(t, func() bool {
    return errors.Is(vm.Refresh(ctx), ErrNoActiveAccount)
  }, time.Second, 10*time.Millisecond)
  require.Empty(t, vm.Snapshot(ctx).Items)
}

func TestDMEventViewModel(t *testing.T) {
  ctx := context.Background()
  cache := newCache(t)
  service := &microBlog{dms: dmPages()}
  account := accountWith(service)
  conversations := NewDMConversationViewModel(cache, flow.NewStateFlow(account), nil)
  defer conversations.Clear()
  require.NoError(t, conversations.Refresh(ctx))
  conversationKey := conversations.Snapshot(ctx).Items[0].Conversation.ConversationKey

  vm := NewDMEventViewModel(cache, account, conversationKey, service, nil)
  defer vm.Clear()
  require.NoError(t, vm.Refresh(ctx))
  require.NoError(t, vm.LoadMore(ctx))
  data := vm.Snapshot()
  require.Len(t, data.Items, 2)
  require.Equal(t, "hi", data.Items[0].Content)
  require.True(t, data.Items[0].IsInCome)
  require.Equal(t, "hey", data.Items[1].Content)
  require.False(t, data.Items[1].IsInCome)
  require.True(t, data.Append.EndOfPaginationReached)
}

func TestSearchUserViewModel(t *testing.T) {
  ctx := context.Background()
  service := &microBlog{users: map[int][]*services.User{
    1: {{ID: "2", Host: models.Twitter("2").Host, ScreenName: "alice"}},
  }}
  vm := NewSearchUserViewModel(service, "al")
  defer vm.Clear()

  require.NoError(t, vm.Refresh(ctx))
  require.Equal(t, "alice", vm.Source().Value().Items[0].ScreenName)
  require.NoError(t, vm.LoadMore(ctx))
  require.True(t, vm.Source().Value().Append.EndOfPaginationReached)

  service.errorMsg = "search down"
  require.Error(t, vm.Refresh(ctx))
  require.Equal(t, "search down", vm.Source().Value().Refresh.Message())
}

func mediaStatus(id int) *services.Status {
  return &services.Status{
    ID:        strconv.Itoa(id),
    Host:      models.Twitter("1").Host,
    Platform:  models.PlatformTwitter,
    RawText:   "cat " + strconv.Itoa(id),
    HtmlText:  "cat " + strconv.Itoa(id),
    CreatedAt: time.Unix(int64(id)*60, 0),
    User: &services.User{
      ID:         "2",
      Host:       models.Twitter("2").Host,
      Platform:   models.PlatformTwitter,
      Name:       "Someone",
      ScreenName: "someone",
    },
    Media: []*services.Media{{Url: "https://example.com/" + strconv.Itoa(id), Type: models.MediaTypePhoto}},
  }
}

func TestSearchMediaViewModel(t *testing.T) {
  ctx := context.Background()
  service := &microBlog{search: map[string]*services.SearchResult{
    "":     {Statuses: []*services.Status{mediaStatus(5)}, NextPage: "next"},
    "next": {Statuses: []*services.Status{mediaStatus(3)}},
  }}
  vm := NewSearchMediaViewModel(newCache(t), accountWith(service), "cats", nil, nil)
  defer vm.Clear()
  require.Equal(t, "cats", vm.Key)

  require.NoError(t, vm.Refresh(ctx))
  require.NoError(t, vm.LoadMore(ctx))
  data := vm.Snapshot()
  require.Len(t, data.Items, 2)
  require.Equal(t, "5", ui.StatusOf(data.Items[0]).Base().StatusKey.ID)
  require.Equal(t, "3", ui.StatusOf(data.Items[1]).Base().StatusKey.ID)

  service.errorMsg = "search down"
  require.EqualError(t, vm.Refresh(ctx), "search down")
  require.Len(t, vm.Snapshot().Items, 2)
}
