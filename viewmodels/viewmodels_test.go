package viewmodels

import (
  "context"
  "sync"
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/lifecycle"
  "twiderex.local/twiderex/location"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

type recordAction struct {
  data []*models.ComposeData
}

func (a *recordAction) Commit(ctx context.Context, data *models.ComposeData) error {
  a.data = append(a.data, data)
  return nil
}

func (a *recordAction) Save(ctx context.Context, data *models.ComposeData) error {
  a.data = append(a.data, data)
  return nil
}

func twitterAccount() *repositories.AccountDetails {
  return &repositories.AccountDetails{
    AccountKey: models.Twitter("1"),
    Type:       models.PlatformTwitter,
    Host:       models.Twitter("1").Host,
    User:       ui.User{ID: "1", ScreenName: "me"},
  }
}

func newDeps(account *repositories.AccountDetails) (ComposeDependencies, *recordAction, *recordAction) {
  compose, draft := &recordAction{}, &recordAction{}
  return ComposeDependencies{
    Account: flow.NewStateFlow(account),
    Compose: compose,
    Draft:   draft,
  }, compose, draft
}

func TestVoteStateOptions(t *testing.T) {
  vote := NewVoteState()
  require.Equal(t, []string{"", ""}, vote.Texts())
  require.Equal(t, VoteExpiredDay1, vote.Expired.Value())

  vote.SetOption("a", 0)
  require.Equal(t, []string{"a", ""}, vote.Texts())

  vote.SetOption("b", 1)
  require.Equal(t, []string{"a", "b", ""}, vote.Texts())

  vote.SetOption("c", 2)
  vote.SetOption("d", 3)
  require.Equal(t, []string{"a", "b", "c", "d"}, vote.Texts())

  vote.SetOption("", 1)
  require.Equal(t, []string{"a", "c", "d"}, vote.Texts())

  vote.SetOption("", 0)
  vote.SetOption("", 0)
  require.Len(t, vote.Texts(), 2)

  vote.SetOption("x", 9)
  require.Len(t, vote.Texts(), 2)
}

func TestTextFieldValue(t *testing.T) {
  value := TextFieldValue{Text: "héllo world", Selection: TextRange{Start: 6, End: 2}}
  require.Equal(t, "hé", value.TextBeforeSelection())
  require.Equal(t, "world", value.TextAfterSelection())

  value.Selection = Cursor(99)
  require.Equal(t, "héllo world", value.TextBeforeSelection())
  require.Equal(t, "", value.TextAfterSelection())
}

func TestInsertTextAndEmoji(t *testing.T) {
  deps, _, _ := newDeps(twitterAccount())
  vm := NewComposeViewModel(deps, nil, models.ComposeNew)
  defer vm.Clear()

  vm.SetText(TextFieldValue{Text: "ab", Selection: Cursor(1)})
  vm.InsertText("X")
  require.Equal(t, TextFieldValue{Text: "aXb", Selection: Cursor(2)}, vm.Text.Value())

  vm.SetText(TextFieldValue{})
  vm.InsertEmoji(models.Emoji{Shortcode: "blob"})
  require.Equal(t, ":blob: ", vm.Text.Value().Text)

  vm.InsertEmoji(models.Emoji{Shortcode: "cat"})
  require.Equal(t, ":blob:  :cat: ", vm.Text.Value().Text)
}

func TestPutImagesKeepsLimit(t *testing.T) {
  deps, _, _ := newDeps(twitterAccount())
  vm := NewComposeViewModel(deps, nil, models.ComposeNew)
  defer vm.Clear()

  vm.PutImages([]string{"c", "d"})
  vm.PutImages([]string{"a", "b", "e"})
  require.Equal(t, []string{"a", "b", "e", "c"}, vm.Images.Value())

  vm.RemoveImage("b")
  require.Equal(t, []string{"a", "e", "c"}, vm.Images.Value())
}

func TestReplyUserExclusion(t *testing.T) {
  deps, _, _ := newDeps(twitterAccount())
  vm := NewComposeViewModel(deps, nil, models.ComposeNew)
  defer vm.Clear()

  vm.ExcludeReplyUser(ui.User{ID: "2"})
  vm.ExcludeReplyUser(ui.User{ID: "3"})
  vm.IncludeReplyUser(ui.User{ID: "2"})
  require.Equal(t, []string{"3"}, vm.ExcludedReplyUserIds.Value())
}

func TestBuildComposeData(t *testing.T) {
  provider := location.NewStaticProvider(&location.Location{Latitude: 1.5, Longitude: 2.5})
  deps, compose, draft := newDeps(twitterAccount())
  deps.Location = provider
  statusKey := models.Twitter("42")
  vm := NewComposeViewModel(deps, &statusKey, models.ComposeReply)

  vm.SetText(TextFieldValue{Text: "hello"})
  vm.SetVisibility(models.VisibilityPrivate)
  vm.SetImageSensitive(true)
  vm.SetContentWarningText(TextFieldValue{Text: "cw"})
  vm.TrackingLocation()
  vm.SetInVoteMode(true)
  vote := vm.VoteState.Value()
  vote.SetOption("yes", 0)
  vote.SetOption("no", 1)
  vote.SetExpired(VoteExpiredHour1)
  vote.SetMultiple(true)

  data, err := vm.BuildComposeData()
  require.NoError(t, err)
  require.Equal(t, models.Twitter("1"), data.AccountKey)
  require.Equal(t, "hello", data.Content)
  require.Equal(t, vm.DraftID, data.DraftID)
  require.Equal(t, &statusKey, data.StatusKey)
  require.Equal(t, models.VisibilityPrivate, data.Visibility)
  require.True(t, data.IsSensitive)
  require.Equal(t, "cw", data.ContentWarningText)
  require.Equal(t, 1.5, *data.Lat)
  require.Equal(t, 2.5, *data.Long)
  require.Equal(t, []string{"yes", "no", ""}, data.VoteOptions)
  require.Equal(t, int64(VoteExpiredHour1), *data.VoteExpired)
  require.True(t, *data.VoteMultiple)
  require.False(t, data.IsThreadMode)

  require.NoError(t, vm.Compose(context.Background()))
  require.NoError(t, vm.SaveDraft(context.Background()))
  require.Len(t, compose.data, 1)
  require.Len(t, draft.data, 1)

  vm.Clear()
  require.Nil(t, provider.Location().Value())
}

func TestBuildComposeDataWithoutAccount(t *testing.T) {
  deps, _, _ := newDeps(nil)
  vm := NewComposeViewModel(deps, nil, models.ComposeThread)
  defer vm.Clear()
  require.True(t, vm.EnableThreadMode.Value())

  _, err := vm.BuildComposeData()
  require.ErrorIs(t, err, ErrNoActiveAccount)
}

func TestCanSend(t *testing.T) {
  deps, _, _ := newDeps(twitterAccount())
  vm := NewComposeViewModel(deps, nil, models.ComposeNew)
  defer vm.Clear()
  require.False(t, vm.CanSend.Value())

  vm.PutImages([]string{"a.png"})
  require.Eventually(t, func() bool {
    return vm.CanSend.Value() && vm.CanSaveDraft.Value()
  }, time.Second, 10*time.Millisecond)
}

func TestDraftComposeViewModel(t *testing.T) {
  deps, _, _ := newDeps(twitterAccount())
  draft := ui.Draft{
    DraftID:     "draft-1",
    Content:     "saved",
    Media:       []string{"a.png"},
    ComposeType: models.ComposeNew,
  }
  vm := NewDraftComposeViewModel(deps, draft)
  defer vm.Clear()

  require.Equal(t, "draft-1", vm.DraftID)
  require.Equal(t, "saved", vm.Text.Value().Text)
  require.Equal(t, []string{"a.png"}, vm.Images.Value())
  require.Equal(t, []string{}, vm.ExcludedReplyUserIds.Value())
}

type draftGetter map[string]*ui.Draft

func (g draftGetter) Get(ctx context.Context, id string) (*ui.Draft, error) {
  return g[id], nil
}

func TestDraftItemViewModel(t *testing.T) {
  vm := NewDraftItemViewModel(draftGetter{"x": {DraftID: "x"}}, "x")
  defer vm.Clear()
  require.Eventually(t, func() bool {
    draft := vm.Draft.Value()
    return draft != nil && draft.DraftID == "x"
  }, time.Second, 10*time.Millisecond)
}

func TestViewModelClear(t *testing.T) {
  var vm ViewModel
  scope := vm.Scope()
  calls := 0
  vm.OnCleared(func() { calls++ })

  vm.Clear()
  vm.Clear()
  require.Equal(t, 1, calls)
  require.True(t, vm.IsCleared())
  require.Error(t, scope.Err())
}

func TestBindLifecycle(t *testing.T) {
  var vm ViewModel
  l := lifecycle.New()
  vm.BindLifecycle(l)
  require.False(t, vm.IsCleared())

  l.Destroy()
  require.Eventually(t, vm.IsCleared, time.Second, 10*time.Millisecond)
}

var mastodonKey = models.MicroBlogKey{ID: "1", Host: "mastodon.social"}

func mastodonAccount(service services.MicroBlogService) *repositories.AccountDetails {
  return &repositories.AccountDetails{
    AccountKey: mastodonKey,
    Type:       models.PlatformMastodon,
    Host:       mastodonKey.Host,
    User:       ui.User{UserKey: mastodonKey, ID: "1", ScreenName: "me"},
    Service:    service,
  }
}

type statusLoader struct {
  status ui.Timeline
}

func (l statusLoader) LoadStatus(ctx context.Context, statusKey models.MicroBlogKey, accountKey models.MicroBlogKey, lookup services.LookupService) (ui.Timeline, error) {
  return l.status, nil
}

type userLookup struct {
  mu    sync.Mutex
  names [][]string
}

func (l *userLookup) LookupUsersByName(ctx context.Context, names []string, accountKey models.MicroBlogKey, lookup services.LookupService) ([]ui.User, error) {
  l.mu.Lock()
  l.names = append(l.names, names)
  l.mu.Unlock()
  users := make([]ui.User, len(names))
  for i, name := range names {
    users[i] = ui.User{ID: name, ScreenName: name}
  }
  return users, nil
}

type emojiLoader []models.Emoji

func (l emojiLoader) Get(ctx context.Context, host string, service services.EmojiService) ([]models.Emoji, error) {
  return l, nil
}

type emojiService struct {
  services.MicroBlogService
}

func (emojiService) Emojis(ctx context.Context) ([]models.Emoji, error) {
  return nil, nil
}

func mastodonStatus(author string, mentions ...models.Mention) *ui.MastodonStatus {
  return ui.NewMastodonStatus(ui.StatusBase{
    StatusKey:    models.MicroBlogKey{ID: "42", Host: mastodonKey.Host},
    Content:      "hello",
    PlatformType: models.PlatformMastodon,
    User: ui.User{
      UserKey:    models.MicroBlogKey{ID: author, Host: mastodonKey.Host},
      ID:         author,
      ScreenName: author,
    },
  }, models.StatusExtra{Mentions: mentions})
}

func replyViewModel(t *testing.T, account *repositories.AccountDetails, status ui.Timeline) *ComposeViewModel {
  deps, _, _ := newDeps(account)
  deps.Statuses = statusLoader{status: status}
  statusKey := models.MicroBlogKey{ID: "42", Host: account.Host}
  vm := NewComposeViewModel(deps, &statusKey, models.ComposeReply)
  t.Cleanup(vm.Clear)
  return vm
}

func TestReplyWithoutMentionsAddressesAuthor(t *testing.T) {
  status := mastodonStatus("alice")
  vm := replyViewModel(t, mastodonAccount(nil), status)

  require.Eventually(t, func() bool {
    return vm.Text.Value().Text == "@alice "
  }, time.Second, 10*time.Millisecond)
  require.Equal(t, Cursor(7), vm.Text.Value().Selection)
  require.Eventually(t, func() bool {
    return vm.Status.Value() == ui.Timeline(status)
  }, time.Second, 10*time.Millisecond)
  require.Empty(t, vm.ReplyToUserName.Value())
}

func TestReplyAddressesMentionsExceptSelf(t *testing.T) {
  status := mastodonStatus("alice",
    models.Mention{ID: "3", Username: "bob", Acct: "bob@example.com"},
    models.Mention{ID: "1", Username: "me", Acct: "me"},
    models.Mention{ID: "2", Username: "alice", Acct: "alice"},
  )
  vm := replyViewModel(t, mastodonAccount(nil), status)

  require.Eventually(t, func() bool {
    return vm.Text.Value().Text == "@alice @bob@example.com "
  }, time.Second, 10*time.Millisecond)
}

func TestReplyToOwnStatusLeavesTextEmpty(t *testing.T) {
  status := mastodonStatus("1")
  vm := replyViewModel(t, mastodonAccount(nil), status)

  require.Eventually(t, func() bool {
    return vm.Status.Value() != nil
  }, time.Second, 10*time.Millisecond)
  require.Equal(t, "", vm.Text.Value().Text)
}

func TestTwitterReplyLooksUpMentionedUsers(t *testing.T) {
  status := ui.NewTwitterStatus(ui.StatusBase{
    StatusKey:    models.Twitter("42"),
    Content:      "@me @bob @carol hi",
    PlatformType: models.PlatformTwitter,
    User:         ui.User{UserKey: models.Twitter("2"), ID: "2", ScreenName: "alice"},
  }, "")
  users := &userLookup{}
  deps, _, _ := newDeps(twitterAccount())
  deps.Statuses = statusLoader{status: status}
  deps.Users = users
  statusKey := models.Twitter("42")
  vm := NewComposeViewModel(deps, &statusKey, models.ComposeReply)
  defer vm.Clear()

  require.Eventually(t, func() bool {
    return len(vm.ReplyToUserName.Value()) == 2
  }, time.Second, 10*time.Millisecond)
  require.Equal(t, []string{"bob", "carol"}, vm.ReplyToUserName.Value())

  require.Eventually(t, func() bool {
    return len(vm.ReplyToUser.Value()) == 2 && !vm.LoadingReplyUser.Value()
  }, time.Second, 10*time.Millisecond)
  require.Equal(t, "carol", vm.ReplyToUser.Value()[1].ScreenName)
  users.mu.Lock()
  require.Equal(t, []string{"bob", "carol"}, users.names[len(users.names)-1])
  users.mu.Unlock()
  require.Equal(t, "", vm.Text.Value().Text)
}

func TestEmojisLoadOnlyForMastodon(t *testing.T) {
  emojis := emojiLoader{{Shortcode: "blob"}, {Shortcode: "cat"}}

  deps, _, _ := newDeps(mastodonAccount(emojiService{}))
  deps.Emojis = emojis
  vm := NewComposeViewModel(deps, nil, models.ComposeNew)
  defer vm.Clear()
  require.Eventually(t, func() bool {
    return len(vm.Emojis.Value()) == 2
  }, time.Second, 10*time.Millisecond)
  require.Equal(t, "blob", vm.Emojis.Value()[0].Shortcode)

  deps, _, _ = newDeps(twitterAccount())
  deps.Emojis = emojis
  twitter := NewComposeViewModel(deps, nil, models.ComposeNew)
  defer twitter.Clear()
  require.Never(t, func() bool {
    return len(twitter.Emojis.Value()) > 0
  }, 100*time.Millisecond, 10*time.Millisecond)
}
