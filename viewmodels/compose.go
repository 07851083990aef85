package viewmodels

import (
  "context"
  "fmt"
  "strings"

  "github.com/google/uuid"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/content"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/location"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

type StatusLoader interface {
  LoadStatus(ctx context.Context, statusKey models.MicroBlogKey, accountKey models.MicroBlogKey, lookup services.LookupService) (ui.Timeline, error)
}

type UserLookup interface {
  LookupUsersByName(ctx context.Context, names []string, accountKey models.MicroBlogKey, lookup services.LookupService) ([]ui.User, error)
}

type EmojiLoader interface {
  Get(ctx context.Context, host string, service services.EmojiService) ([]models.Emoji, error)
}

type DraftCounter interface {
  SourceCount() *flow.StateFlow[int64]
}

type ComposeDependencies struct {
  Account      *flow.StateFlow[*repositories.AccountDetails]
  Drafts       DraftCounter
  Compose      actions.ComposeAction
  Draft        actions.DraftAction
  Statuses     StatusLoader
  Users        UserLookup
  Emojis       EmojiLoader
  Notification *actions.InAppNotification
  Location     location.Provider
}

type replyContext struct {
  account *repositories.AccountDetails
  names   []string
}

type ComposeViewModel struct {
  ViewModel
  deps        ComposeDependencies
  StatusKey   *models.MicroBlogKey
  ComposeType models.ComposeType
  DraftID     string

  Text                    *flow.StateFlow[TextFieldValue]
  ContentWarningText      *flow.StateFlow[TextFieldValue]
  Images                  *flow.StateFlow[[]string]
  VoteState               *flow.StateFlow[*VoteState]
  IsInVoteMode            *flow.StateFlow[bool]
  Visibility              *flow.StateFlow[models.Visibility]
  IsImageSensitive        *flow.StateFlow[bool]
  IsContentWarningEnabled *flow.StateFlow[bool]
  LocationEnabled         *flow.StateFlow[bool]
  EnableThreadMode        *flow.StateFlow[bool]
  ExcludedReplyUserIds    *flow.StateFlow[[]string]
  LoadingReplyUser        *flow.StateFlow[bool]

  Status          *flow.StateFlow[ui.Timeline]
  ReplyToUserName *flow.StateFlow[[]string]
  ReplyToUser     *flow.StateFlow[[]ui.User]
  Emojis          *flow.StateFlow[[]models.Emoji]
  CanSend         *flow.StateFlow[bool]
  CanSaveDraft    *flow.StateFlow[bool]
  DraftCount      *flow.StateFlow[int64]
  Location        *flow.StateFlow[*location.Location]
}

func NewComposeViewModel(deps ComposeDependencies, statusKey *models.MicroBlogKey, composeType models.ComposeType) *ComposeViewModel {
  vm := newComposeViewModel(deps, statusKey, composeType)
  vm.start()
  return vm
}

func newComposeViewModel(deps ComposeDependencies, statusKey *models.MicroBlogKey, composeType models.ComposeType) *ComposeViewModel {
  return &ComposeViewModel{
    deps:                    deps,
    StatusKey:               statusKey,
    ComposeType:             composeType,
    DraftID:                 uuid.NewString(),
    Text:                    flow.NewStateFlow(TextFieldValue{}),
    ContentWarningText:      flow.NewStateFlow(TextFieldValue{}),
    Images:                  flow.NewStateFlow([]string{}),
    VoteState:               flow.NewStateFlow[*VoteState](nil),
    IsInVoteMode:            flow.NewStateFlow(false),
    Visibility:              flow.NewStateFlow(models.VisibilityPublic),
    IsImageSensitive:        flow.NewStateFlow(false),
    IsContentWarningEnabled: flow.NewStateFlow(false),
    LocationEnabled:         flow.NewStateFlow(false),
    EnableThreadMode:        flow.NewStateFlow(composeType == models.ComposeThread),
    ExcludedReplyUserIds:    flow.NewStateFlow([]string{}),
    LoadingReplyUser:        flow.NewStateFlow(false),
  }
}

func (vm *ComposeViewModel) start() {
  ctx := vm.Scope()
  account := vm.deps.Account

  vm.Status = flow.FlatMapLatest[*repositories.AccountDetails, ui.Timeline](ctx, account, nil, vm.loadStatus)
  vm.ReplyToUserName = flow.Combine(ctx, account, vm.Status, vm.replyToUserName)
  replies := flow.Combine(ctx, account, vm.ReplyToUserName, func(account *repositories.AccountDetails, names []string) replyContext {
    return replyContext{account: account, names: names}
  })
  vm.ReplyToUser = flow.FlatMapLatest(ctx, replies, []ui.User{}, vm.lookupReplyUsers)
  vm.Emojis = flow.FlatMapLatest(ctx, account, []models.Emoji{}, vm.loadEmojis)

  hasContent := func(text TextFieldValue, images []string) bool {
    return text.Text != "" || len(images) > 0
  }
  vm.CanSend = flow.Combine(ctx, vm.Text, vm.Images, hasContent)
  vm.CanSaveDraft = flow.Combine(ctx, vm.Text, vm.Images, hasContent)

  if vm.deps.Drafts != nil {
    vm.DraftCount = vm.deps.Drafts.SourceCount()
  } else {
    vm.DraftCount = flow.NewStateFlow[int64](0)
  }
  if vm.deps.Location != nil {
    vm.Location = vm.deps.Location.Location()
  } else {
    vm.Location = flow.NewStateFlow[*location.Location](nil)
  }
  vm.OnCleared(func() {
    if vm.deps.Location != nil && vm.LocationEnabled.Value() {
      vm.deps.Location.Disable()
    }
  })
}

func (vm *ComposeViewModel) loadStatus(ctx context.Context, account *repositories.AccountDetails) *flow.StateFlow[ui.Timeline] {
  out := flow.NewStateFlow[ui.Timeline](nil)
  if vm.StatusKey == nil || account == nil || vm.deps.Statuses == nil {
    return out
  }
  statusKey := *vm.StatusKey
  go func() {
    status, err := vm.deps.Statuses.LoadStatus(ctx, statusKey, account.AccountKey, account.Service)
    if err != nil {
      vm.notifyError(err)
      return
    }
    vm.prefillMentions(account, status)
    out.Set(status)
  }()
  return out
}

// prefillMentions starts a Mastodon reply with the author and everyone it
// mentions, leaving out the signed in user.
func (vm *ComposeViewModel) prefillMentions(account *repositories.AccountDetails, status ui.Timeline) {
  if vm.ComposeType != models.ComposeReply || vm.Text.Value().Text != "" {
    return
  }
  mastodon, ok := ui.StatusOf(status).(*ui.MastodonStatus)
  if !ok || mastodon.PlatformType != models.PlatformMastodon {
    return
  }
  var names []string
  if mastodon.User.UserKey != account.User.UserKey {
    names = append(names, mastodon.User.DisplayScreenName(account.AccountKey.Host))
  }
  for _, mention := range mastodon.Mentions {
    if mention.Acct == "" || mention.Acct == account.User.ScreenName {
      continue
    }
    names = append(names, "@"+mention.Acct)
  }
  names = distinct(names)
  if len(names) == 0 {
    return
  }
  text := strings.Join(names, " ") + " "
  vm.SetText(TextFieldValue{Text: text, Selection: Cursor(len([]rune(text)))})
}

func (vm *ComposeViewModel) replyToUserName(account *repositories.AccountDetails, status ui.Timeline) []string {
  if account == nil || status == nil || vm.StatusKey == nil {
    return []string{}
  }
  if account.Type != models.PlatformTwitter || vm.ComposeType != models.ComposeReply {
    return []string{}
  }
  inner := ui.StatusOf(status)
  if inner == nil {
    return []string{}
  }
  base := inner.Base()
  names := []string{}
  for _, name := range content.ExtractMentions(base.Content) {
    if name != account.User.ScreenName && name != base.User.ScreenName {
      names = append(names, name)
    }
  }
  return names
}

func (vm *ComposeViewModel) lookupReplyUsers(ctx context.Context, reply replyContext) *flow.StateFlow[[]ui.User] {
  out := flow.NewStateFlow([]ui.User{})
  if reply.account == nil || len(reply.names) == 0 || vm.deps.Users == nil {
    return out
  }
  go func() {
    vm.LoadingReplyUser.Set(true)
    defer vm.LoadingReplyUser.Set(false)
    users, err := vm.deps.Users.LookupUsersByName(ctx, reply.names, reply.account.AccountKey, reply.account.Service)
    if err != nil {
      vm.notifyError(err)
      return
    }
    out.Set(users)
  }()
  return out
}

func (vm *ComposeViewModel) loadEmojis(ctx context.Context, account *repositories.AccountDetails) *flow.StateFlow[[]models.Emoji] {
  out := flow.NewStateFlow([]models.Emoji{})
  if account == nil || account.Type != models.PlatformMastodon || vm.deps.Emojis == nil {
    return out
  }
  service, ok := account.Service.(services.EmojiService)
  if !ok {
    return out
  }
  go func() {
    emojis, err := vm.deps.Emojis.Get(ctx, account.Host, service)
    if err != nil {
      vm.notifyError(err)
      return
    }
    out.Set(emojis)
  }()
  return out
}

func (vm *ComposeViewModel) SetText(value TextFieldValue) {
  vm.Text.Set(value)
}

func (vm *ComposeViewModel) SetContentWarningText(value TextFieldValue) {
  vm.ContentWarningText.Set(value)
}

func (vm *ComposeViewModel) SetContentWarningEnabled(value bool) {
  vm.IsContentWarningEnabled.Set(value)
}

func (vm *ComposeViewModel) SetImageSensitive(value bool) {
  vm.IsImageSensitive.Set(value)
}

func (vm *ComposeViewModel) SetEnableThreadMode(value bool) {
  vm.EnableThreadMode.Set(value)
}

func (vm *ComposeViewModel) SetVisibility(value models.Visibility) {
  vm.Visibility.Set(value)
}

func (vm *ComposeViewModel) SetInVoteMode(value bool) {
  if value {
    vm.VoteState.Set(NewVoteState())
  } else {
    vm.VoteState.Set(nil)
  }
  vm.IsInVoteMode.Set(value)
}

// PutImages puts the new images in front and keeps at most the platform
// limit.
func (vm *ComposeViewModel) PutImages(value []string) {
  limit := vm.imageLimit()
  vm.Images.Update(func(current []string) []string {
    images := append(append([]string{}, value...), current...)
    if len(images) > limit {
      images = images[:limit]
    }
    return images
  })
}

func (vm *ComposeViewModel) imageLimit() int {
  account := vm.deps.Account.Value()
  if account == nil {
    return config.IMAGE_LIMIT
  }
  switch account.Type {
  case models.PlatformTwitter, models.PlatformMastodon:
    return config.IMAGE_LIMIT
  }
  return config.IMAGE_LIMIT
}

func (vm *ComposeViewModel) RemoveImage(item string) {
  vm.Images.Update(func(current []string) []string {
    images := make([]string, 0, len(current))
    for _, image := range current {
      if image != item {
        images = append(images, image)
      }
    }
    return images
  })
}

func (vm *ComposeViewModel) ExcludeReplyUser(user ui.User) {
  vm.ExcludedReplyUserIds.Update(func(ids []string) []string {
    return append(append([]string{}, ids...), user.ID)
  })
}

func (vm *ComposeViewModel) IncludeReplyUser(user ui.User) {
  vm.ExcludedReplyUserIds.Update(func(ids []string) []string {
    result := make([]string, 0, len(ids))
    for _, id := range ids {
      if id != user.ID {
        result = append(result, id)
      }
    }
    return result
  })
}

func (vm *ComposeViewModel) InsertText(result string) {
  vm.Text.Update(func(value TextFieldValue) TextFieldValue {
    position := value.clamp(value.Selection.Min()) + len([]rune(result))
    return TextFieldValue{
      Text:      value.TextBeforeSelection() + result + value.TextAfterSelection(),
      Selection: Cursor(position),
    }
  })
}

func (vm *ComposeViewModel) InsertEmoji(emoji models.Emoji) {
  prefix := ""
  if vm.Text.Value().Selection.Start != 0 {
    prefix = " "
  }
  vm.InsertText(fmt.Sprintf("%s:%s: ", prefix, emoji.Shortcode))
}

func (vm *ComposeViewModel) TrackingLocation() {
  if vm.LocationEnabled.Value() {
    return
  }
  vm.LocationEnabled.Set(true)
  if vm.deps.Location != nil {
    vm.deps.Location.Enable()
  }
}

func (vm *ComposeViewModel) DisableLocation() {
  if !vm.LocationEnabled.Value() {
    return
  }
  vm.LocationEnabled.Set(false)
  if vm.deps.Location != nil {
    vm.deps.Location.Disable()
  }
}

func (vm *ComposeViewModel) Compose(ctx context.Context) error {
  data, err := vm.BuildComposeData()
  if err != nil {
    return err
  }
  return vm.deps.Compose.Commit(ctx, data)
}

func (vm *ComposeViewModel) SaveDraft(ctx context.Context) error {
  data, err := vm.BuildComposeData()
  if err != nil {
    return err
  }
  return vm.deps.Draft.Save(ctx, data)
}

func (vm *ComposeViewModel) BuildComposeData() (*models.ComposeData, error) {
  account := vm.deps.Account.Value()
  if account == nil {
    return nil, ErrNoActiveAccount
  }
  data := &models.ComposeData{
    AccountKey:           account.AccountKey,
    Content:              vm.Text.Value().Text,
    DraftID:              vm.DraftID,
    Images:               vm.Images.Value(),
    ComposeType:          vm.ComposeType,
    StatusKey:            vm.StatusKey,
    ExcludedReplyUserIds: vm.ExcludedReplyUserIds.Value(),
    Visibility:           vm.Visibility.Value(),
    IsSensitive:          vm.IsImageSensitive.Value(),
    ContentWarningText:   vm.ContentWarningText.Value().Text,
    IsThreadMode:         vm.EnableThreadMode.Value(),
  }
  if current := vm.Location.Value(); current != nil && vm.LocationEnabled.Value() {
    lat, long := current.Latitude, current.Longitude
    data.Lat = &lat
    data.Long = &long
  }
  if vote := vm.VoteState.Value(); vote != nil {
    expired := int64(vote.Expired.Value())
    multiple := vote.Multiple.Value()
    data.VoteOptions = vote.Texts()
    data.VoteExpired = &expired
    data.VoteMultiple = &multiple
  }
  return data, nil
}

func (vm *ComposeViewModel) notifyError(err error) {
  if vm.deps.Notification != nil {
    vm.deps.Notification.NotifyError(err)
  }
}

func distinct(values []string) []string {
  seen := map[string]bool{}
  result := make([]string, 0, len(values))
  for _, value := range values {
    if seen[value] {
      continue
    }
    seen[value] = true
    result = append(result, value)
  }
  return result
}
