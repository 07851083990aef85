package api

import (
  "context"
  "sync"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/lifecycle"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/viewmodels"
)

// Session keeps the view models of one signed in account alive between
// requests. Destroying its lifecycle clears all of them.
type Session struct {
  Lifecycle     *lifecycle.Lifecycle
  Account       *flow.StateFlow[*repositories.AccountDetails]
  mu            sync.Mutex
  timelines     map[viewmodels.TimelineKind]*viewmodels.TimelineViewModel
  conversations *viewmodels.DMConversationViewModel
  screens       map[string]*screen
}

// screen holds the view model of a page that shows one key at a time, such
// as a search box. Opening another key clears the previous view model.
type screen struct {
  key string
  vm  screenViewModel
}

type screenViewModel interface {
  Clear()
  BindLifecycle(l *lifecycle.Lifecycle)
}

type Sessions struct {
  Accounts *repositories.AccountsRepository
  Cache    *repositories.CacheRepository
  Locker   *common.RedisLocker
  mu       sync.Mutex
  items    map[string]*Session
}

func NewSessions(apiContext *common.ApiContext, secret string) *Sessions {
  return &Sessions{
    Accounts: &repositories.AccountsRepository{
      Db:     apiContext.Db,
      Secret: secret,
    },
    Cache: &repositories.CacheRepository{
      Db: apiContext.Db,
    },
    Locker: &common.RedisLocker{
      Rdb: apiContext.Rdb,
    },
    items: map[string]*Session{},
  }
}

func (s *Sessions) Get(ctx context.Context, accountKey models.MicroBlogKey) (*Session, error) {
  s.mu.Lock()
  defer s.mu.Unlock()
  if session, ok := s.items[accountKey.String()]; ok {
    return session, nil
  }
  account, err := s.Accounts.Find(ctx, accountKey)
  if err != nil {
    return nil, err
  }
  details, err := s.Accounts.Details(ctx, account)
  if err != nil {
    return nil, err
  }
  session := &Session{
    Lifecycle: lifecycle.New(),
    Account:   flow.NewStateFlow(details),
    timelines: map[viewmodels.TimelineKind]*viewmodels.TimelineViewModel{},
    screens:   map[string]*screen{},
  }
  session.Lifecycle.MoveTo(lifecycle.Resumed)
  s.items[accountKey.String()] = session
  return session, nil
}

// Remove destroys the session of an account, e.g. after it signed out.
func (s *Sessions) Remove(accountKey models.MicroBlogKey) {
  s.mu.Lock()
  defer s.mu.Unlock()
  if session, ok := s.items[accountKey.String()]; ok {
    session.Lifecycle.Destroy()
    delete(s.items, accountKey.String())
  }
}

func (s *Sessions) Close() {
  s.mu.Lock()
  defer s.mu.Unlock()
  for key, session := range s.items {
    session.Lifecycle.Destroy()
    delete(s.items, key)
  }
}

// Each reports the sessions currently open.
func (s *Sessions) Each(fn func(accountKey string, session *Session)) {
  s.mu.Lock()
  items := make(map[string]*Session, len(s.items))
  for key, session := range s.items {
    items[key] = session
  }
  s.mu.Unlock()
  for key, session := range items {
    fn(key, session)
  }
}

func (s *Session) Timeline(kind viewmodels.TimelineKind, build func(account *repositories.AccountDetails) *viewmodels.TimelineViewModel) (vm *viewmodels.TimelineViewModel, created bool) {
  s.mu.Lock()
  defer s.mu.Unlock()
  if vm, ok := s.timelines[kind]; ok {
    return vm, false
  }
  vm = build(s.Account.Value())
  vm.BindLifecycle(s.Lifecycle)
  s.timelines[kind] = vm
  return vm, true
}

// Timelines returns the timeline view models opened so far.
func (s *Session) Timelines() []*viewmodels.TimelineViewModel {
  s.mu.Lock()
  defer s.mu.Unlock()
  items := make([]*viewmodels.TimelineViewModel, 0, len(s.timelines))
  for _, vm := range s.timelines {
    items = append(items, vm)
  }
  return items
}

func (s *Session) Conversations(build func(account *flow.StateFlow[*repositories.AccountDetails]) *viewmodels.DMConversationViewModel) (vm *viewmodels.DMConversationViewModel, created bool) {
  s.mu.Lock()
  defer s.mu.Unlock()
  if s.conversations != nil {
    return s.conversations, false
  }
  vm = build(s.Account)
  vm.BindLifecycle(s.Lifecycle)
  s.conversations = vm
  return vm, true
}

func openScreen[T screenViewModel](s *Session, name string, key string, build func(account *repositories.AccountDetails) T) (vm T, created bool) {
  s.mu.Lock()
  defer s.mu.Unlock()
  if current, ok := s.screens[name]; ok {
    if current.key == key {
      return current.vm.(T), false
    }
    current.vm.Clear()
  }
  vm = build(s.Account.Value())
  vm.BindLifecycle(s.Lifecycle)
  s.screens[name] = &screen{key: key, vm: vm}
  return vm, true
}

func (s *Session) SearchUser(keyword string, build func(account *repositories.AccountDetails) *viewmodels.SearchUserViewModel) (*viewmodels.SearchUserViewModel, bool) {
  return openScreen(s, "search:users", keyword, build)
}

func (s *Session) SearchStatuses(keyword string, build func(account *repositories.AccountDetails) *viewmodels.StatusListViewModel) (*viewmodels.StatusListViewModel, bool) {
  return openScreen(s, "search:statuses", keyword, build)
}

func (s *Session) SearchMedia(keyword string, build func(account *repositories.AccountDetails) *viewmodels.StatusListViewModel) (*viewmodels.StatusListViewModel, bool) {
  return openScreen(s, "search:media", keyword, build)
}

func (s *Session) UserTimeline(key string, build func(account *repositories.AccountDetails) *viewmodels.StatusListViewModel) (*viewmodels.StatusListViewModel, bool) {
  return openScreen(s, "user:timeline", key, build)
}

func (s *Session) DMEvents(conversationKey string, build func(account *repositories.AccountDetails) *viewmodels.DMEventViewModel) (*viewmodels.DMEventViewModel, bool) {
  return openScreen(s, "dm:events", conversationKey, build)
}
