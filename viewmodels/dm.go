package viewmodels

import (
  "context"

  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/paging"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

type ConversationsData = paging.PagingData[ui.DMConversationWithLatestMessage]

// DMConversationViewModel lists the conversations of whichever account is
// active, switching pagers when the account changes.
type DMConversationViewModel struct {
  ViewModel
  Cache  *repositories.CacheRepository
  Locker paging.Locker
  Source *flow.StateFlow[ConversationsData]
  pager  *flow.StateFlow[dmPager]
}

type dmPager struct {
  pager    *paging.Pager[*models.DMConversationDetail]
  resolved bool
}

func NewDMConversationViewModel(
  cache *repositories.CacheRepository,
  account *flow.StateFlow[*repositories.AccountDetails],
  locker paging.Locker,
) *DMConversationViewModel {
  vm := &DMConversationViewModel{
    Cache:  cache,
    Locker: locker,
    pager:  flow.NewStateFlow(dmPager{}),
  }
  vm.Source = flow.FlatMapLatest(vm.Scope(), account, ConversationsData{}, vm.source)
  return vm
}

func (vm *DMConversationViewModel) source(ctx context.Context, account *repositories.AccountDetails) *flow.StateFlow[ConversationsData] {
  if account == nil {
    vm.pager.Set(dmPager{resolved: true})
    return flow.NewStateFlow(ConversationsData{})
  }
  service, ok := account.Service.(services.DirectMessageService)
  if !ok {
    vm.pager.Set(dmPager{resolved: true})
    return flow.NewStateFlow(ConversationsData{})
  }
  pager := paging.NewDMConversationPager(vm.Cache, account.AccountKey, service, account.Service, vm.Locker)
  vm.pager.Set(dmPager{pager: pager, resolved: true})
  return flow.Map(ctx, pager.Flow(), conversationsData)
}

func conversationsData(data paging.PagingData[*models.DMConversationDetail]) ConversationsData {
  items := make([]ui.DMConversationWithLatestMessage, len(data.Items))
  for i, item := range data.Items {
    items[i] = transform.DMConversationToUi(item)
  }
  return ConversationsData{Items: items, Refresh: data.Refresh, Append: data.Append}
}

// current waits until the pager of the latest account has been built.
func (vm *DMConversationViewModel) current(ctx context.Context) *paging.Pager[*models.DMConversationDetail] {
  for state := range vm.pager.Subscribe(ctx) {
    if state.resolved {
      return state.pager
    }
  }
  return nil
}

// Snapshot reads the loaded conversations without waiting for Source.
func (vm *DMConversationViewModel) Snapshot(ctx context.Context) ConversationsData {
  if pager := vm.current(ctx); pager != nil {
    return conversationsData(pager.Flow().Value())
  }
  return ConversationsData{}
}

func (vm *DMConversationViewModel) Refresh(ctx context.Context) error {
  if pager := vm.current(ctx); pager != nil {
    return pager.Refresh(ctx)
  }
  return ErrNoActiveAccount
}

func (vm *DMConversationViewModel) LoadMore(ctx context.Context) error {
  if pager := vm.current(ctx); pager != nil {
    return pager.LoadMore(ctx)
  }
  return ErrNoActiveAccount
}

type DMEventsData = paging.PagingData[ui.DMEvent]

// DMEventViewModel pages the messages of one conversation, newest first.
type DMEventViewModel struct {
  ViewModel
  ConversationKey models.MicroBlogKey
  pager           *paging.Pager[*models.DMEventDetail]
}

func NewDMEventViewModel(
  cache *repositories.CacheRepository,
  account *repositories.AccountDetails,
  conversationKey models.MicroBlogKey,
  service services.DirectMessageService,
  locker paging.Locker,
) *DMEventViewModel {
  return &DMEventViewModel{
    ConversationKey: conversationKey,
    pager:           paging.NewDMEventPager(cache, account.AccountKey, conversationKey, service, account.Service, locker),
  }
}

func dmEventsData(data paging.PagingData[*models.DMEventDetail]) DMEventsData {
  items := make([]ui.DMEvent, len(data.Items))
  for i, item := range data.Items {
    items[i] = transform.DMEventToUi(item.Event, item.Sender)
  }
  return DMEventsData{Items: items, Refresh: data.Refresh, Append: data.Append}
}

func (vm *DMEventViewModel) Snapshot() DMEventsData {
  return dmEventsData(vm.pager.Flow().Value())
}

func (vm *DMEventViewModel) Refresh(ctx context.Context) error {
  return vm.pager.Refresh(ctx)
}

func (vm *DMEventViewModel) LoadMore(ctx context.Context) error {
  return vm.pager.LoadMore(ctx)
}
