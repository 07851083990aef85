package viewmodels

import (
  "context"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/paging"
  "twiderex.local/twiderex/repositories"
)

// StatusListViewModel pages a cached status list that never has gaps, such
// as search results or the timeline of one user.
type StatusListViewModel struct {
  ViewModel
  Key          string
  Notification *actions.InAppNotification
  pager        *paging.Pager[*models.TimelineItem]
}

func newStatusListViewModel(
  key string,
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  pagingKey string,
  mediator paging.RemoteMediator[*models.TimelineItem],
  notification *actions.InAppNotification,
) *StatusListViewModel {
  return &StatusListViewModel{
    Key:          key,
    Notification: notification,
    pager:        paging.NewTimelinePager(paging.DefaultConfig(), cache, accountKey, pagingKey, mediator),
  }
}

func NewSearchStatusViewModel(
  cache *repositories.CacheRepository,
  account *repositories.AccountDetails,
  keyword string,
  locker paging.Locker,
  notification *actions.InAppNotification,
) *StatusListViewModel {
  mediator := paging.NewSearchStatusMediator(cache, account.AccountKey, keyword, account.Service, locker)
  return newStatusListViewModel(keyword, cache, account.AccountKey, mediator.PagingKey, mediator, notification)
}

func NewSearchMediaViewModel(
  cache *repositories.CacheRepository,
  account *repositories.AccountDetails,
  keyword string,
  locker paging.Locker,
  notification *actions.InAppNotification,
) *StatusListViewModel {
  mediator := paging.NewSearchMediaMediator(cache, account.AccountKey, keyword, account.Service, locker)
  return newStatusListViewModel(keyword, cache, account.AccountKey, mediator.PagingKey, mediator, notification)
}

func NewUserTimelineViewModel(
  cache *repositories.CacheRepository,
  account *repositories.AccountDetails,
  userKey models.MicroBlogKey,
  excludeReplies bool,
  locker paging.Locker,
  notification *actions.InAppNotification,
) *StatusListViewModel {
  mediator := paging.NewUserTimelineMediator(cache, account.AccountKey, userKey, account.Service, excludeReplies, locker)
  return newStatusListViewModel(mediator.PagingKey, cache, account.AccountKey, mediator.PagingKey, mediator, notification)
}

func (vm *StatusListViewModel) Snapshot() TimelineData {
  return timelineData(vm.pager.Flow().Value(), nil)
}

func (vm *StatusListViewModel) Refresh(ctx context.Context) error {
  err := vm.pager.Refresh(ctx)
  vm.notifyError(err)
  return err
}

func (vm *StatusListViewModel) LoadMore(ctx context.Context) error {
  err := vm.pager.LoadMore(ctx)
  vm.notifyError(err)
  return err
}

func (vm *StatusListViewModel) notifyError(err error) {
  if err != nil && vm.Notification != nil {
    vm.Notification.NotifyError(err)
  }
}
