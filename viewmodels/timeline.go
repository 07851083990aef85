package viewmodels

import (
  "context"
  "fmt"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/paging"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

type TimelineKind string

const (
  TimelineHome     TimelineKind = "home"
  TimelineMentions TimelineKind = "mentions"
)

func ParseTimelineKind(value string) (TimelineKind, error) {
  switch TimelineKind(value) {
  case TimelineHome, TimelineMentions:
    return TimelineKind(value), nil
  }
  return "", fmt.Errorf("unknown timeline: %s", value)
}

type TimelineData = paging.PagingData[ui.Timeline]

// TimelineViewModel pages a home or mentions timeline out of the cache and
// fills gaps on request.
type TimelineViewModel struct {
  ViewModel
  Kind         TimelineKind
  Notification *actions.InAppNotification
  Source       *flow.StateFlow[TimelineData]
  mediator     *paging.TimelineMediator
  pager        *paging.Pager[*models.TimelineItem]
  loading      *flow.StateFlow[map[string]bool]
}

func NewTimelineMediator(
  kind TimelineKind,
  cache *repositories.CacheRepository,
  account *repositories.AccountDetails,
  locker paging.Locker,
) *paging.TimelineMediator {
  if kind == TimelineMentions {
    return paging.NewMentionTimelineMediator(cache, account.AccountKey, account.Service, locker)
  }
  return paging.NewHomeTimelineMediator(cache, account.AccountKey, account.Service, locker)
}

func NewTimelineViewModel(
  kind TimelineKind,
  cache *repositories.CacheRepository,
  account *repositories.AccountDetails,
  locker paging.Locker,
  notification *actions.InAppNotification,
) *TimelineViewModel {
  mediator := NewTimelineMediator(kind, cache, account, locker)
  vm := &TimelineViewModel{
    Kind:         kind,
    Notification: notification,
    mediator:     mediator,
    pager:        paging.NewTimelinePager(paging.DefaultConfig(), cache, account.AccountKey, mediator.PagingKey, mediator),
    loading:      flow.NewStateFlow(map[string]bool{}),
  }
  vm.Source = flow.Combine(vm.Scope(), vm.pager.Flow(), vm.loading, timelineData)
  return vm
}

func timelineData(data paging.PagingData[*models.TimelineItem], loading map[string]bool) TimelineData {
  return TimelineData{
    Items:   transform.TimelineItemsToUi(data.Items, loading),
    Refresh: data.Refresh,
    Append:  data.Append,
  }
}

// Snapshot reads the loaded page without waiting for Source.
func (vm *TimelineViewModel) Snapshot() TimelineData {
  return timelineData(vm.pager.Flow().Value(), vm.loading.Value())
}

func (vm *TimelineViewModel) Refresh(ctx context.Context) error {
  err := vm.pager.Refresh(ctx)
  vm.notifyError(err)
  return err
}

func (vm *TimelineViewModel) LoadMore(ctx context.Context) error {
  err := vm.pager.LoadMore(ctx)
  vm.notifyError(err)
  return err
}

// Reload shows what the cache holds now, e.g. after a background refresh.
func (vm *TimelineViewModel) Reload(ctx context.Context) error {
  return vm.pager.Reload(ctx)
}

func (vm *TimelineViewModel) LoadGap(ctx context.Context, gap ui.Gap) error {
  key := gap.Key()
  vm.loading.Update(func(loading map[string]bool) map[string]bool {
    next := map[string]bool{key: true}
    for k, v := range loading {
      next[k] = v
    }
    return next
  })
  defer vm.loading.Update(func(loading map[string]bool) map[string]bool {
    next := map[string]bool{}
    for k, v := range loading {
      if k != key {
        next[k] = v
      }
    }
    return next
  })
  err := vm.mediator.LoadBetween(ctx, config.DEFAULT_LOAD_COUNT, gap.MaxID, gap.SinceID)
  if err != nil {
    vm.notifyError(err)
    return err
  }
  return vm.pager.Reload(ctx)
}

func (vm *TimelineViewModel) notifyError(err error) {
  if err != nil && vm.Notification != nil {
    vm.Notification.NotifyError(err)
  }
}
