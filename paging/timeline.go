package paging

import (
  "context"
  "fmt"
  "time"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
)

type StatusFetcher func(ctx context.Context, pageSize int, paging services.Paging) ([]*services.Status, error)

// TimelineMediator pages a timeline by max_id. With DetectGaps a refresh keeps
// the cached rows and flags the oldest fetched entry when the page is full and
// does not overlap what is already cached.
type TimelineMediator struct {
  Cache      *repositories.CacheRepository
  AccountKey models.MicroBlogKey
  PagingKey  string
  Fetch      StatusFetcher
  Locker     Locker
  DetectGaps bool
}

func NewHomeTimelineMediator(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  service services.TimelineService,
  locker Locker,
) *TimelineMediator {
  return &TimelineMediator{
    Cache:      cache,
    AccountKey: accountKey,
    PagingKey:  config.PAGING_KEY_HOME,
    Fetch:      service.HomeTimeline,
    Locker:     locker,
    DetectGaps: true,
  }
}

func NewMentionTimelineMediator(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  service services.TimelineService,
  locker Locker,
) *TimelineMediator {
  return &TimelineMediator{
    Cache:      cache,
    AccountKey: accountKey,
    PagingKey:  config.PAGING_KEY_MENTIONS,
    Fetch:      service.MentionsTimeline,
    Locker:     locker,
    DetectGaps: true,
  }
}

func NewUserTimelineMediator(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  userKey models.MicroBlogKey,
  service services.TimelineService,
  excludeReplies bool,
  locker Locker,
) *TimelineMediator {
  pagingKey := fmt.Sprintf(config.PAGING_KEY_USER, userKey.String())
  if excludeReplies {
    pagingKey += ":exclude_replies"
  }
  return &TimelineMediator{
    Cache:      cache,
    AccountKey: accountKey,
    PagingKey:  pagingKey,
    Fetch: func(ctx context.Context, pageSize int, paging services.Paging) ([]*services.Status, error) {
      return service.UserTimeline(ctx, userKey.ID, pageSize, paging, excludeReplies)
    },
    Locker: locker,
  }
}

func (m *TimelineMediator) Load(ctx context.Context, loadType LoadType, state PagingState[*models.TimelineItem]) MediatorResult {
  pageSize := state.Config.pageSize()
  paging := services.Paging{}
  switch loadType {
  case Prepend:
    return Success{EndOfPaginationReached: true}
  case Append:
    last, ok := state.LastItem()
    if !ok || last == nil || last.Paging == nil {
      return Success{EndOfPaginationReached: true}
    }
    paging.MaxID = last.Paging.StatusKey.ID
  }

  unlock, result := lockPaging(ctx, m.Locker, m.lockKey(), m.PagingKey)
  if result != nil {
    return result
  }
  defer unlock()

  statuses, err := m.Fetch(ctx, pageSize, paging)
  if err != nil {
    return Error{Err: err}
  }
  fetched := len(statuses)
  statuses = excludeStatus(statuses, paging.MaxID)

  markGap := m.DetectGaps && loadType == Refresh && fetched >= pageSize
  err = m.save(ctx, statuses, &repositories.TimelineWrite{
    Clear: loadType == Refresh && !m.DetectGaps,
  }, markGap)
  if err != nil {
    return Error{Err: err}
  }
  return Success{EndOfPaginationReached: len(statuses) == 0}
}

// LoadBetween fills the gap below maxID down to sinceID. The gap flag moves to
// the oldest fetched entry while the page comes back full.
func (m *TimelineMediator) LoadBetween(ctx context.Context, pageSize int, maxID string, sinceID string) error {
  if pageSize <= 0 {
    pageSize = config.DEFAULT_LOAD_COUNT
  }
  unlock, ok, err := acquire(ctx, m.Locker, m.lockKey(), time.Duration(config.LOCKS_PAGING_TTL)*time.Second)
  if err != nil {
    return fmt.Errorf("paging lock %s: %w", m.PagingKey, err)
  }
  if !ok {
    return fmt.Errorf("paging busy: %s", m.PagingKey)
  }
  defer unlock()

  statuses, err := m.Fetch(ctx, pageSize, services.Paging{MaxID: maxID, SinceID: sinceID})
  if err != nil {
    return err
  }
  fetched := len(statuses)
  statuses = excludeStatus(excludeStatus(statuses, maxID), sinceID)
  gapKey := models.MicroBlogKey{ID: maxID, Host: m.AccountKey.Host}
  return m.save(ctx, statuses, &repositories.TimelineWrite{
    ClearGap: &gapKey,
  }, fetched >= pageSize)
}

func (m *TimelineMediator) save(ctx context.Context, statuses []*services.Status, w *repositories.TimelineWrite, markGap bool) error {
  w.AccountKey = m.AccountKey
  w.PagingKey = m.PagingKey
  w.Bundle = transform.StatusesToDb(m.AccountKey, statuses)
  keys := make([]models.MicroBlogKey, len(statuses))
  for i, status := range statuses {
    timestamp := status.CreatedAt.UnixMilli()
    keys[i] = status.Key()
    w.Entries = append(w.Entries, &models.PagingTimeline{
      AccountKey: m.AccountKey,
      PagingKey:  m.PagingKey,
      StatusKey:  status.Key(),
      Timestamp:  timestamp,
      SortID:     timestamp,
    })
  }
  if markGap && len(w.Entries) > 0 {
    cached := m.Cache.TimelineCount(ctx, m.AccountKey, m.PagingKey)
    existing := m.Cache.ExistingCount(ctx, m.AccountKey, m.PagingKey, keys)
    if cached > 0 && existing == 0 {
      w.Entries[len(w.Entries)-1].IsGap = true
    }
  }
  return m.Cache.SaveTimeline(ctx, w)
}

func (m *TimelineMediator) lockKey() string {
  return fmt.Sprintf(config.LOCKS_PAGING_REFRESH, m.AccountKey.String(), m.PagingKey)
}

func excludeStatus(statuses []*services.Status, id string) []*services.Status {
  if id == "" {
    return statuses
  }
  result := make([]*services.Status, 0, len(statuses))
  for _, status := range statuses {
    if status.ID != id {
      result = append(result, status)
    }
  }
  return result
}
