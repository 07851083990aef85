package paging

import (
  "context"
  "fmt"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/repositories"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
)

type CursorFetcher func(ctx context.Context, pageSize int, cursor string) (*services.SearchResult, error)

// CursorTimelineMediator pages by an opaque next cursor stored per paging key.
// Results carry no usable timestamp order, so entries get descending sort ids
// below whatever is already cached.
type CursorTimelineMediator struct {
  Cache      *repositories.CacheRepository
  AccountKey models.MicroBlogKey
  PagingKey  string
  Fetch      CursorFetcher
  Filter     func(status *services.Status) bool
  Locker     Locker
}

func NewSearchStatusMediator(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  query string,
  service services.SearchService,
  locker Locker,
) *CursorTimelineMediator {
  return &CursorTimelineMediator{
    Cache:      cache,
    AccountKey: accountKey,
    PagingKey:  fmt.Sprintf(config.PAGING_KEY_SEARCH_STATUS, query),
    Fetch: func(ctx context.Context, pageSize int, cursor string) (*services.SearchResult, error) {
      return service.SearchStatuses(ctx, query, pageSize, cursor)
    },
    Locker: locker,
  }
}

func NewSearchMediaMediator(
  cache *repositories.CacheRepository,
  accountKey models.MicroBlogKey,
  query string,
  service services.SearchService,
  locker Locker,
) *CursorTimelineMediator {
  return &CursorTimelineMediator{
    Cache:      cache,
    AccountKey: accountKey,
    PagingKey:  fmt.Sprintf(config.PAGING_KEY_SEARCH_MEDIA, query),
    Fetch: func(ctx context.Context, pageSize int, cursor string) (*services.SearchResult, error) {
      return service.SearchMedia(ctx, query, pageSize, cursor)
    },
    Filter: func(status *services.Status) bool {
      return status.HasMedia()
    },
    Locker: locker,
  }
}

// Load reads the stored cursor and the lowest sort id only while holding the
// paging lock, so concurrent appends never hand out the same sort ids.
func (m *CursorTimelineMediator) Load(ctx context.Context, loadType LoadType, state PagingState[*models.TimelineItem]) MediatorResult {
  if loadType == Prepend {
    return Success{EndOfPaginationReached: true}
  }

  key := fmt.Sprintf(config.LOCKS_PAGING_REFRESH, m.AccountKey.String(), m.PagingKey)
  unlock, locked := lockPaging(ctx, m.Locker, key, m.PagingKey)
  if locked != nil {
    return locked
  }
  defer unlock()

  cursor := ""
  var base int64
  if loadType == Append {
    var err error
    cursor, err = m.Cache.Cursor(ctx, m.AccountKey, m.PagingKey)
    if err != nil {
      return Error{Err: err}
    }
    if cursor == "" {
      return Success{EndOfPaginationReached: true}
    }
    base, err = m.Cache.MinSortID(ctx, m.AccountKey, m.PagingKey)
    if err != nil {
      return Error{Err: err}
    }
  }

  result, err := m.Fetch(ctx, state.Config.pageSize(), cursor)
  if err != nil {
    return Error{Err: err}
  }
  statuses := result.Statuses
  if m.Filter != nil {
    statuses = make([]*services.Status, 0, len(result.Statuses))
    for _, status := range result.Statuses {
      if m.Filter(status) {
        statuses = append(statuses, status)
      }
    }
  }

  nextKey := result.NextPage
  w := &repositories.TimelineWrite{
    AccountKey: m.AccountKey,
    PagingKey:  m.PagingKey,
    Bundle:     transform.StatusesToDb(m.AccountKey, statuses),
    Clear:      loadType == Refresh,
    NextKey:    &nextKey,
  }
  for i, status := range statuses {
    w.Entries = append(w.Entries, &models.PagingTimeline{
      AccountKey: m.AccountKey,
      PagingKey:  m.PagingKey,
      StatusKey:  status.Key(),
      Timestamp:  status.CreatedAt.UnixMilli(),
      SortID:     base - int64(i) - 1,
    })
  }
  if err := m.Cache.SaveTimeline(ctx, w); err != nil {
    return Error{Err: err}
  }
  return Success{EndOfPaginationReached: nextKey == "" || len(result.Statuses) == 0}
}
