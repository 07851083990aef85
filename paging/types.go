package paging

import (
  "context"
  "fmt"
  "log"
  "time"

  "twiderex.local/twiderex/config"
)

type LoadType int

const (
  Refresh LoadType = iota
  Prepend
  Append
)

func (t LoadType) String() string {
  switch t {
  case Refresh:
    return "refresh"
  case Prepend:
    return "prepend"
  case Append:
    return "append"
  }
  return "unknown"
}

type PagingConfig struct {
  PageSize int
}

func DefaultConfig() PagingConfig {
  return PagingConfig{PageSize: config.DEFAULT_LOAD_COUNT}
}

func (c PagingConfig) pageSize() int {
  if c.PageSize <= 0 {
    return config.DEFAULT_LOAD_COUNT
  }
  return c.PageSize
}

type PagingState[T any] struct {
  Pages          [][]T
  AnchorPosition int
  Config         PagingConfig
}

func (s PagingState[T]) LastItem() (item T, ok bool) {
  for i := len(s.Pages) - 1; i >= 0; i-- {
    if page := s.Pages[i]; len(page) > 0 {
      return page[len(page)-1], true
    }
  }
  return
}

type MediatorResult interface {
  mediatorResult()
}

type Success struct {
  EndOfPaginationReached bool
}

type Error struct {
  Err error
}

func (Success) mediatorResult() {}
func (Error) mediatorResult()   {}

type RemoteMediator[T any] interface {
  Load(ctx context.Context, loadType LoadType, state PagingState[T]) MediatorResult
}

// Locker serializes refreshes of one paging key across processes. ok is false
// when another holder has the key; err reports that the lock store failed.
type Locker interface {
  Acquire(ctx context.Context, key string, ttl time.Duration) (unlock func(), ok bool, err error)
}

func acquire(ctx context.Context, locker Locker, key string, ttl time.Duration) (func(), bool, error) {
  if locker == nil {
    return func() {}, true, nil
  }
  return locker.Acquire(ctx, key, ttl)
}

// lockPaging takes the refresh lock of pagingKey. A nil result means the
// caller holds the lock and must call unlock; otherwise the result is what
// Load reports: Error when the locker failed, a non-final Success when the key
// is busy.
func lockPaging(ctx context.Context, locker Locker, key string, pagingKey string) (func(), MediatorResult) {
  unlock, ok, err := acquire(ctx, locker, key, time.Duration(config.LOCKS_PAGING_TTL)*time.Second)
  if err != nil {
    return nil, Error{Err: fmt.Errorf("paging lock %s: %w", pagingKey, err)}
  }
  if !ok {
    log.Println("paging busy:", pagingKey)
    return nil, Success{EndOfPaginationReached: false}
  }
  return unlock, nil
}
