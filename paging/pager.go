package paging

import (
  "context"
  "sync"

  "twiderex.local/twiderex/flow"
)

type LoadState struct {
  Loading                bool  `json:"loading"`
  EndOfPaginationReached bool  `json:"end_of_pagination_reached"`
  Err                    error `json:"-"`
}

func (s LoadState) Message() string {
  if s.Err == nil {
    return ""
  }
  return s.Err.Error()
}

type PagingData[T any] struct {
  Items   []T       `json:"items"`
  Refresh LoadState `json:"refresh"`
  Append  LoadState `json:"append"`
}

type CacheReader[T any] func(ctx context.Context, offset int, limit int) ([]T, error)

// Pager drives either a mediator backed by a cache reader or a plain paging
// source, and publishes what has been loaded so far.
type Pager[T any] struct {
  Config   PagingConfig
  mediator RemoteMediator[T]
  reader   CacheReader[T]
  source   PagingSource[T]
  nextKey  int
  mu       sync.Mutex
  data     *flow.StateFlow[PagingData[T]]
}

func NewMediatorPager[T any](config PagingConfig, mediator RemoteMediator[T], reader CacheReader[T]) *Pager[T] {
  return &Pager[T]{
    Config:   config,
    mediator: mediator,
    reader:   reader,
    data:     flow.NewStateFlow(PagingData[T]{}),
  }
}

func NewSourcePager[T any](config PagingConfig, source PagingSource[T]) *Pager[T] {
  return &Pager[T]{
    Config: config,
    source: source,
    data:   flow.NewStateFlow(PagingData[T]{}),
  }
}

func (p *Pager[T]) Flow() *flow.StateFlow[PagingData[T]] {
  return p.data
}

func (p *Pager[T]) Refresh(ctx context.Context) error {
  p.mu.Lock()
  defer p.mu.Unlock()
  p.data.Update(func(data PagingData[T]) PagingData[T] {
    data.Refresh = LoadState{Loading: true}
    return data
  })
  if p.source != nil {
    return p.loadSource(ctx, 0, true)
  }

  current := p.data.Value()
  result := p.mediator.Load(ctx, Refresh, p.state(current.Items))
  refresh, end := resultState(result)
  items, err := p.reader(ctx, 0, p.Config.pageSize())
  if err != nil {
    refresh.Err = err
    items = current.Items
  }
  p.data.Set(PagingData[T]{
    Items:   items,
    Refresh: refresh,
    Append:  LoadState{EndOfPaginationReached: end && refresh.Err == nil},
  })
  return refresh.Err
}

// LoadMore pages from the cache first and asks the mediator only when the
// cache has nothing past what is shown.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
  p.mu.Lock()
  defer p.mu.Unlock()
  current := p.data.Value()
  if current.Append.EndOfPaginationReached {
    return nil
  }
  p.data.Update(func(data PagingData[T]) PagingData[T] {
    data.Append = LoadState{Loading: true}
    return data
  })
  if p.source != nil {
    if p.nextKey == 0 {
      p.data.Update(func(data PagingData[T]) PagingData[T] {
        data.Append = LoadState{EndOfPaginationReached: true}
        return data
      })
      return nil
    }
    return p.loadSource(ctx, p.nextKey, false)
  }

  limit := len(current.Items) + p.Config.pageSize()
  items, err := p.reader(ctx, 0, limit)
  if err != nil {
    p.setAppend(current.Items, LoadState{Err: err})
    return err
  }
  if len(items) > len(current.Items) {
    p.setAppend(items, LoadState{})
    return nil
  }
  result := p.mediator.Load(ctx, Append, p.state(current.Items))
  state, end := resultState(result)
  state.EndOfPaginationReached = end
  items, err = p.reader(ctx, 0, limit)
  if err != nil {
    state.Err = err
    items = current.Items
  }
  p.setAppend(items, state)
  return state.Err
}

// Reload re-reads the cached window without touching the network.
func (p *Pager[T]) Reload(ctx context.Context) error {
  if p.reader == nil {
    return nil
  }
  p.mu.Lock()
  defer p.mu.Unlock()
  current := p.data.Value()
  limit := len(current.Items)
  if limit < p.Config.pageSize() {
    limit = p.Config.pageSize()
  }
  items, err := p.reader(ctx, 0, limit)
  if err != nil {
    return err
  }
  p.data.Update(func(data PagingData[T]) PagingData[T] {
    data.Items = items
    return data
  })
  return nil
}

func (p *Pager[T]) loadSource(ctx context.Context, key int, refresh bool) error {
  result := p.source.Load(ctx, LoadParams{Key: key, LoadSize: p.Config.pageSize()})
  p.data.Update(func(data PagingData[T]) PagingData[T] {
    if result.Err != nil {
      if refresh {
        data.Refresh = LoadState{Err: result.Err}
      } else {
        data.Append = LoadState{Err: result.Err}
      }
      return data
    }
    if refresh {
      data.Items = result.Data
      data.Refresh = LoadState{}
    } else {
      data.Items = append(append([]T{}, data.Items...), result.Data...)
    }
    data.Append = LoadState{EndOfPaginationReached: result.NextKey == 0}
    return data
  })
  if result.Err == nil {
    p.nextKey = result.NextKey
  }
  return result.Err
}

func (p *Pager[T]) setAppend(items []T, state LoadState) {
  p.data.Update(func(data PagingData[T]) PagingData[T] {
    data.Items = items
    data.Append = state
    return data
  })
}

func (p *Pager[T]) state(items []T) PagingState[T] {
  return PagingState[T]{
    Pages:          [][]T{items},
    AnchorPosition: len(items) - 1,
    Config:         p.Config,
  }
}

func resultState(result MediatorResult) (state LoadState, end bool) {
  switch r := result.(type) {
  case Success:
    end = r.EndOfPaginationReached
  case Error:
    state.Err = r.Err
  }
  return
}
