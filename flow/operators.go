package flow

import (
  "context"
  "sync"
)

// Map seeds the output from the first emission of its own subscription, so the
// seed is never published a second time.
func Map[T any, R any](ctx context.Context, src *StateFlow[T], fn func(T) R) *StateFlow[R] {
  values := src.Subscribe(ctx)
  seed, ok := <-values
  if !ok {
    seed = src.Value()
  }
  out := NewStateFlow(fn(seed))
  go func() {
    for value := range values {
      out.Set(fn(value))
    }
  }()
  return out
}

// Combine publishes fn over the latest pair. Both subscriptions are taken
// before the seed is computed, and their first emissions are the seed.
func Combine[A any, B any, R any](ctx context.Context, a *StateFlow[A], b *StateFlow[B], fn func(A, B) R) *StateFlow[R] {
  as := a.Subscribe(ctx)
  bs := b.Subscribe(ctx)
  av, aok := <-as
  bv, bok := <-bs
  if !aok {
    av = a.Value()
  }
  if !bok {
    bv = b.Value()
  }
  out := NewStateFlow(fn(av, bv))
  if !aok || !bok {
    return out
  }
  go func() {
    for {
      select {
      case value, ok := <-as:
        if !ok {
          return
        }
        av = value
      case value, ok := <-bs:
        if !ok {
          return
        }
        bv = value
      }
      out.Set(fn(av, bv))
    }
  }()
  return out
}

// FlatMapLatest switches to the flow produced for the newest source value,
// cancelling the context handed to the previous one.
func FlatMapLatest[T any, R any](
  ctx context.Context,
  src *StateFlow[T],
  initial R,
  fn func(ctx context.Context, value T) *StateFlow[R],
) *StateFlow[R] {
  out := NewStateFlow(initial)
  go func() {
    var mu sync.Mutex
    generation := 0
    cancel := func() {}
    defer func() {
      cancel()
    }()
    for value := range src.Subscribe(ctx) {
      cancel()
      var innerCtx context.Context
      innerCtx, cancel = context.WithCancel(ctx)
      mu.Lock()
      generation++
      current := generation
      mu.Unlock()
      inner := fn(innerCtx, value)
      if inner == nil {
        continue
      }
      go func() {
        for v := range inner.Subscribe(innerCtx) {
          mu.Lock()
          if current == generation {
            out.Set(v)
          }
          mu.Unlock()
        }
      }()
    }
  }()
  return out
}

func Collect[T any](ctx context.Context, src *StateFlow[T], fn func(T)) {
  go func() {
    for value := range src.Subscribe(ctx) {
      fn(value)
    }
  }()
}
