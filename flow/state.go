package flow

import (
  "context"
  "sync"
)

// StateFlow holds a current value and fans it out to subscribers. Each
// subscriber receives the latest value only; intermediate values are dropped
// when it falls behind.
type StateFlow[T any] struct {
  mu          sync.RWMutex
  value       T
  subscribers map[chan T]struct{}
}

func NewStateFlow[T any](initial T) *StateFlow[T] {
  return &StateFlow[T]{
    value:       initial,
    subscribers: map[chan T]struct{}{},
  }
}

func (f *StateFlow[T]) Value() T {
  f.mu.RLock()
  defer f.mu.RUnlock()
  return f.value
}

func (f *StateFlow[T]) Set(value T) {
  f.mu.Lock()
  defer f.mu.Unlock()
  f.value = value
  for ch := range f.subscribers {
    offer(ch, value)
  }
}

func (f *StateFlow[T]) Update(fn func(T) T) {
  f.mu.Lock()
  defer f.mu.Unlock()
  f.value = fn(f.value)
  for ch := range f.subscribers {
    offer(ch, f.value)
  }
}

func offer[T any](ch chan T, value T) {
  select {
  case ch <- value:
    return
  default:
  }
  select {
  case <-ch:
  default:
  }
  select {
  case ch <- value:
  default:
  }
}

// Subscribe emits the current value first. The channel is closed when ctx is
// done.
func (f *StateFlow[T]) Subscribe(ctx context.Context) <-chan T {
  ch := make(chan T, 1)
  out := make(chan T)

  f.mu.Lock()
  ch <- f.value
  f.subscribers[ch] = struct{}{}
  f.mu.Unlock()

  go func() {
    defer close(out)
    defer func() {
      f.mu.Lock()
      delete(f.subscribers, ch)
      f.mu.Unlock()
    }()
    for {
      select {
      case <-ctx.Done():
        return
      case value := <-ch:
        select {
        case out <- value:
        case <-ctx.Done():
          return
        }
      }
    }
  }()
  return out
}
