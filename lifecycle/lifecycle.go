package lifecycle

import (
  "context"
  "sync"

  "twiderex.local/twiderex/flow"
)

type State int

const (
  Destroyed State = iota
  Initialized
  Created
  Started
  Resumed
)

func (s State) String() string {
  switch s {
  case Destroyed:
    return "destroyed"
  case Initialized:
    return "initialized"
  case Created:
    return "created"
  case Started:
    return "started"
  case Resumed:
    return "resumed"
  }
  return "unknown"
}

func (s State) IsAtLeast(other State) bool {
  return s >= other
}

type Lifecycle struct {
  state  *flow.StateFlow[State]
  ctx    context.Context
  cancel context.CancelFunc
  once   sync.Once
}

func New() *Lifecycle {
  ctx, cancel := context.WithCancel(context.Background())
  return &Lifecycle{
    state:  flow.NewStateFlow(Initialized),
    ctx:    ctx,
    cancel: cancel,
  }
}

func (l *Lifecycle) State() State {
  return l.state.Value()
}

func (l *Lifecycle) States() *flow.StateFlow[State] {
  return l.state
}

// MoveTo changes the current state. Destroyed is terminal.
func (l *Lifecycle) MoveTo(state State) {
  destroyed := false
  l.state.Update(func(current State) State {
    if current == Destroyed {
      return current
    }
    destroyed = state == Destroyed
    return state
  })
  if destroyed {
    l.once.Do(l.cancel)
  }
}

func (l *Lifecycle) Destroy() {
  l.MoveTo(Destroyed)
}

func (l *Lifecycle) Context() context.Context {
  return l.ctx
}

// RepeatOnLifecycle runs block each time the lifecycle reaches min and
// cancels it when the lifecycle falls below. It returns once the lifecycle is
// destroyed or ctx is done.
func RepeatOnLifecycle(ctx context.Context, l *Lifecycle, min State, block func(ctx context.Context)) {
  ctx, stop := context.WithCancel(ctx)
  defer stop()

  var wg sync.WaitGroup
  defer wg.Wait()

  var cancel context.CancelFunc
  for state := range l.state.Subscribe(ctx) {
    if state == Destroyed {
      break
    }
    if state >= min && cancel == nil {
      var blockCtx context.Context
      blockCtx, cancel = context.WithCancel(ctx)
      wg.Add(1)
      go func() {
        defer wg.Done()
        block(blockCtx)
      }()
    } else if state < min && cancel != nil {
      cancel()
      cancel = nil
    }
  }
  if cancel != nil {
    cancel()
  }
}

// FlowWithLifecycle forwards values from src while the lifecycle is at least
// Started. The channel closes when the lifecycle is destroyed.
func FlowWithLifecycle[T any](l *Lifecycle, src *flow.StateFlow[T], min State) <-chan T {
  out := make(chan T)
  go func() {
    defer close(out)
    RepeatOnLifecycle(l.Context(), l, min, func(ctx context.Context) {
      for value := range src.Subscribe(ctx) {
        select {
        case out <- value:
        case <-ctx.Done():
          return
        }
      }
    })
  }()
  return out
}

func ObserveAsState[T any](l *Lifecycle, src *flow.StateFlow[T], initial T) *flow.StateFlow[T] {
  out := flow.NewStateFlow(initial)
  go func() {
    for value := range FlowWithLifecycle(l, src, Started) {
      out.Set(value)
    }
  }()
  return out
}
