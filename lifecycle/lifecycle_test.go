package lifecycle

import (
  "context"
  "sync"
  "sync/atomic"
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/flow"
)

func TestMoveToDestroyedIsTerminal(t *testing.T) {
  l := New()
  require.Equal(t, Initialized, l.State())

  l.MoveTo(Resumed)
  require.True(t, l.State().IsAtLeast(Started))

  l.Destroy()
  require.Equal(t, Destroyed, l.State())
  require.Error(t, l.Context().Err())

  l.MoveTo(Resumed)
  require.Equal(t, Destroyed, l.State())
  require.Equal(t, "destroyed", l.State().String())
}

func TestDestroyWinsConcurrentMoves(t *testing.T) {
  for i := 0; i < 50; i++ {
    l := New()
    var wg sync.WaitGroup
    for j := 0; j < 8; j++ {
      wg.Add(2)
      go func() {
        defer wg.Done()
        l.MoveTo(Resumed)
      }()
      go func() {
        defer wg.Done()
        l.MoveTo(Created)
      }()
    }
    wg.Add(1)
    go func() {
      defer wg.Done()
      l.Destroy()
    }()
    wg.Wait()
    require.Equal(t, Destroyed, l.State())
    require.Error(t, l.Context().Err())
  }
}

func TestRepeatOnLifecycle(t *testing.T) {
  l := New()
  var runs, active int32
  done := make(chan struct{})
  go func() {
    defer close(done)
    RepeatOnLifecycle(context.Background(), l, Started, func(ctx context.Context) {
      atomic.AddInt32(&runs, 1)
      atomic.AddInt32(&active, 1)
      <-ctx.Done()
      atomic.AddInt32(&active, -1)
    })
  }()

  l.MoveTo(Started)
  require.Eventually(t, func() bool {
    return atomic.LoadInt32(&active) == 1
  }, time.Second, 10*time.Millisecond)

  l.MoveTo(Created)
  require.Eventually(t, func() bool {
    return atomic.LoadInt32(&active) == 0
  }, time.Second, 10*time.Millisecond)

  l.MoveTo(Resumed)
  require.Eventually(t, func() bool {
    return atomic.LoadInt32(&runs) == 2
  }, time.Second, 10*time.Millisecond)

  l.Destroy()
  select {
  case <-done:
  case <-time.After(time.Second):
    t.Fatal("RepeatOnLifecycle did not return")
  }
  require.Equal(t, int32(0), atomic.LoadInt32(&active))
}

func TestObserveAsState(t *testing.T) {
  l := New()
  src := flow.NewStateFlow("a")
  out := ObserveAsState(l, src, "")
  time.Sleep(20 * time.Millisecond)
  require.Equal(t, "", out.Value())

  l.MoveTo(Started)
  require.Eventually(t, func() bool {
    return out.Value() == "a"
  }, time.Second, 10*time.Millisecond)

  src.Set("b")
  require.Eventually(t, func() bool {
    return out.Value() == "b"
  }, time.Second, 10*time.Millisecond)
  l.Destroy()
}
