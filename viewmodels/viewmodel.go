package viewmodels

import (
  "context"
  "errors"
  "sync"

  "twiderex.local/twiderex/lifecycle"
)

var ErrNoActiveAccount = errors.New("no active account")

// ViewModel owns a scope that lives until Clear. Work started from a view
// model runs under Scope() and stops with it.
type ViewModel struct {
  mu      sync.Mutex
  ctx     context.Context
  cancel  context.CancelFunc
  cleared bool
  hooks   []func()
}

func (vm *ViewModel) Scope() context.Context {
  vm.mu.Lock()
  defer vm.mu.Unlock()
  if vm.ctx == nil {
    vm.ctx, vm.cancel = context.WithCancel(context.Background())
    if vm.cleared {
      vm.cancel()
    }
  }
  return vm.ctx
}

func (vm *ViewModel) OnCleared(fn func()) {
  vm.mu.Lock()
  defer vm.mu.Unlock()
  vm.hooks = append(vm.hooks, fn)
}

func (vm *ViewModel) Clear() {
  vm.mu.Lock()
  if vm.cleared {
    vm.mu.Unlock()
    return
  }
  vm.cleared = true
  hooks := vm.hooks
  vm.hooks = nil
  if vm.cancel != nil {
    vm.cancel()
  }
  vm.mu.Unlock()
  for _, fn := range hooks {
    fn()
  }
}

func (vm *ViewModel) IsCleared() bool {
  vm.mu.Lock()
  defer vm.mu.Unlock()
  return vm.cleared
}

// BindLifecycle clears the view model once l is destroyed.
func (vm *ViewModel) BindLifecycle(l *lifecycle.Lifecycle) {
  scope := vm.Scope()
  go func() {
    select {
    case <-l.Context().Done():
      vm.Clear()
    case <-scope.Done():
    }
  }()
}
