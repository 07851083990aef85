package viewmodels

import (
  "context"

  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/ui"
)

// NewDraftComposeViewModel reopens a saved draft under its own id.
func NewDraftComposeViewModel(deps ComposeDependencies, draft ui.Draft) *ComposeViewModel {
  vm := newComposeViewModel(deps, draft.StatusKey, draft.ComposeType)
  vm.DraftID = draft.DraftID
  vm.SetText(TextFieldValue{Text: draft.Content})
  vm.PutImages(draft.Media)
  excluded := draft.ExcludedReplyUserIds
  if excluded == nil {
    excluded = []string{}
  }
  vm.ExcludedReplyUserIds.Set(excluded)
  vm.start()
  return vm
}

type DraftGetter interface {
  Get(ctx context.Context, id string) (*ui.Draft, error)
}

type DraftItemViewModel struct {
  ViewModel
  Draft *flow.StateFlow[*ui.Draft]
}

func NewDraftItemViewModel(repository DraftGetter, draftID string) *DraftItemViewModel {
  vm := &DraftItemViewModel{
    Draft: flow.NewStateFlow[*ui.Draft](nil),
  }
  ctx := vm.Scope()
  go func() {
    if draft, err := repository.Get(ctx, draftID); err == nil {
      vm.Draft.Set(draft)
    }
  }()
  return vm
}
