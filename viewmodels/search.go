package viewmodels

import (
  "context"

  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/paging"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

type SearchUserViewModel struct {
  ViewModel
  Keyword string
  pager   *paging.Pager[ui.User]
}

func NewSearchUserViewModel(service services.SearchService, keyword string) *SearchUserViewModel {
  return &SearchUserViewModel{
    Keyword: keyword,
    pager:   paging.NewSearchUserPager(keyword, service),
  }
}

func (vm *SearchUserViewModel) Source() *flow.StateFlow[paging.PagingData[ui.User]] {
  return vm.pager.Flow()
}

func (vm *SearchUserViewModel) Refresh(ctx context.Context) error {
  return vm.pager.Refresh(ctx)
}

func (vm *SearchUserViewModel) LoadMore(ctx context.Context) error {
  return vm.pager.LoadMore(ctx)
}
