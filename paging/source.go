package paging

import (
  "context"

  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/transform"
  "twiderex.local/twiderex/ui"
)

type LoadParams struct {
  Key      int
  LoadSize int
}

// LoadResult carries the next key to request; zero ends the paging.
type LoadResult[T any] struct {
  Data    []T
  PrevKey int
  NextKey int
  Err     error
}

type PagingSource[T any] interface {
  Load(ctx context.Context, params LoadParams) LoadResult[T]
}

// SearchUserPagingSource pages user search results by page number, starting
// at page 1.
type SearchUserPagingSource struct {
  Query   string
  Service services.SearchService
}

func (s *SearchUserPagingSource) Load(ctx context.Context, params LoadParams) LoadResult[ui.User] {
  page := params.Key
  if page <= 0 {
    page = 1
  }
  users, err := s.Service.SearchUsers(ctx, s.Query, page, params.LoadSize)
  if err != nil {
    return LoadResult[ui.User]{Err: err}
  }
  result := LoadResult[ui.User]{
    Data:    make([]ui.User, len(users)),
    PrevKey: page - 1,
  }
  for i, user := range users {
    result.Data[i] = transform.ServiceUserToUi(user)
  }
  if len(users) > 0 {
    result.NextKey = page + 1
  }
  return result
}
