package v1

import (
  "errors"
  "net/http"

  "gorm.io/gorm"

  "twiderex.local/twiderex/actions"
  "twiderex.local/twiderex/api"
  "twiderex.local/twiderex/paging"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

type LoadStateView struct {
  Loading                bool   `json:"loading"`
  EndOfPaginationReached bool   `json:"end_of_pagination_reached"`
  Error                  string `json:"error,omitempty"`
}

type PagingView[T any] struct {
  Items   []T           `json:"items"`
  Refresh LoadStateView `json:"refresh"`
  Append  LoadStateView `json:"append"`
}

type TimelineItemView struct {
  Type string      `json:"type"`
  Key  string      `json:"key"`
  Item ui.Timeline `json:"item"`
}

func loadStateView(state paging.LoadState) LoadStateView {
  return LoadStateView{
    Loading:                state.Loading,
    EndOfPaginationReached: state.EndOfPaginationReached,
    Error:                  state.Message(),
  }
}

func pagingView[T any](data paging.PagingData[T]) PagingView[T] {
  items := data.Items
  if items == nil {
    items = []T{}
  }
  return PagingView[T]{
    Items:   items,
    Refresh: loadStateView(data.Refresh),
    Append:  loadStateView(data.Append),
  }
}

func timelineView(data paging.PagingData[ui.Timeline]) PagingView[TimelineItemView] {
  items := make([]TimelineItemView, len(data.Items))
  for i, item := range data.Items {
    items[i] = TimelineItemView{
      Type: item.ContentType(),
      Key:  item.Key(),
      Item: item,
    }
  }
  return pagingView(paging.PagingData[TimelineItemView]{
    Items:   items,
    Refresh: data.Refresh,
    Append:  data.Append,
  })
}

// session resolves the session of the account named by the request token and
// writes the error response when it cannot.
func session(apiContext *api.Context, w http.ResponseWriter, r *http.Request) (*api.Session, bool) {
  response := &api.ResponseHandler{Writer: w}
  accountKey, ok := api.AccountKey(r.Context())
  if !ok {
    response.Error(http.StatusUnauthorized, 1001, "token is empty")
    return nil, false
  }
  s, err := apiContext.Sessions.Get(r.Context(), accountKey)
  if errors.Is(err, gorm.ErrRecordNotFound) {
    response.Error(http.StatusNotFound, 1003, "account not found")
    return nil, false
  }
  if err != nil {
    response.Error(http.StatusInternalServerError, 1004, err.Error())
    return nil, false
  }
  return s, true
}

// serviceError maps network failures to the status code the client should see.
func serviceError(response *api.ResponseHandler, err error) {
  status := http.StatusBadGateway
  switch {
  case errors.Is(err, services.ErrUnauthorized):
    status = http.StatusUnauthorized
  case errors.Is(err, services.ErrRateLimited):
    status = http.StatusTooManyRequests
  case errors.Is(err, services.ErrNotFound):
    status = http.StatusNotFound
  case errors.Is(err, services.ErrUnsupported):
    status = http.StatusNotImplemented
  }
  response.Error(status, 1005, actions.ErrorMessage(err))
}
