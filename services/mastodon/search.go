package mastodon

import (
  "context"
  "net/url"
  "strconv"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/services"
)

func (s *Service) searchStatuses(ctx context.Context, query string, count int, nextPage string) (*services.SearchResult, error) {
  offset, _ := strconv.Atoi(nextPage)
  q := url.Values{}
  q.Set("q", query)
  q.Set("type", "statuses")
  q.Set("limit", strconv.Itoa(count))
  q.Set("offset", strconv.Itoa(offset))
  buf, err := s.Http.Get(ctx, s.url("/api/v2/search"), q)
  if err != nil {
    return nil, err
  }
  result := &services.SearchResult{}
  gjson.GetBytes(buf, "statuses").ForEach(func(_, item gjson.Result) bool {
    result.Statuses = append(result.Statuses, s.parseStatus(item))
    return true
  })
  if len(result.Statuses) > 0 {
    result.NextPage = strconv.Itoa(offset + len(result.Statuses))
  }
  return result, nil
}

func (s *Service) SearchStatuses(ctx context.Context, query string, count int, nextPage string) (*services.SearchResult, error) {
  return s.searchStatuses(ctx, query, count, nextPage)
}

func (s *Service) SearchMedia(ctx context.Context, query string, count int, nextPage string) (*services.SearchResult, error) {
  result, err := s.searchStatuses(ctx, query, count, nextPage)
  if err != nil {
    return nil, err
  }
  statuses := result.Statuses[:0]
  for _, status := range result.Statuses {
    if status.HasMedia() {
      statuses = append(statuses, status)
    }
  }
  result.Statuses = statuses
  return result, nil
}

func (s *Service) SearchUsers(ctx context.Context, query string, page int, count int) ([]*services.User, error) {
  if page < 1 {
    page = 1
  }
  q := url.Values{}
  q.Set("q", query)
  q.Set("type", "accounts")
  q.Set("limit", strconv.Itoa(count))
  q.Set("offset", strconv.Itoa((page-1)*count))
  buf, err := s.Http.Get(ctx, s.url("/api/v2/search"), q)
  if err != nil {
    return nil, err
  }
  var users []*services.User
  gjson.GetBytes(buf, "accounts").ForEach(func(_, item gjson.Result) bool {
    users = append(users, s.parseUser(item))
    return true
  })
  return users, nil
}
