package twitter

import (
  "context"
  "net/url"
  "strconv"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/services"
)

func (s *Service) search(ctx context.Context, query string, count int, nextPage string) (*services.SearchResult, error) {
  var endpoint string
  if nextPage != "" {
    endpoint = s.url("/1.1/search/tweets.json") + nextPage + "&tweet_mode=extended"
  } else {
    q := url.Values{}
    q.Set("q", query)
    q.Set("count", strconv.Itoa(count))
    q.Set("result_type", "recent")
    q.Set("tweet_mode", "extended")
    endpoint = s.url("/1.1/search/tweets.json") + "?" + q.Encode()
  }
  buf, err := s.Http.Get(ctx, endpoint, nil)
  if err != nil {
    return nil, err
  }
  result := &services.SearchResult{
    NextPage: gjson.GetBytes(buf, "search_metadata.next_results").String(),
  }
  gjson.GetBytes(buf, "statuses").ForEach(func(_, item gjson.Result) bool {
    result.Statuses = append(result.Statuses, parseStatus(item))
    return true
  })
  return result, nil
}

func (s *Service) SearchStatuses(ctx context.Context, query string, count int, nextPage string) (*services.SearchResult, error) {
  return s.search(ctx, query, count, nextPage)
}

func (s *Service) SearchMedia(ctx context.Context, query string, count int, nextPage string) (*services.SearchResult, error) {
  return s.search(ctx, query+" filter:media", count, nextPage)
}

func (s *Service) SearchUsers(ctx context.Context, query string, page int, count int) ([]*services.User, error) {
  q := url.Values{}
  q.Set("q", query)
  q.Set("page", strconv.Itoa(page))
  q.Set("count", strconv.Itoa(count))
  buf, err := s.Http.Get(ctx, s.url("/1.1/users/search.json"), q)
  if err != nil {
    return nil, err
  }
  return parseUsers(buf), nil
}
