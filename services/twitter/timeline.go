package twitter

import (
  "context"
  "net/url"
  "strconv"

  "twiderex.local/twiderex/services"
)

func timelineQuery(count int, paging services.Paging) url.Values {
  q := url.Values{}
  q.Set("count", strconv.Itoa(count))
  q.Set("tweet_mode", "extended")
  if paging.SinceID != "" {
    q.Set("since_id", paging.SinceID)
  }
  if paging.MaxID != "" {
    q.Set("max_id", paging.MaxID)
  }
  return q
}

func (s *Service) HomeTimeline(ctx context.Context, count int, paging services.Paging) ([]*services.Status, error) {
  buf, err := s.Http.Get(ctx, s.url("/1.1/statuses/home_timeline.json"), timelineQuery(count, paging))
  if err != nil {
    return nil, err
  }
  return parseStatuses(buf), nil
}

func (s *Service) MentionsTimeline(ctx context.Context, count int, paging services.Paging) ([]*services.Status, error) {
  buf, err := s.Http.Get(ctx, s.url("/1.1/statuses/mentions_timeline.json"), timelineQuery(count, paging))
  if err != nil {
    return nil, err
  }
  return parseStatuses(buf), nil
}

func (s *Service) UserTimeline(ctx context.Context, userID string, count int, paging services.Paging, excludeReplies bool) ([]*services.Status, error) {
  q := timelineQuery(count, paging)
  q.Set("user_id", userID)
  q.Set("exclude_replies", strconv.FormatBool(excludeReplies))
  buf, err := s.Http.Get(ctx, s.url("/1.1/statuses/user_timeline.json"), q)
  if err != nil {
    return nil, err
  }
  return parseStatuses(buf), nil
}
