package mastodon

import (
  "context"
  "net/url"
  "strconv"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/services"
)

func timelineQuery(count int, paging services.Paging) url.Values {
  q := url.Values{}
  q.Set("limit", strconv.Itoa(count))
  if paging.SinceID != "" {
    q.Set("since_id", paging.SinceID)
  }
  if paging.MaxID != "" {
    q.Set("max_id", paging.MaxID)
  }
  return q
}

func (s *Service) HomeTimeline(ctx context.Context, count int, paging services.Paging) ([]*services.Status, error) {
  buf, err := s.Http.Get(ctx, s.url("/api/v1/timelines/home"), timelineQuery(count, paging))
  if err != nil {
    return nil, err
  }
  return s.parseStatuses(buf), nil
}

// MentionsTimeline reads mention notifications. Mastodon ids are time
// ordered, so a status id works as a notification paging bound.
func (s *Service) MentionsTimeline(ctx context.Context, count int, paging services.Paging) ([]*services.Status, error) {
  q := timelineQuery(count, paging)
  q.Add("types[]", "mention")
  buf, err := s.Http.Get(ctx, s.url("/api/v1/notifications"), q)
  if err != nil {
    return nil, err
  }
  var statuses []*services.Status
  gjson.ParseBytes(buf).ForEach(func(_, item gjson.Result) bool {
    if status := s.parseStatus(item.Get("status")); status != nil {
      status.Extra.NotificationType = item.Get("type").String()
      statuses = append(statuses, status)
    }
    return true
  })
  return statuses, nil
}

func (s *Service) UserTimeline(ctx context.Context, userID string, count int, paging services.Paging, excludeReplies bool) ([]*services.Status, error) {
  q := timelineQuery(count, paging)
  q.Set("exclude_replies", strconv.FormatBool(excludeReplies))
  buf, err := s.Http.Get(ctx, s.url("/api/v1/accounts/"+url.PathEscape(userID)+"/statuses"), q)
  if err != nil {
    return nil, err
  }
  return s.parseStatuses(buf), nil
}
