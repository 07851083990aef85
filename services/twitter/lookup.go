package twitter

import (
  "context"
  "net/url"
  "strings"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/services"
)

func (s *Service) VerifyCredentials(ctx context.Context) (*services.User, error) {
  buf, err := s.Http.Get(ctx, s.url("/1.1/account/verify_credentials.json"), nil)
  if err != nil {
    return nil, err
  }
  return parseUser(gjson.ParseBytes(buf)), nil
}

func (s *Service) LookupUser(ctx context.Context, id string) (*services.User, error) {
  q := url.Values{}
  q.Set("user_id", id)
  buf, err := s.Http.Get(ctx, s.url("/1.1/users/show.json"), q)
  if err != nil {
    return nil, err
  }
  return parseUser(gjson.ParseBytes(buf)), nil
}

func (s *Service) LookupUsers(ctx context.Context, ids []string) ([]*services.User, error) {
  if len(ids) == 0 {
    return nil, nil
  }
  q := url.Values{}
  q.Set("user_id", strings.Join(ids, ","))
  buf, err := s.Http.Get(ctx, s.url("/1.1/users/lookup.json"), q)
  if err != nil {
    return nil, err
  }
  return parseUsers(buf), nil
}

func (s *Service) LookupUsersByName(ctx context.Context, names []string) ([]*services.User, error) {
  if len(names) == 0 {
    return nil, nil
  }
  q := url.Values{}
  q.Set("screen_name", strings.Join(names, ","))
  buf, err := s.Http.Get(ctx, s.url("/1.1/users/lookup.json"), q)
  if err != nil {
    return nil, err
  }
  return parseUsers(buf), nil
}

func (s *Service) LookupStatus(ctx context.Context, id string) (*services.Status, error) {
  q := url.Values{}
  q.Set("id", id)
  q.Set("tweet_mode", "extended")
  buf, err := s.Http.Get(ctx, s.url("/1.1/statuses/show.json"), q)
  if err != nil {
    return nil, err
  }
  return parseStatus(gjson.ParseBytes(buf)), nil
}
