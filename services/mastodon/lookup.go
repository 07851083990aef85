package mastodon

import (
  "context"
  "net/url"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/services"
)

func (s *Service) VerifyCredentials(ctx context.Context) (*services.User, error) {
  buf, err := s.Http.Get(ctx, s.url("/api/v1/accounts/verify_credentials"), nil)
  if err != nil {
    return nil, err
  }
  return s.parseUser(gjson.ParseBytes(buf)), nil
}

func (s *Service) LookupUser(ctx context.Context, id string) (*services.User, error) {
  buf, err := s.Http.Get(ctx, s.url("/api/v1/accounts/"+url.PathEscape(id)), nil)
  if err != nil {
    return nil, err
  }
  return s.parseUser(gjson.ParseBytes(buf)), nil
}

func (s *Service) LookupUsers(ctx context.Context, ids []string) ([]*services.User, error) {
  users := make([]*services.User, 0, len(ids))
  for _, id := range ids {
    user, err := s.LookupUser(ctx, id)
    if err != nil {
      return nil, err
    }
    users = append(users, user)
  }
  return users, nil
}

func (s *Service) LookupUsersByName(ctx context.Context, names []string) ([]*services.User, error) {
  users := make([]*services.User, 0, len(names))
  for _, name := range names {
    q := url.Values{}
    q.Set("acct", name)
    buf, err := s.Http.Get(ctx, s.url("/api/v1/accounts/lookup"), q)
    if err != nil {
      return nil, err
    }
    users = append(users, s.parseUser(gjson.ParseBytes(buf)))
  }
  return users, nil
}

func (s *Service) LookupStatus(ctx context.Context, id string) (*services.Status, error) {
  buf, err := s.Http.Get(ctx, s.url("/api/v1/statuses/"+url.PathEscape(id)), nil)
  if err != nil {
    return nil, err
  }
  return s.parseStatus(gjson.ParseBytes(buf)), nil
}
