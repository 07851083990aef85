package mastodon

import (
  "strings"

  "twiderex.local/twiderex/services"
)

type Service struct {
  Http     *services.HttpClient
  Host     string
  Endpoint string
}

func New(host string, accessToken string) *Service {
  host = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(host, "https://"), "http://"), "/")
  return &Service{
    Http:     services.NewHttpClient(accessToken),
    Host:     host,
    Endpoint: "https://" + host,
  }
}

func (s *Service) url(path string) string {
  return s.Endpoint + path
}
