package twitter

import (
  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/services"
)

type Service struct {
  Http     *services.HttpClient
  Endpoint string
  Upload   string
}

func New(accessToken string) *Service {
  return &Service{
    Http:     services.NewHttpClient(accessToken),
    Endpoint: config.TWITTER_ENDPOINT,
    Upload:   config.TWITTER_UPLOAD,
  }
}

func (s *Service) url(path string) string {
  return s.Endpoint + path
}
