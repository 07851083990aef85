package common

import (
  "context"
  "net"
  "net/http"
  "time"

  "h12.io/socks"
)

type ProxySession struct {
  Proxy string
}

func (s *ProxySession) DialContext(ctx context.Context, network string, addr string) (net.Conn, error) {
  if err := ctx.Err(); err != nil {
    return nil, err
  }
  return socks.Dial(s.Proxy)(network, addr)
}

func NewHttpClient(timeout time.Duration) *http.Client {
  tr := &http.Transport{
    DisableKeepAlives: true,
  }
  if proxy := GetEnvString("TWIDEREX_PROXY"); proxy != "" {
    tr.DialContext = (&ProxySession{
      Proxy: proxy,
    }).DialContext
  } else {
    tr.DialContext = (&net.Dialer{}).DialContext
  }
  return &http.Client{
    Transport: tr,
    Timeout:   timeout,
  }
}
