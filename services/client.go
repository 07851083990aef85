package services

import (
  "bytes"
  "context"
  "encoding/json"
  "io"
  "mime/multipart"
  "net/http"
  "net/url"
  "time"

  "twiderex.local/twiderex/common"
)

type HttpClient struct {
  Http    *http.Client
  Headers map[string]string
}

func NewHttpClient(accessToken string) *HttpClient {
  return &HttpClient{
    Http: common.NewHttpClient(30 * time.Second),
    Headers: map[string]string{
      "Authorization": "Bearer " + accessToken,
      "User-Agent":    common.GetEnvStringOr("TWIDEREX_AGENT", "twiderex"),
    },
  }
}

func (c *HttpClient) Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
  if len(query) > 0 {
    endpoint = endpoint + "?" + query.Encode()
  }
  return c.Do(ctx, http.MethodGet, endpoint, nil, "")
}

func (c *HttpClient) PostForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
  return c.Do(
    ctx,
    http.MethodPost,
    endpoint,
    bytes.NewBufferString(form.Encode()),
    "application/x-www-form-urlencoded",
  )
}

func (c *HttpClient) PostJson(ctx context.Context, endpoint string, data interface{}) ([]byte, error) {
  buf, err := json.Marshal(data)
  if err != nil {
    return nil, err
  }
  return c.Do(ctx, http.MethodPost, endpoint, bytes.NewBuffer(buf), "application/json")
}

func (c *HttpClient) PostFile(ctx context.Context, endpoint string, field string, name string, r io.Reader) ([]byte, error) {
  body := &bytes.Buffer{}
  writer := multipart.NewWriter(body)
  part, err := writer.CreateFormFile(field, name)
  if err != nil {
    return nil, err
  }
  if _, err = io.Copy(part, r); err != nil {
    return nil, err
  }
  if err = writer.Close(); err != nil {
    return nil, err
  }
  return c.Do(ctx, http.MethodPost, endpoint, body, writer.FormDataContentType())
}

func (c *HttpClient) Do(ctx context.Context, method string, endpoint string, body io.Reader, contentType string) ([]byte, error) {
  req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
  if err != nil {
    return nil, err
  }
  for key, val := range c.Headers {
    req.Header.Set(key, val)
  }
  if contentType != "" {
    req.Header.Set("Content-Type", contentType)
  }
  resp, err := c.Http.Do(req)
  if err != nil {
    return nil, err
  }
  defer resp.Body.Close()

  buf, err := io.ReadAll(resp.Body)
  if err != nil {
    return nil, err
  }
  if resp.StatusCode < 200 || resp.StatusCode >= 300 {
    return nil, NewApiError(resp.StatusCode, buf)
  }
  return buf, nil
}
