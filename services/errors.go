package services

import (
  "errors"
  "fmt"
  "net/http"

  "github.com/tidwall/gjson"
)

var (
  ErrUnauthorized = errors.New("unauthorized")
  ErrRateLimited  = errors.New("rate limited")
  ErrNotFound     = errors.New("not found")
  ErrUnsupported  = errors.New("not supported by this platform")
)

type ApiError struct {
  StatusCode int
  Message    string
  Err        error
}

func (e *ApiError) Error() string {
  return fmt.Sprintf("request error: code[%d] message[%v]", e.StatusCode, e.Message)
}

func (e *ApiError) Unwrap() error {
  return e.Err
}

func NewApiError(statusCode int, body []byte) *ApiError {
  message := gjson.GetBytes(body, "errors.0.message").String()
  if message == "" {
    message = gjson.GetBytes(body, "error").String()
  }
  if message == "" {
    message = http.StatusText(statusCode)
  }
  e := &ApiError{
    StatusCode: statusCode,
    Message:    message,
  }
  switch statusCode {
  case http.StatusUnauthorized, http.StatusForbidden:
    e.Err = ErrUnauthorized
  case http.StatusTooManyRequests:
    e.Err = ErrRateLimited
  case http.StatusNotFound:
    e.Err = ErrNotFound
  }
  return e
}
