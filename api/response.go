package api

import (
  "encoding/json"
  "log"
  "net/http"
)

type ResponseHandler struct {
  Writer http.ResponseWriter
}

type ErrorResponse struct {
  Code    int    `json:"code"`
  Message string `json:"message"`
}

type PagenateResponse struct {
  Data     interface{} `json:"data"`
  Total    int64       `json:"total"`
  Current  int         `json:"current"`
  PageSize int         `json:"page_size"`
}

func (h *ResponseHandler) write(status int, data interface{}) {
  h.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
  h.Writer.WriteHeader(status)
  if err := json.NewEncoder(h.Writer).Encode(data); err != nil {
    log.Println("response encode error:", err)
  }
}

func (h *ResponseHandler) Json(data interface{}) {
  h.write(http.StatusOK, data)
}

func (h *ResponseHandler) Error(status int, code int, message string) {
  h.write(status, &ErrorResponse{
    Code:    code,
    Message: message,
  })
}

func (h *ResponseHandler) Pagenate(data interface{}, total int64, current int, pageSize int) {
  h.write(http.StatusOK, &PagenateResponse{
    Data:     data,
    Total:    total,
    Current:  current,
    PageSize: pageSize,
  })
}
