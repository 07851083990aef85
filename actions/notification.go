package actions

import (
  "encoding/json"
  "errors"
  "log"
  "time"

  "github.com/nats-io/nats.go"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/flow"
  "twiderex.local/twiderex/services"
)

type NotificationKind string

const (
  NotificationMessage NotificationKind = "message"
  NotificationError   NotificationKind = "error"
)

type Notification struct {
  Kind      NotificationKind `json:"kind"`
  Message   string           `json:"message"`
  Timestamp int64            `json:"timestamp"`
}

// InAppNotification keeps the latest notification and forwards each one to
// NATS when a connection is set.
type InAppNotification struct {
  Nats   *nats.Conn
  latest *flow.StateFlow[*Notification]
}

func NewInAppNotification(conn *nats.Conn) *InAppNotification {
  return &InAppNotification{
    Nats:   conn,
    latest: flow.NewStateFlow[*Notification](nil),
  }
}

func (n *InAppNotification) Source() *flow.StateFlow[*Notification] {
  return n.latest
}

func (n *InAppNotification) Show(message string) {
  n.publish(&Notification{
    Kind:      NotificationMessage,
    Message:   message,
    Timestamp: time.Now().UnixMilli(),
  })
}

func (n *InAppNotification) NotifyError(err error) {
  if err == nil {
    return
  }
  n.publish(&Notification{
    Kind:      NotificationError,
    Message:   ErrorMessage(err),
    Timestamp: time.Now().UnixMilli(),
  })
}

func (n *InAppNotification) publish(notification *Notification) {
  n.latest.Set(notification)
  if n.Nats == nil {
    return
  }
  payload, err := json.Marshal(notification)
  if err != nil {
    return
  }
  if err := n.Nats.Publish(config.NATS_IN_APP_NOTIFICATIONS, payload); err != nil {
    log.Println("notification publish error:", err)
  }
}

func ErrorMessage(err error) string {
  switch {
  case errors.Is(err, services.ErrRateLimited):
    return "rate limit exceeded, try again later"
  case errors.Is(err, services.ErrUnauthorized):
    return "authorization failed, sign in again"
  case errors.Is(err, services.ErrNotFound):
    return "content not found"
  case errors.Is(err, services.ErrUnsupported):
    return "not supported on this platform"
  }
  return err.Error()
}
