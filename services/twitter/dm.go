package twitter

import (
  "context"
  "net/url"
  "strconv"
  "time"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/services"
)

func (s *Service) GetDirectMessages(ctx context.Context, cursor string, count int) (*services.DirectMessagePage, error) {
  q := url.Values{}
  q.Set("count", strconv.Itoa(count))
  if cursor != "" {
    q.Set("cursor", cursor)
  }
  buf, err := s.Http.Get(ctx, s.url("/1.1/direct_messages/events/list.json"), q)
  if err != nil {
    return nil, err
  }
  page := &services.DirectMessagePage{
    NextCursor: gjson.GetBytes(buf, "next_cursor").String(),
  }
  gjson.GetBytes(buf, "events").ForEach(func(_, item gjson.Result) bool {
    if item.Get("type").String() != "message_create" {
      return true
    }
    message := item.Get("message_create")
    event := &services.DirectMessageEvent{
      ID:          item.Get("id").String(),
      SenderID:    message.Get("sender_id").String(),
      RecipientID: message.Get("target.recipient_id").String(),
      Text:        message.Get("message_data.text").String(),
      CreatedAt:   time.UnixMilli(item.Get("created_timestamp").Int()),
      Urls:        parseUrls(message.Get("message_data.entities.urls")),
    }
    if media := message.Get("message_data.attachment.media"); media.Exists() {
      event.Media = append(event.Media, parseMedia(media))
    }
    page.Events = append(page.Events, event)
    return true
  })
  return page, nil
}
