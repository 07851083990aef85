package mastodon

import (
  "context"
  "io"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

func (s *Service) Compose(ctx context.Context, req *services.ComposeRequest) (*services.Status, error) {
  data := map[string]interface{}{
    "status":    req.Content,
    "sensitive": req.Sensitive,
  }
  if req.InReplyToID != "" {
    data["in_reply_to_id"] = req.InReplyToID
  }
  if len(req.MediaIDs) > 0 {
    data["media_ids"] = req.MediaIDs
  }
  if req.SpoilerText != "" {
    data["spoiler_text"] = req.SpoilerText
  }
  if req.Visibility != "" {
    data["visibility"] = req.Visibility
  } else {
    data["visibility"] = models.VisibilityPublic
  }
  if req.Poll != nil {
    data["poll"] = map[string]interface{}{
      "options":    req.Poll.Options,
      "expires_in": req.Poll.ExpiresIn,
      "multiple":   req.Poll.Multiple,
    }
  }
  buf, err := s.Http.PostJson(ctx, s.url("/api/v1/statuses"), data)
  if err != nil {
    return nil, err
  }
  return s.parseStatus(gjson.ParseBytes(buf)), nil
}

func (s *Service) UploadMedia(ctx context.Context, r io.Reader, name string, mime string) (string, error) {
  buf, err := s.Http.PostFile(ctx, s.url("/api/v2/media"), "file", name, r)
  if err != nil {
    return "", err
  }
  return gjson.GetBytes(buf, "id").String(), nil
}

func (s *Service) Emojis(ctx context.Context) ([]models.Emoji, error) {
  buf, err := s.Http.Get(ctx, s.url("/api/v1/custom_emojis"), nil)
  if err != nil {
    return nil, err
  }
  return parseEmojis(gjson.ParseBytes(buf)), nil
}
