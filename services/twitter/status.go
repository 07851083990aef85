package twitter

import (
  "context"
  "io"
  "net/url"
  "strconv"
  "strings"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/services"
)

func (s *Service) Compose(ctx context.Context, req *services.ComposeRequest) (*services.Status, error) {
  if req.Poll != nil {
    return nil, services.ErrUnsupported
  }
  form := url.Values{}
  form.Set("status", req.Content)
  form.Set("tweet_mode", "extended")
  if req.InReplyToID != "" {
    form.Set("in_reply_to_status_id", req.InReplyToID)
    form.Set("auto_populate_reply_metadata", "true")
  }
  if len(req.ExcludeReplyUserIDs) > 0 {
    form.Set("exclude_reply_user_ids", strings.Join(req.ExcludeReplyUserIDs, ","))
  }
  if req.AttachmentUrl != "" {
    form.Set("attachment_url", req.AttachmentUrl)
  }
  if len(req.MediaIDs) > 0 {
    form.Set("media_ids", strings.Join(req.MediaIDs, ","))
  }
  if req.Latitude != nil && req.Longitude != nil {
    form.Set("lat", strconv.FormatFloat(*req.Latitude, 'f', -1, 64))
    form.Set("long", strconv.FormatFloat(*req.Longitude, 'f', -1, 64))
    form.Set("display_coordinates", "true")
  }
  if req.Sensitive {
    form.Set("possibly_sensitive", "true")
  }
  buf, err := s.Http.PostForm(ctx, s.url("/1.1/statuses/update.json"), form)
  if err != nil {
    return nil, err
  }
  return parseStatus(gjson.ParseBytes(buf)), nil
}

func (s *Service) UploadMedia(ctx context.Context, r io.Reader, name string, mime string) (string, error) {
  buf, err := s.Http.PostFile(ctx, s.Upload+"/1.1/media/upload.json", "media", name, r)
  if err != nil {
    return "", err
  }
  return gjson.GetBytes(buf, "media_id_string").String(), nil
}
