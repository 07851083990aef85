package actions

import (
  "context"
  "errors"
  "fmt"
  "os"
  "path/filepath"
  "strings"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

var ErrPollOptions = errors.New("a poll needs at least two options")

// BuildComposeRequest turns compose data into a platform request. Quotes are
// only expressible on Twitter, as an attachment url.
func BuildComposeRequest(data *models.ComposeData, mediaIDs []string) (*services.ComposeRequest, error) {
  req := &services.ComposeRequest{
    Content:             data.Content,
    MediaIDs:            mediaIDs,
    Latitude:            data.Lat,
    Longitude:           data.Long,
    ExcludeReplyUserIDs: data.ExcludedReplyUserIds,
    Visibility:          data.Visibility,
    Sensitive:           data.IsSensitive,
    SpoilerText:         data.ContentWarningText,
  }
  if data.StatusKey != nil {
    switch data.ComposeType {
    case models.ComposeReply, models.ComposeThread:
      req.InReplyToID = data.StatusKey.ID
    case models.ComposeQuote:
      if data.AccountKey.Host != config.TWITTER_HOST {
        return nil, services.ErrUnsupported
      }
      req.AttachmentUrl = fmt.Sprintf("https://%s/i/status/%s", config.TWITTER_HOST, data.StatusKey.ID)
    }
  }
  if data.VoteOptions != nil {
    var options []string
    for _, option := range data.VoteOptions {
      if option = strings.TrimSpace(option); option != "" {
        options = append(options, option)
      }
    }
    if len(options) < config.VOTE_OPTIONS_MIN {
      return nil, ErrPollOptions
    }
    poll := &services.PollRequest{Options: options}
    if data.VoteExpired != nil {
      poll.ExpiresIn = *data.VoteExpired
    }
    if data.VoteMultiple != nil {
      poll.Multiple = *data.VoteMultiple
    }
    req.Poll = poll
  }
  return req, nil
}

// Publish uploads the attached files in order and posts the status.
func Publish(ctx context.Context, service services.StatusService, data *models.ComposeData) (*services.Status, error) {
  if len(data.Images) > config.IMAGE_LIMIT {
    return nil, fmt.Errorf("too many media: %d", len(data.Images))
  }
  var mediaIDs []string
  for _, path := range data.Images {
    id, err := upload(ctx, service, path)
    if err != nil {
      return nil, err
    }
    mediaIDs = append(mediaIDs, id)
  }
  req, err := BuildComposeRequest(data, mediaIDs)
  if err != nil {
    return nil, err
  }
  return service.Compose(ctx, req)
}

func upload(ctx context.Context, service services.StatusService, path string) (string, error) {
  insert, err := DetectMediaInsert(path)
  if err != nil {
    return "", err
  }
  f, err := os.Open(path)
  if err != nil {
    return "", err
  }
  defer f.Close()
  return service.UploadMedia(ctx, f, filepath.Base(path), insert.Mime)
}
