package actions

import (
  "context"
  "errors"
  "fmt"
  "io"
  "os"
  "path/filepath"
  "testing"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

func TestDetectMediaInsert(t *testing.T) {
  dir := t.TempDir()
  gif := filepath.Join(dir, "a.gif")
  require.NoError(t, os.WriteFile(gif, []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00"), 0o644))
  png := filepath.Join(dir, "a.png")
  require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), 0o644))
  text := filepath.Join(dir, "a.txt")
  require.NoError(t, os.WriteFile(text, []byte("hello"), 0o644))

  insert, err := DetectMediaInsert(gif)
  require.NoError(t, err)
  require.Equal(t, models.MediaTypeAnimatedGif, insert.Type)
  require.Equal(t, "image/gif", insert.Mime)

  insert, err = DetectMediaInsert(png)
  require.NoError(t, err)
  require.Equal(t, models.MediaTypePhoto, insert.Type)
  require.Equal(t, int64(16), insert.Size)

  _, err = DetectMediaInsert(text)
  require.Error(t, err)

  _, err = DetectMediaInsert(filepath.Join(dir, "missing.png"))
  require.Error(t, err)
}

func TestInAppNotification(t *testing.T) {
  notification := NewInAppNotification(nil)
  require.Nil(t, notification.Source().Value())

  notification.NotifyError(nil)
  require.Nil(t, notification.Source().Value())

  notification.NotifyError(services.NewApiError(429, []byte(`{"errors":[{"message":"Rate limit exceeded"}]}`)))
  latest := notification.Source().Value()
  require.Equal(t, NotificationError, latest.Kind)
  require.Equal(t, "rate limit exceeded, try again later", latest.Message)

  notification.Show("sent")
  require.Equal(t, NotificationMessage, notification.Source().Value().Kind)
  require.Equal(t, "sent", notification.Source().Value().Message)
}

func TestErrorMessage(t *testing.T) {
  require.Equal(t, "boom", ErrorMessage(errors.New("boom")))
  require.Equal(t, "content not found", ErrorMessage(services.NewApiError(404, nil)))
  require.Equal(t, "not supported on this platform", ErrorMessage(services.ErrUnsupported))
}

func TestComposeDataToDraft(t *testing.T) {
  key := models.Twitter("9")
  draft := ComposeDataToDraft(&models.ComposeData{
    Content:              "draft",
    DraftID:              "id",
    Images:               []string{"a.png"},
    ComposeType:          models.ComposeQuote,
    StatusKey:            &key,
    ExcludedReplyUserIds: []string{"3"},
  })
  require.Equal(t, "id", draft.DraftID)
  require.Equal(t, []string{"a.png"}, draft.Media)
  require.Equal(t, &key, draft.StatusKey)
  require.Equal(t, models.ComposeQuote, draft.ComposeType)
  require.NotZero(t, draft.CreatedAt)
}

type statusService struct {
  uploaded []string
  request  *services.ComposeRequest
}

func (s *statusService) Compose(ctx context.Context, req *services.ComposeRequest) (*services.Status, error) {
  s.request = req
  return &services.Status{ID: "100", Host: "twitter.com"}, nil
}

func (s *statusService) UploadMedia(ctx context.Context, r io.Reader, name string, mime string) (string, error) {
  s.uploaded = append(s.uploaded, name+":"+mime)
  return fmt.Sprintf("m%d", len(s.uploaded)), nil
}

func TestBuildComposeRequest(t *testing.T) {
  key := models.Twitter("42")
  expired := int64(300)
  multiple := true
  req, err := BuildComposeRequest(&models.ComposeData{
    AccountKey:   models.Twitter("1"),
    Content:      "poll",
    ComposeType:  models.ComposeReply,
    StatusKey:    &key,
    VoteOptions:  []string{"a", " ", "b", ""},
    VoteExpired:  &expired,
    VoteMultiple: &multiple,
  }, nil)
  require.NoError(t, err)
  require.Equal(t, "42", req.InReplyToID)
  require.Equal(t, &services.PollRequest{Options: []string{"a", "b"}, ExpiresIn: 300, Multiple: true}, req.Poll)

  _, err = BuildComposeRequest(&models.ComposeData{VoteOptions: []string{"a", ""}}, nil)
  require.ErrorIs(t, err, ErrPollOptions)

  req, err = BuildComposeRequest(&models.ComposeData{
    AccountKey:  models.Twitter("1"),
    ComposeType: models.ComposeQuote,
    StatusKey:   &key,
  }, nil)
  require.NoError(t, err)
  require.Equal(t, "https://twitter.com/i/status/42", req.AttachmentUrl)
  require.Empty(t, req.InReplyToID)

  _, err = BuildComposeRequest(&models.ComposeData{
    AccountKey:  models.MicroBlogKey{ID: "1", Host: "mastodon.social"},
    ComposeType: models.ComposeQuote,
    StatusKey:   &key,
  }, nil)
  require.ErrorIs(t, err, services.ErrUnsupported)
}

func TestPublish(t *testing.T) {
  dir := t.TempDir()
  png := filepath.Join(dir, "a.png")
  require.NoError(t, os.WriteFile(png, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR"), 0o644))

  service := &statusService{}
  status, err := Publish(context.Background(), service, &models.ComposeData{
    AccountKey: models.Twitter("1"),
    Content:    "hello",
    Images:     []string{png, png},
  })
  require.NoError(t, err)
  require.Equal(t, "100", status.ID)
  require.Equal(t, []string{"a.png:image/png", "a.png:image/png"}, service.uploaded)
  require.Equal(t, []string{"m1", "m2"}, service.request.MediaIDs)
  require.Equal(t, "hello", service.request.Content)
}
