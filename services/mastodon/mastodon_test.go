package mastodon

import (
  "context"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

const status = `{
  "id": "109",
  "created_at": "2022-11-01T10:00:00.000Z",
  "content": "<p>hi <a href=\"https://mastodon.social/@bob\" class=\"u-url mention\">@<span>bob</span></a> see <a href=\"https://example.com/page\">example.com/page</a></p>",
  "visibility": "unlisted",
  "spoiler_text": "cw",
  "sensitive": true,
  "replies_count": 1,
  "reblogs_count": 2,
  "favourites_count": 3,
  "account": {"id": "7", "username": "alice", "acct": "alice", "display_name": "Alice"},
  "mentions": [{"id": "8", "username": "bob", "acct": "bob@other.social", "url": "https://other.social/@bob"}],
  "media_attachments": [{"type": "gifv", "url": "https://files/a.mp4", "preview_url": "https://files/a.png", "meta": {"original": {"width": 320, "height": 240}}}],
  "emojis": [{"shortcode": "blob", "url": "https://files/blob.png", "visible_in_picker": true}],
  "poll": {"id": "p", "multiple": true, "votes_count": 4, "expires_at": "2022-11-02T10:00:00.000Z", "options": [{"title": "a", "votes_count": 3}, {"title": "b", "votes_count": 1}], "own_votes": [0]},
  "card": null,
  "reblog": null
}`

func newService(t *testing.T, handler http.HandlerFunc) *Service {
  server := httptest.NewServer(handler)
  t.Cleanup(server.Close)
  service := New("https://mastodon.social/", "token")
  require.Equal(t, "mastodon.social", service.Host)
  service.Endpoint = server.URL
  return service
}

func TestHomeTimeline(t *testing.T) {
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    require.Equal(t, "/api/v1/timelines/home", r.URL.Path)
    require.Equal(t, "40", r.URL.Query().Get("limit"))
    require.Equal(t, "100", r.URL.Query().Get("since_id"))
    w.Write([]byte("[" + status + "]"))
  })

  statuses, err := service.HomeTimeline(context.Background(), 40, services.Paging{SinceID: "100"})
  require.NoError(t, err)
  require.Len(t, statuses, 1)

  s := statuses[0]
  require.Equal(t, "mastodon.social", s.Host)
  require.Equal(t, "mastodon.social", s.User.Host)
  require.Equal(t, models.VisibilityUnlisted, s.Extra.Visibility)
  require.Equal(t, "cw", s.Extra.SpoilerText)
  require.True(t, s.Sensitive)
  require.Contains(t, s.RawText, "hi @bob")
  require.Equal(t, "bob@other.social", s.Extra.Mentions[0].Acct)
  require.Len(t, s.Extra.Urls, 1)
  require.Equal(t, "https://example.com/page", s.Extra.Urls[0].ExpandedUrl)
  require.Equal(t, models.MediaTypeAnimatedGif, s.Media[0].Type)
  require.Equal(t, 320, s.Media[0].Width)
  require.Equal(t, "blob", s.Extra.Emojis[0].Shortcode)
  require.NotNil(t, s.Extra.Poll)
  require.Equal(t, []int{0}, s.Extra.Poll.OwnVotes)
  require.Len(t, s.Extra.Poll.Options, 2)
  require.Nil(t, s.Extra.Card)
  require.Nil(t, s.Retweet)
}

func TestMentionsTimeline(t *testing.T) {
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    require.Equal(t, "/api/v1/notifications", r.URL.Path)
    require.Equal(t, []string{"mention"}, r.URL.Query()["types[]"])
    w.Write([]byte(`[{"type": "mention", "status": ` + status + `}, {"type": "follow"}]`))
  })

  statuses, err := service.MentionsTimeline(context.Background(), 20, services.Paging{})
  require.NoError(t, err)
  require.Len(t, statuses, 1)
  require.Equal(t, "mention", statuses[0].Extra.NotificationType)
}

func TestSearchPaging(t *testing.T) {
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    query := r.URL.Query()
    switch query.Get("type") {
    case "statuses":
      require.Equal(t, "5", query.Get("offset"))
      w.Write([]byte(`{"statuses": [` + status + `, {"id": "110", "content": "<p>plain</p>"}]}`))
    case "accounts":
      require.Equal(t, "20", query.Get("offset"))
      w.Write([]byte(`{"accounts": [{"id": "9", "username": "carol", "acct": "carol@else.where"}]}`))
    }
  })

  result, err := service.SearchMedia(context.Background(), "q", 10, "5")
  require.NoError(t, err)
  require.Len(t, result.Statuses, 1)
  require.Equal(t, "7", result.NextPage)

  users, err := service.SearchUsers(context.Background(), "carol", 3, 10)
  require.NoError(t, err)
  require.Equal(t, "else.where", users[0].Host)
}

func TestEmojisNotFound(t *testing.T) {
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusNotFound)
    w.Write([]byte(`{"error": "Record not found"}`))
  })
  _, err := service.Emojis(context.Background())
  require.ErrorIs(t, err, services.ErrNotFound)
}
