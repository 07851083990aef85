package twitter

import (
  "context"
  "errors"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

const homeTimeline = `[
  {
    "id_str": "20",
    "full_text": "RT @bob: hello",
    "created_at": "Wed Oct 10 20:19:24 +0000 2018",
    "user": {"id_str": "1", "name": "Alice", "screen_name": "alice", "profile_image_url_https": "https://pbs.twimg.com/a_normal.jpg"},
    "retweeted_status": {
      "id_str": "19",
      "full_text": "hello",
      "created_at": "Wed Oct 10 20:00:00 +0000 2018",
      "favorite_count": 3,
      "user": {"id_str": "2", "name": "Bob", "screen_name": "bob"},
      "extended_entities": {"media": [{
        "type": "video",
        "url": "https://t.co/x",
        "media_url_https": "https://pbs.twimg.com/thumb.jpg",
        "sizes": {"large": {"w": 640, "h": 360}},
        "video_info": {"variants": [
          {"content_type": "video/mp4", "bitrate": 256000, "url": "https://video/low.mp4"},
          {"content_type": "application/x-mpegURL", "url": "https://video/list.m3u8"},
          {"content_type": "video/mp4", "bitrate": 832000, "url": "https://video/high.mp4"}
        ]}
      }]}
    },
    "coordinates": {"coordinates": [139.69, 35.68]},
    "source": "<a href=\"https://example.com\">Client</a>"
  }
]`

func newService(t *testing.T, handler http.HandlerFunc) *Service {
  server := httptest.NewServer(handler)
  t.Cleanup(server.Close)
  service := New("token")
  service.Endpoint = server.URL
  return service
}

func TestHomeTimeline(t *testing.T) {
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    require.Equal(t, "/1.1/statuses/home_timeline.json", r.URL.Path)
    require.Equal(t, "Bearer token", r.Header.Get("Authorization"))
    require.Equal(t, "20", r.URL.Query().Get("count"))
    require.Equal(t, "5", r.URL.Query().Get("max_id"))
    require.Equal(t, "", r.URL.Query().Get("since_id"))
    w.Write([]byte(homeTimeline))
  })

  statuses, err := service.HomeTimeline(context.Background(), 20, services.Paging{MaxID: "5"})
  require.NoError(t, err)
  require.Len(t, statuses, 1)

  status := statuses[0]
  require.Equal(t, "20", status.ID)
  require.Equal(t, "https://twitter.com/alice/status/20", status.Url)
  require.Equal(t, "https://pbs.twimg.com/a.jpg", status.User.ProfileImage)
  require.Equal(t, "Client", status.Source)
  require.Equal(t, 35.68, *status.Latitude)
  require.Equal(t, 139.69, *status.Longitude)
  require.Equal(t, int64(2018), int64(status.CreatedAt.Year()))
  require.True(t, status.HasMedia())

  retweet := status.Retweet
  require.NotNil(t, retweet)
  require.Equal(t, int64(3), retweet.LikeCount)
  require.Len(t, retweet.Media, 1)
  require.Equal(t, models.MediaTypeVideo, retweet.Media[0].Type)
  require.Equal(t, "https://video/high.mp4", retweet.Media[0].MediaUrl)
  require.Equal(t, 640, retweet.Media[0].Width)
  require.Nil(t, status.Quote)
}

func TestApiErrors(t *testing.T) {
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    w.WriteHeader(http.StatusTooManyRequests)
    w.Write([]byte(`{"errors":[{"message":"Rate limit exceeded","code":88}]}`))
  })

  _, err := service.MentionsTimeline(context.Background(), 20, services.Paging{})
  require.ErrorIs(t, err, services.ErrRateLimited)
  var apiErr *services.ApiError
  require.True(t, errors.As(err, &apiErr))
  require.Equal(t, "Rate limit exceeded", apiErr.Message)
}

func TestSearchFollowsNextResults(t *testing.T) {
  var queries []string
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    queries = append(queries, r.URL.Query().Get("q"))
    if r.URL.Query().Get("max_id") == "" {
      w.Write([]byte(`{"statuses":[{"id_str":"3","text":"go"}],"search_metadata":{"next_results":"?max_id=2&q=go"}}`))
      return
    }
    w.Write([]byte(`{"statuses":[],"search_metadata":{}}`))
  })

  result, err := service.SearchMedia(context.Background(), "go", 10, "")
  require.NoError(t, err)
  require.Equal(t, "?max_id=2&q=go", result.NextPage)
  require.Equal(t, "go", result.Statuses[0].RawText)

  result, err = service.SearchStatuses(context.Background(), "go", 10, result.NextPage)
  require.NoError(t, err)
  require.Empty(t, result.Statuses)
  require.Equal(t, "", result.NextPage)
  require.Equal(t, []string{"go filter:media", "go"}, queries)
}

func TestGetDirectMessages(t *testing.T) {
  service := newService(t, func(w http.ResponseWriter, r *http.Request) {
    require.Equal(t, "abc", r.URL.Query().Get("cursor"))
    w.Write([]byte(`{
      "next_cursor": "def",
      "events": [
        {"type": "message_create", "id": "100", "created_timestamp": "1600000000000", "message_create": {
          "sender_id": "2", "target": {"recipient_id": "1"},
          "message_data": {"text": "hi", "entities": {"urls": [{"url": "https://t.co/a", "expanded_url": "https://a.com", "display_url": "a.com"}]}}
        }},
        {"type": "reaction_create", "id": "101"}
      ]
    }`))
  })

  page, err := service.GetDirectMessages(context.Background(), "abc", 50)
  require.NoError(t, err)
  require.Equal(t, "def", page.NextCursor)
  require.Len(t, page.Events, 1)
  event := page.Events[0]
  require.Equal(t, "2", event.SenderID)
  require.Equal(t, "1", event.RecipientID)
  require.Equal(t, int64(1600000000000), event.CreatedAt.UnixMilli())
  require.Equal(t, "https://a.com", event.Urls[0].ExpandedUrl)
}
