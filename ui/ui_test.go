package ui

import (
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/content"
  "twiderex.local/twiderex/models"
)

func TestHumanizedCount(t *testing.T) {
  require.Equal(t, "0", HumanizedCount(0))
  require.Equal(t, "999", HumanizedCount(999))
  require.Equal(t, "1K", HumanizedCount(1000))
  require.Equal(t, "1.5K", HumanizedCount(1500))
  require.Equal(t, "1.2M", HumanizedCount(1250000))
  require.Equal(t, "3B", HumanizedCount(3000000000))
}

func TestHumanizedTimestamp(t *testing.T) {
  now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.Local)
  at := func(d time.Duration) int64 {
    return now.Add(-d).UnixMilli()
  }
  require.Equal(t, "now", humanizedTimestampAt(at(30*time.Second), now))
  require.Equal(t, "5m", humanizedTimestampAt(at(5*time.Minute), now))
  require.Equal(t, "3h", humanizedTimestampAt(at(3*time.Hour), now))
  require.Equal(t, "2d", humanizedTimestampAt(at(49*time.Hour), now))
  require.Equal(t, "Jan 2", humanizedTimestampAt(time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local).UnixMilli(), now))
  require.Equal(t, "2023-12-31", humanizedTimestampAt(time.Date(2023, 12, 31, 9, 0, 0, 0, time.Local).UnixMilli(), now))
}

func TestStatusMetrics(t *testing.T) {
  metrics := NewStatusMetrics(0, 1200, 3, 0, true, false)
  require.False(t, metrics.HasRetweetCount())
  require.True(t, metrics.HasLikeCount())
  require.Equal(t, "1.2K", metrics.HumanizedLikeCount)
  require.Equal(t, "3", metrics.HumanizedReplyCount)
}

func TestStatusShapes(t *testing.T) {
  base := StatusBase{
    StatusKey: models.Twitter("1"),
    Content:   "hello @bob",
    Url: []models.UrlEntity{
      {Url: "https://t.co/x", ExpandedUrl: "https://example.com/x", DisplayUrl: "example.com/x"},
    },
  }
  status := NewTwitterStatus(base, "everyone")
  require.Equal(t, "twitter-status", status.ContentType())
  require.Equal(t, "1@twitter.com", status.Key())
  require.Equal(t, content.DirectionLtr, status.ContentDirection)
  require.Len(t, status.ParsedContent, 2)
  require.Equal(t, "example.com/x", status.ResolveLink("https://t.co/x").Display)
  require.Empty(t, status.ResolveLink("https://t.co/y").Expanded)

  withMedia := &StatusWithMedia{Status: status}
  require.Equal(t, "twitter-status-media", withMedia.ContentType())
  require.Equal(t, status.Key(), withMedia.Key())

  retweet := &RetweetStatus{Status: status, Retweet: withMedia}
  require.Equal(t, "retweet-status-twitter-status-media", retweet.ContentType())
  require.Equal(t, StatusTimeline(status), StatusOf(retweet))

  quote := &StatusWithQuote{Status: withMedia, Quote: status}
  require.Equal(t, "status-quote-twitter-status", quote.ContentType())
  require.Equal(t, StatusTimeline(status), StatusOf(quote))

  require.Nil(t, StatusOf(&Gap{MaxID: "2", SinceID: "1"}))
}

func TestGapKey(t *testing.T) {
  gap := &Gap{MaxID: "9", SinceID: "3"}
  require.Equal(t, "9-3", gap.Key())
  require.Equal(t, "gap", gap.ContentType())
}

func TestDisplayScreenName(t *testing.T) {
  user := User{
    UserKey:    models.MicroBlogKey{ID: "1", Host: "mastodon.social"},
    ScreenName: "bob",
  }
  require.Equal(t, "@bob", user.DisplayScreenName("mastodon.social"))
  require.Equal(t, "@bob@mastodon.social", user.DisplayScreenName("pawoo.net"))
}
