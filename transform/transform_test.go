package transform

import (
  "testing"
  "time"

  "github.com/stretchr/testify/require"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

var account = models.Twitter("100")

func user(id string, name string) *services.User {
  return &services.User{
    ID:         id,
    Host:       "twitter.com",
    Platform:   models.PlatformTwitter,
    Name:       name,
    ScreenName: name,
  }
}

func TestDraftRoundTrip(t *testing.T) {
  statusKey := models.Twitter("5")
  draft := ui.Draft{
    DraftID:              "d1",
    Content:              "hello",
    Media:                []string{"/tmp/a.png"},
    CreatedAt:            1700000000000,
    ComposeType:          models.ComposeReply,
    StatusKey:            &statusKey,
    ExcludedReplyUserIds: []string{"7"},
  }
  require.Equal(t, draft, DraftToUi(DraftToDb(draft)))

  plain := DraftToUi(DraftToDb(ui.Draft{DraftID: "d2", Content: "x"}))
  require.Nil(t, plain.StatusKey)
  require.Nil(t, plain.ExcludedReplyUserIds)
}

func TestStatusToDbFlattensRetweetAndQuote(t *testing.T) {
  quote := &services.Status{ID: "3", Host: "twitter.com", User: user("c", "carol"), CreatedAt: time.Now()}
  retweeted := &services.Status{
    ID:        "2",
    Host:      "twitter.com",
    User:      user("b", "bob"),
    Quote:     quote,
    CreatedAt: time.Now(),
    Media:     []*services.Media{{Url: "https://pbs/1.jpg", Type: models.MediaTypePhoto}},
  }
  status := &services.Status{
    ID:                "1",
    Host:              "twitter.com",
    User:              user("a", "alice"),
    Retweet:           retweeted,
    InReplyToStatusID: "0",
    CreatedAt:         time.Now(),
  }

  bundle := StatusToDb(account, status)
  require.Len(t, bundle.Statuses, 3)
  require.Equal(t, models.Twitter("1"), bundle.Statuses[0].StatusKey)
  require.Equal(t, models.Twitter("2"), bundle.Statuses[0].RetweetKey)
  require.Equal(t, models.Twitter("0"), bundle.Statuses[0].InReplyToStatusKey)
  require.Equal(t, models.Twitter("3"), bundle.Statuses[1].QuoteKey)
  require.Len(t, bundle.Users, 3)
  require.Len(t, bundle.Media, 1)
  require.Equal(t, models.Twitter("2"), bundle.Media[0].BelongToKey)

  require.Empty(t, StatusToDb(account, nil).Statuses)
}

func detail(id string, extra models.StatusExtra) *models.StatusDetail {
  return &models.StatusDetail{
    Status: &models.Status{
      StatusKey:    models.Twitter(id),
      PlatformType: models.PlatformTwitter,
      RawText:      "status " + id,
      Extra:        common.JSONMap(extra),
    },
    User: &models.User{UserKey: models.Twitter("u" + id), ScreenName: "user" + id},
  }
}

func TestStatusToUiShapes(t *testing.T) {
  plain := StatusToUi(detail("1", models.StatusExtra{}))
  require.Equal(t, "twitter-status", plain.ContentType())

  withPoll := StatusToUi(detail("2", models.StatusExtra{Poll: &models.Poll{}}))
  require.Equal(t, "twitter-status-poll", withPoll.ContentType())

  withMedia := detail("3", models.StatusExtra{})
  withMedia.Media = []*models.Media{{BelongToKey: models.Twitter("3"), Type: models.MediaTypePhoto}}
  require.Equal(t, "twitter-status-media", StatusToUi(withMedia).ContentType())

  retweet := detail("4", models.StatusExtra{})
  retweet.Retweet = detail("5", models.StatusExtra{})
  require.IsType(t, &ui.RetweetStatus{}, StatusToUi(retweet))

  both := detail("6", models.StatusExtra{})
  both.Retweet = detail("7", models.StatusExtra{})
  both.Retweet.Quote = detail("8", models.StatusExtra{})
  require.IsType(t, &ui.StatusWithRetweetAndQuote{}, StatusToUi(both))

  quote := detail("9", models.StatusExtra{})
  quote.Quote = detail("10", models.StatusExtra{})
  require.IsType(t, &ui.StatusWithQuote{}, StatusToUi(quote))

  mastodon := detail("11", models.StatusExtra{SpoilerText: "cw", Visibility: models.VisibilityUnlisted})
  mastodon.Status.PlatformType = models.PlatformMastodon
  item := StatusToUi(mastodon)
  require.Equal(t, "mastodon-status", item.ContentType())
  require.Equal(t, "cw", item.(*ui.MastodonStatus).SpoilerText)
}

func TestTimelineItemsToUiGaps(t *testing.T) {
  items := []*models.TimelineItem{
    {Paging: &models.PagingTimeline{StatusKey: models.Twitter("9"), IsGap: true}, Detail: detail("9", models.StatusExtra{})},
    {Paging: &models.PagingTimeline{StatusKey: models.Twitter("5")}, Detail: detail("5", models.StatusExtra{})},
    {Paging: &models.PagingTimeline{StatusKey: models.Twitter("4")}},
    {Paging: &models.PagingTimeline{StatusKey: models.Twitter("3"), IsGap: true}, Detail: detail("3", models.StatusExtra{})},
  }
  timeline := TimelineItemsToUi(items, map[string]bool{"9-5": true})
  require.Len(t, timeline, 4)
  gap, ok := timeline[1].(*ui.Gap)
  require.True(t, ok)
  require.Equal(t, "9", gap.MaxID)
  require.Equal(t, "5", gap.SinceID)
  require.True(t, gap.Loading)
  require.Equal(t, "twitter-status", timeline[3].ContentType())
}

func TestDirectMessagesToDb(t *testing.T) {
  page := &services.DirectMessagePage{
    Events: []*services.DirectMessageEvent{
      {ID: "e2", SenderID: "200", RecipientID: "100", Text: "hi", CreatedAt: time.UnixMilli(2000)},
      {ID: "e1", SenderID: "100", RecipientID: "200", Text: "hello", CreatedAt: time.UnixMilli(1000)},
    },
    Users: []*services.User{user("200", "bob"), nil},
  }
  conversations, events, users := DirectMessagesToDb(account, page)
  require.Len(t, conversations, 1)
  require.Len(t, events, 2)
  require.Len(t, users, 1)

  conversation := conversations[0]
  require.Equal(t, "100-200", conversation.ConversationID)
  require.Equal(t, models.Twitter("200"), conversation.RecipientKey)
  require.Equal(t, "bob", conversation.ConversationName)
  require.Equal(t, conversation.ConversationKey, events[1].ConversationKey)

  incoming := DMEventToUi(events[0], users[0])
  require.True(t, incoming.IsInCome)
  require.Equal(t, "bob", incoming.Sender.ScreenName)
  require.False(t, DMEventToUi(events[1], nil).IsInCome)
}
