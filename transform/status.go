package transform

import (
  "github.com/rs/xid"

  "twiderex.local/twiderex/common"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
  "twiderex.local/twiderex/ui"
)

// StatusToDb flattens a network status, its retweet and quote into cache
// rows. Users and media are collected alongside.
func StatusToDb(accountKey models.MicroBlogKey, status *services.Status) *models.StatusBundle {
  bundle := &models.StatusBundle{}
  if status == nil {
    return bundle
  }
  row := &models.Status{
    ID:           xid.New().String(),
    AccountKey:   accountKey,
    StatusKey:    status.Key(),
    StatusID:     status.ID,
    PlatformType: status.Platform,
    HtmlText:     status.HtmlText,
    RawText:      status.RawText,
    Timestamp:    status.CreatedAt.UnixMilli(),
    RetweetCount: status.RetweetCount,
    LikeCount:    status.LikeCount,
    ReplyCount:   status.ReplyCount,
    QuoteCount:   status.QuoteCount,
    Liked:        status.Liked,
    Retweeted:    status.Retweeted,
    Source:       status.Source,
    PlaceName:    status.PlaceName,
    Latitude:     status.Latitude,
    Longitude:    status.Longitude,
    LanguageCode: status.Lang,
    IsSensitive:  status.Sensitive,
    Url:          status.Url,
    Extra:        common.JSONMap(status.Extra),
  }
  if status.User != nil {
    row.UserKey = status.User.Key()
    bundle.Users = append(bundle.Users, UserToDb(status.User))
  }
  if status.InReplyToStatusID != "" {
    row.InReplyToStatusKey = models.MicroBlogKey{ID: status.InReplyToStatusID, Host: status.Host}
  }
  if status.InReplyToUserID != "" {
    row.InReplyToUserKey = models.MicroBlogKey{ID: status.InReplyToUserID, Host: status.Host}
  }
  for i, media := range status.Media {
    bundle.Media = append(bundle.Media, MediaToDb(status.Key(), i, media))
  }
  if status.Retweet != nil {
    row.RetweetKey = status.Retweet.Key()
    bundle.Merge(StatusToDb(accountKey, status.Retweet))
  }
  if status.Quote != nil {
    row.QuoteKey = status.Quote.Key()
    bundle.Merge(StatusToDb(accountKey, status.Quote))
  }
  bundle.Statuses = append([]*models.Status{row}, bundle.Statuses...)
  return bundle
}

func StatusesToDb(accountKey models.MicroBlogKey, statuses []*services.Status) *models.StatusBundle {
  bundle := &models.StatusBundle{}
  for _, status := range statuses {
    bundle.Merge(StatusToDb(accountKey, status))
  }
  return bundle
}

func MediaToDb(belongToKey models.MicroBlogKey, order int, media *services.Media) *models.Media {
  return &models.Media{
    ID:          xid.New().String(),
    BelongToKey: belongToKey,
    Position:    order,
    Url:         media.Url,
    MediaUrl:    media.MediaUrl,
    PreviewUrl:  media.PreviewUrl,
    PageUrl:     media.PageUrl,
    AltText:     media.AltText,
    Type:        media.Type,
    Width:       media.Width,
    Height:      media.Height,
  }
}

func MediaToUi(media []*models.Media) []ui.Media {
  items := make([]ui.Media, len(media))
  for i, m := range media {
    items[i] = ui.Media{
      BelongToKey: m.BelongToKey,
      Url:         m.Url,
      MediaUrl:    m.MediaUrl,
      PreviewUrl:  m.PreviewUrl,
      PageUrl:     m.PageUrl,
      AltText:     m.AltText,
      Type:        m.Type,
      Width:       m.Width,
      Height:      m.Height,
      Order:       m.Position,
    }
  }
  return items
}

func statusExtra(status *models.Status) models.StatusExtra {
  var extra models.StatusExtra
  common.FromJSONMap(status.Extra, &extra)
  return extra
}

func statusToUi(detail *models.StatusDetail) ui.StatusWithExtra {
  status := detail.Status
  extra := statusExtra(status)
  base := ui.StatusBase{
    StatusKey: status.StatusKey,
    Content:   status.RawText,
    Metrics: ui.NewStatusMetrics(
      status.RetweetCount,
      status.LikeCount,
      status.ReplyCount,
      status.QuoteCount,
      status.Liked,
      status.Retweeted,
    ),
    Timestamp:    status.Timestamp,
    User:         UserToUi(detail.User),
    PlatformType: status.PlatformType,
    Source:       status.Source,
    Url:          extra.Urls,
  }
  if status.PlaceName != "" || status.Latitude != nil {
    base.Geo = &ui.Geo{
      Name:      status.PlaceName,
      Latitude:  status.Latitude,
      Longitude: status.Longitude,
    }
  }

  var inner ui.StatusTimeline
  if status.PlatformType == models.PlatformMastodon {
    inner = ui.NewMastodonStatus(base, extra)
  } else {
    inner = ui.NewTwitterStatus(base, extra.ReplySettings)
  }

  switch {
  case extra.Poll != nil:
    return &ui.StatusWithPoll{Status: inner, Poll: *extra.Poll}
  case len(detail.Media) > 0:
    return &ui.StatusWithMedia{Status: inner, Media: MediaToUi(detail.Media)}
  case extra.Card != nil:
    return &ui.StatusWithCard{Status: inner, Card: *extra.Card}
  }
  return inner.(ui.StatusWithExtra)
}

// StatusToUi picks the timeline shape of a cached status: a retweet of a
// quote, a plain retweet, a quote, or the decorated status itself.
func StatusToUi(detail *models.StatusDetail) ui.Timeline {
  status := statusToUi(detail)
  if retweet := detail.Retweet; retweet != nil {
    if retweet.Quote != nil {
      return &ui.StatusWithRetweetAndQuote{
        Status:  status,
        Retweet: statusToUi(retweet),
        Quote:   statusToUi(retweet.Quote),
      }
    }
    return &ui.RetweetStatus{
      Status:  status,
      Retweet: statusToUi(retweet),
    }
  }
  if detail.Quote != nil {
    return &ui.StatusWithQuote{
      Status: status,
      Quote:  statusToUi(detail.Quote),
    }
  }
  return status
}

// TimelineItemsToUi inserts a gap after every item flagged as one, as long as
// an older item follows it.
func TimelineItemsToUi(items []*models.TimelineItem, loading map[string]bool) []ui.Timeline {
  timeline := make([]ui.Timeline, 0, len(items))
  for i, item := range items {
    if item.Detail == nil || item.Detail.Status == nil {
      continue
    }
    timeline = append(timeline, StatusToUi(item.Detail))
    if item.Paging.IsGap && i+1 < len(items) && items[i+1].Detail != nil {
      gap := &ui.Gap{
        MaxID:   item.Paging.StatusKey.ID,
        SinceID: items[i+1].Paging.StatusKey.ID,
      }
      gap.Loading = loading[gap.Key()]
      timeline = append(timeline, gap)
    }
  }
  return timeline
}
