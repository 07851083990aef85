package ui

import (
  "twiderex.local/twiderex/content"
  "twiderex.local/twiderex/models"
)

type StatusMetrics struct {
  RetweetCount          int64  `json:"retweet_count"`
  LikeCount             int64  `json:"like_count"`
  ReplyCount            int64  `json:"reply_count"`
  QuoteCount            int64  `json:"quote_count"`
  Liked                 bool   `json:"liked"`
  Retweeted             bool   `json:"retweeted"`
  HumanizedRetweetCount string `json:"humanized_retweet_count"`
  HumanizedLikeCount    string `json:"humanized_like_count"`
  HumanizedReplyCount   string `json:"humanized_reply_count"`
  HumanizedQuoteCount   string `json:"humanized_quote_count"`
}

func NewStatusMetrics(retweetCount, likeCount, replyCount, quoteCount int64, liked, retweeted bool) StatusMetrics {
  return StatusMetrics{
    RetweetCount:          retweetCount,
    LikeCount:             likeCount,
    ReplyCount:            replyCount,
    QuoteCount:            quoteCount,
    Liked:                 liked,
    Retweeted:             retweeted,
    HumanizedRetweetCount: HumanizedCount(retweetCount),
    HumanizedLikeCount:    HumanizedCount(likeCount),
    HumanizedReplyCount:   HumanizedCount(replyCount),
    HumanizedQuoteCount:   HumanizedCount(quoteCount),
  }
}

func (m StatusMetrics) HasRetweetCount() bool { return m.RetweetCount > 0 }
func (m StatusMetrics) HasLikeCount() bool    { return m.LikeCount > 0 }
func (m StatusMetrics) HasReplyCount() bool   { return m.ReplyCount > 0 }
func (m StatusMetrics) HasQuoteCount() bool   { return m.QuoteCount > 0 }

type StatusTimelineMenu struct {
  RetweetOpened bool `json:"retweet_opened"`
  MoreOpened    bool `json:"more_opened"`
}

type ResolvedLink struct {
  Expanded string `json:"expanded,omitempty"`
  Display  string `json:"display,omitempty"`
}

// StatusBase carries the fields shared by every platform status. The parsed
// content, direction and humanized time are computed once on construction.
type StatusBase struct {
  StatusKey        models.MicroBlogKey  `json:"status_key"`
  Content          string               `json:"content"`
  Metrics          StatusMetrics        `json:"metrics"`
  Timestamp        int64                `json:"timestamp"`
  User             User                 `json:"user"`
  PlatformType     models.PlatformType  `json:"platform_type"`
  Source           string               `json:"source"`
  Geo              *Geo                 `json:"geo,omitempty"`
  Url              []models.UrlEntity   `json:"url,omitempty"`
  Menu             StatusTimelineMenu   `json:"menu"`
  HumanizedTime    string               `json:"humanized_time"`
  ParsedContent    []content.Token      `json:"parsed_content"`
  ContentDirection content.Direction    `json:"content_direction"`
}

func (s *StatusBase) compute() {
  s.HumanizedTime = HumanizedTimestamp(s.Timestamp)
  s.ParsedContent = content.Parse(s.Content)
  s.ContentDirection = content.DirectionOf(s.Content)
}

func (s *StatusBase) Base() *StatusBase {
  return s
}

func (s *StatusBase) ResolveLink(href string) ResolvedLink {
  for _, entity := range s.Url {
    if entity.Url == href {
      return ResolvedLink{
        Expanded: entity.ExpandedUrl,
        Display:  entity.DisplayUrl,
      }
    }
  }
  return ResolvedLink{}
}

type TwitterStatus struct {
  StatusBase
  ReplySettings string `json:"reply_settings"`
}

func NewTwitterStatus(base StatusBase, replySettings string) *TwitterStatus {
  base.compute()
  return &TwitterStatus{
    StatusBase:    base,
    ReplySettings: replySettings,
  }
}

func (s *TwitterStatus) Key() string {
  return s.StatusKey.String()
}

func (s *TwitterStatus) ContentType() string {
  return "twitter-status"
}

func (s *TwitterStatus) Inner() StatusTimeline {
  return s
}

type MastodonStatus struct {
  StatusBase
  Expanded          bool               `json:"expanded"`
  SpoilerText       string             `json:"spoiler_text,omitempty"`
  ParsedSpoilerText []content.Token    `json:"parsed_spoiler_text,omitempty"`
  NotificationType  string             `json:"notification_type,omitempty"`
  Emoji             []models.Emoji     `json:"emoji,omitempty"`
  Visibility        models.Visibility  `json:"visibility"`
  Mentions          []models.Mention   `json:"mentions,omitempty"`
}

func NewMastodonStatus(base StatusBase, extra models.StatusExtra) *MastodonStatus {
  base.compute()
  return &MastodonStatus{
    StatusBase:        base,
    SpoilerText:       extra.SpoilerText,
    ParsedSpoilerText: content.Parse(extra.SpoilerText),
    NotificationType:  extra.NotificationType,
    Emoji:             extra.Emojis,
    Visibility:        extra.Visibility,
    Mentions:          extra.Mentions,
  }
}

func (s *MastodonStatus) Key() string {
  return s.StatusKey.String()
}

func (s *MastodonStatus) ContentType() string {
  return "mastodon-status"
}

func (s *MastodonStatus) Inner() StatusTimeline {
  return s
}
