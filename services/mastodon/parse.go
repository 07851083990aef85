package mastodon

import (
  "strings"
  "time"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/content"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

func parseTime(value string) time.Time {
  t, err := time.Parse(time.RFC3339, value)
  if err != nil {
    return time.Time{}
  }
  return t
}

func (s *Service) userHost(acct string) string {
  if i := strings.LastIndex(acct, "@"); i >= 0 {
    return acct[i+1:]
  }
  return s.Host
}

func (s *Service) parseUser(item gjson.Result) *services.User {
  if !item.Exists() {
    return nil
  }
  acct := item.Get("acct").String()
  note := item.Get("note").String()
  return &services.User{
    ID:                     item.Get("id").String(),
    Host:                   s.userHost(acct),
    Platform:               models.PlatformMastodon,
    Name:                   item.Get("display_name").String(),
    ScreenName:             item.Get("username").String(),
    Acct:                   acct,
    ProfileImage:           item.Get("avatar").String(),
    ProfileBackgroundImage: item.Get("header").String(),
    HtmlDescription:        note,
    RawDescription:         content.HtmlToText(note),
    Website:                item.Get("url").String(),
    FollowersCount:         item.Get("followers_count").Int(),
    FriendsCount:           item.Get("following_count").Int(),
    StatusesCount:          item.Get("statuses_count").Int(),
    Verified:               false,
    Protected:              item.Get("locked").Bool(),
  }
}

func parseEmojis(item gjson.Result) []models.Emoji {
  var emojis []models.Emoji
  item.ForEach(func(_, emoji gjson.Result) bool {
    emojis = append(emojis, models.Emoji{
      Shortcode:       emoji.Get("shortcode").String(),
      Url:             emoji.Get("url").String(),
      StaticUrl:       emoji.Get("static_url").String(),
      VisibleInPicker: emoji.Get("visible_in_picker").Bool(),
      Category:        emoji.Get("category").String(),
    })
    return true
  })
  return emojis
}

func parseMedia(item gjson.Result) *services.Media {
  media := &services.Media{
    Url:        item.Get("url").String(),
    MediaUrl:   item.Get("url").String(),
    PreviewUrl: item.Get("preview_url").String(),
    PageUrl:    item.Get("remote_url").String(),
    AltText:    item.Get("description").String(),
    Width:      int(item.Get("meta.original.width").Int()),
    Height:     int(item.Get("meta.original.height").Int()),
  }
  switch item.Get("type").String() {
  case "image":
    media.Type = models.MediaTypePhoto
  case "video":
    media.Type = models.MediaTypeVideo
  case "gifv":
    media.Type = models.MediaTypeAnimatedGif
  case "audio":
    media.Type = models.MediaTypeAudio
  default:
    media.Type = models.MediaTypeOther
  }
  return media
}

func parsePoll(item gjson.Result) *models.Poll {
  if !item.Exists() || item.Type == gjson.Null {
    return nil
  }
  poll := &models.Poll{
    ID:         item.Get("id").String(),
    Expired:    item.Get("expired").Bool(),
    Multiple:   item.Get("multiple").Bool(),
    Voted:      item.Get("voted").Bool(),
    VotesCount: item.Get("votes_count").Int(),
  }
  if expiresAt := parseTime(item.Get("expires_at").String()); !expiresAt.IsZero() {
    poll.ExpiresAt = expiresAt.UnixMilli()
  }
  item.Get("options").ForEach(func(_, option gjson.Result) bool {
    poll.Options = append(poll.Options, models.PollOption{
      Text:  option.Get("title").String(),
      Count: option.Get("votes_count").Int(),
    })
    return true
  })
  item.Get("own_votes").ForEach(func(_, vote gjson.Result) bool {
    poll.OwnVotes = append(poll.OwnVotes, int(vote.Int()))
    return true
  })
  return poll
}

func parseCard(item gjson.Result) *models.Card {
  if !item.Exists() || item.Type == gjson.Null {
    return nil
  }
  return &models.Card{
    Link:        item.Get("url").String(),
    DisplayLink: item.Get("provider_name").String(),
    Title:       item.Get("title").String(),
    Description: item.Get("description").String(),
    Image:       item.Get("image").String(),
  }
}

func (s *Service) parseStatus(item gjson.Result) *services.Status {
  if !item.Exists() || item.Type == gjson.Null {
    return nil
  }
  html := item.Get("content").String()
  status := &services.Status{
    ID:                item.Get("id").String(),
    Host:              s.Host,
    Platform:          models.PlatformMastodon,
    HtmlText:          html,
    RawText:           content.HtmlToText(html),
    CreatedAt:         parseTime(item.Get("created_at").String()),
    User:              s.parseUser(item.Get("account")),
    RetweetCount:      item.Get("reblogs_count").Int(),
    LikeCount:         item.Get("favourites_count").Int(),
    ReplyCount:        item.Get("replies_count").Int(),
    Liked:             item.Get("favourited").Bool(),
    Retweeted:         item.Get("reblogged").Bool(),
    Source:            item.Get("application.name").String(),
    Lang:              item.Get("language").String(),
    Sensitive:         item.Get("sensitive").Bool(),
    InReplyToStatusID: item.Get("in_reply_to_id").String(),
    InReplyToUserID:   item.Get("in_reply_to_account_id").String(),
    Url:               item.Get("url").String(),
  }
  item.Get("media_attachments").ForEach(func(_, media gjson.Result) bool {
    status.Media = append(status.Media, parseMedia(media))
    return true
  })
  item.Get("mentions").ForEach(func(_, mention gjson.Result) bool {
    status.Extra.Mentions = append(status.Extra.Mentions, models.Mention{
      ID:       mention.Get("id").String(),
      Username: mention.Get("username").String(),
      Acct:     mention.Get("acct").String(),
      Url:      mention.Get("url").String(),
    })
    return true
  })
  for text, href := range content.HtmlLinks(html) {
    if strings.HasPrefix(text, "@") || strings.HasPrefix(text, "#") {
      continue
    }
    status.Extra.Urls = append(status.Extra.Urls, models.UrlEntity{
      Url:         href,
      ExpandedUrl: href,
      DisplayUrl:  text,
    })
  }
  status.Extra.SpoilerText = item.Get("spoiler_text").String()
  status.Extra.Visibility = models.Visibility(item.Get("visibility").String())
  status.Extra.Emojis = parseEmojis(item.Get("emojis"))
  status.Extra.Poll = parsePoll(item.Get("poll"))
  status.Extra.Card = parseCard(item.Get("card"))
  status.Retweet = s.parseStatus(item.Get("reblog"))
  return status
}

func (s *Service) parseStatuses(buf []byte) []*services.Status {
  var statuses []*services.Status
  gjson.ParseBytes(buf).ForEach(func(_, item gjson.Result) bool {
    statuses = append(statuses, s.parseStatus(item))
    return true
  })
  return statuses
}
