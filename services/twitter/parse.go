package twitter

import (
  "fmt"
  "strings"
  "time"

  "github.com/tidwall/gjson"

  "twiderex.local/twiderex/config"
  "twiderex.local/twiderex/content"
  "twiderex.local/twiderex/models"
  "twiderex.local/twiderex/services"
)

func parseTime(value string) time.Time {
  t, err := time.Parse(time.RubyDate, value)
  if err != nil {
    return time.Time{}
  }
  return t
}

func parseUser(item gjson.Result) *services.User {
  if !item.Exists() {
    return nil
  }
  description := item.Get("description").String()
  website := item.Get("entities.url.urls.0.expanded_url").String()
  if website == "" {
    website = item.Get("url").String()
  }
  return &services.User{
    ID:                     item.Get("id_str").String(),
    Host:                   config.TWITTER_HOST,
    Platform:               models.PlatformTwitter,
    Name:                   item.Get("name").String(),
    ScreenName:             item.Get("screen_name").String(),
    Acct:                   item.Get("screen_name").String(),
    ProfileImage:           strings.Replace(item.Get("profile_image_url_https").String(), "_normal.", ".", 1),
    ProfileBackgroundImage: item.Get("profile_banner_url").String(),
    HtmlDescription:        description,
    RawDescription:         description,
    Website:                website,
    Location:               item.Get("location").String(),
    FollowersCount:         item.Get("followers_count").Int(),
    FriendsCount:           item.Get("friends_count").Int(),
    ListedCount:            item.Get("listed_count").Int(),
    StatusesCount:          item.Get("statuses_count").Int(),
    FavouritesCount:        item.Get("favourites_count").Int(),
    Verified:               item.Get("verified").Bool(),
    Protected:              item.Get("protected").Bool(),
  }
}

func parseMedia(item gjson.Result) *services.Media {
  media := &services.Media{
    Url:        item.Get("url").String(),
    MediaUrl:   item.Get("media_url_https").String(),
    PreviewUrl: item.Get("media_url_https").String(),
    PageUrl:    item.Get("expanded_url").String(),
    AltText:    item.Get("ext_alt_text").String(),
    Width:      int(item.Get("original_info.width").Int()),
    Height:     int(item.Get("original_info.height").Int()),
  }
  if media.Width == 0 {
    media.Width = int(item.Get("sizes.large.w").Int())
    media.Height = int(item.Get("sizes.large.h").Int())
  }
  switch item.Get("type").String() {
  case "photo":
    media.Type = models.MediaTypePhoto
  case "video":
    media.Type = models.MediaTypeVideo
  case "animated_gif":
    media.Type = models.MediaTypeAnimatedGif
  default:
    media.Type = models.MediaTypeOther
  }
  if media.Type == models.MediaTypeVideo || media.Type == models.MediaTypeAnimatedGif {
    var bitrate int64 = -1
    item.Get("video_info.variants").ForEach(func(_, variant gjson.Result) bool {
      if variant.Get("content_type").String() == "video/mp4" && variant.Get("bitrate").Int() > bitrate {
        bitrate = variant.Get("bitrate").Int()
        media.MediaUrl = variant.Get("url").String()
      }
      return true
    })
  }
  return media
}

func parseUrls(item gjson.Result) []models.UrlEntity {
  var urls []models.UrlEntity
  item.ForEach(func(_, entity gjson.Result) bool {
    urls = append(urls, models.UrlEntity{
      Url:         entity.Get("url").String(),
      ExpandedUrl: entity.Get("expanded_url").String(),
      DisplayUrl:  entity.Get("display_url").String(),
    })
    return true
  })
  return urls
}

func parseStatus(item gjson.Result) *services.Status {
  if !item.Exists() {
    return nil
  }
  text := item.Get("full_text").String()
  if text == "" {
    text = item.Get("text").String()
  }
  user := parseUser(item.Get("user"))
  status := &services.Status{
    ID:                item.Get("id_str").String(),
    Host:              config.TWITTER_HOST,
    Platform:          models.PlatformTwitter,
    HtmlText:          text,
    RawText:           text,
    CreatedAt:         parseTime(item.Get("created_at").String()),
    User:              user,
    RetweetCount:      item.Get("retweet_count").Int(),
    LikeCount:         item.Get("favorite_count").Int(),
    ReplyCount:        item.Get("reply_count").Int(),
    QuoteCount:        item.Get("quote_count").Int(),
    Liked:             item.Get("favorited").Bool(),
    Retweeted:         item.Get("retweeted").Bool(),
    Source:            content.HtmlToText(item.Get("source").String()),
    Lang:              item.Get("lang").String(),
    Sensitive:         item.Get("possibly_sensitive").Bool(),
    PlaceName:         item.Get("place.full_name").String(),
    InReplyToStatusID: item.Get("in_reply_to_status_id_str").String(),
    InReplyToUserID:   item.Get("in_reply_to_user_id_str").String(),
  }
  if user != nil {
    status.Url = fmt.Sprintf("https://twitter.com/%v/status/%v", user.ScreenName, status.ID)
  }
  if coordinates := item.Get("coordinates.coordinates"); coordinates.IsArray() {
    longitude := coordinates.Get("0").Float()
    latitude := coordinates.Get("1").Float()
    status.Longitude = &longitude
    status.Latitude = &latitude
  }
  item.Get("extended_entities.media").ForEach(func(_, media gjson.Result) bool {
    status.Media = append(status.Media, parseMedia(media))
    return true
  })
  status.Extra.Urls = parseUrls(item.Get("entities.urls"))
  status.Retweet = parseStatus(item.Get("retweeted_status"))
  status.Quote = parseStatus(item.Get("quoted_status"))
  return status
}

func parseStatuses(buf []byte) []*services.Status {
  var statuses []*services.Status
  gjson.ParseBytes(buf).ForEach(func(_, item gjson.Result) bool {
    statuses = append(statuses, parseStatus(item))
    return true
  })
  return statuses
}

func parseUsers(buf []byte) []*services.User {
  var users []*services.User
  gjson.ParseBytes(buf).ForEach(func(_, item gjson.Result) bool {
    users = append(users, parseUser(item))
    return true
  })
  return users
}
