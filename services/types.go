package services

import (
  "time"

  "twiderex.local/twiderex/models"
)

type User struct {
  ID                     string
  Host                   string
  Platform               models.PlatformType
  Name                   string
  ScreenName             string
  Acct                   string
  ProfileImage           string
  ProfileBackgroundImage string
  HtmlDescription        string
  RawDescription         string
  Website                string
  Location               string
  FollowersCount         int64
  FriendsCount           int64
  ListedCount            int64
  StatusesCount          int64
  FavouritesCount        int64
  Verified               bool
  Protected              bool
}

func (u *User) Key() models.MicroBlogKey {
  return models.MicroBlogKey{
    ID:   u.ID,
    Host: u.Host,
  }
}

type Media struct {
  Url        string
  MediaUrl   string
  PreviewUrl string
  PageUrl    string
  AltText    string
  Type       models.MediaType
  Width      int
  Height     int
}

type Status struct {
  ID                string
  Host              string
  Platform          models.PlatformType
  HtmlText          string
  RawText           string
  CreatedAt         time.Time
  User              *User
  RetweetCount      int64
  LikeCount         int64
  ReplyCount        int64
  QuoteCount        int64
  Liked             bool
  Retweeted         bool
  Source            string
  Lang              string
  Sensitive         bool
  PlaceName         string
  Latitude          *float64
  Longitude         *float64
  InReplyToStatusID string
  InReplyToUserID   string
  Url               string
  Media             []*Media
  Retweet           *Status
  Quote             *Status
  Extra             models.StatusExtra
}

func (s *Status) Key() models.MicroBlogKey {
  return models.MicroBlogKey{
    ID:   s.ID,
    Host: s.Host,
  }
}

func (s *Status) HasMedia() bool {
  if len(s.Media) > 0 {
    return true
  }
  return s.Retweet != nil && len(s.Retweet.Media) > 0
}

type Paging struct {
  SinceID string
  MaxID   string
}

type SearchResult struct {
  Statuses []*Status
  NextPage string
}

type DirectMessageEvent struct {
  ID          string
  SenderID    string
  RecipientID string
  Text        string
  CreatedAt   time.Time
  Media       []*Media
  Urls        []models.UrlEntity
}

type DirectMessagePage struct {
  Events     []*DirectMessageEvent
  Users      []*User
  NextCursor string
}

type PollRequest struct {
  Options   []string
  ExpiresIn int64
  Multiple  bool
}

type ComposeRequest struct {
  Content             string
  InReplyToID         string
  AttachmentUrl       string
  MediaIDs            []string
  Latitude            *float64
  Longitude           *float64
  ExcludeReplyUserIDs []string
  Poll                *PollRequest
  Visibility          models.Visibility
  Sensitive           bool
  SpoilerText         string
}
