package models

import (
  "time"

  "gorm.io/datatypes"
)

type Status struct {
  ID                 string            `gorm:"size:20;primaryKey"`
  AccountKey         MicroBlogKey      `gorm:"size:255;not null;uniqueIndex:idx_twiderex_statuses_key,priority:1"`
  StatusKey          MicroBlogKey      `gorm:"size:255;not null;uniqueIndex:idx_twiderex_statuses_key,priority:2"`
  StatusID           string            `gorm:"size:64;not null"`
  UserKey            MicroBlogKey      `gorm:"size:255;not null;index"`
  PlatformType       PlatformType      `gorm:"not null"`
  HtmlText           string            `gorm:"size:10000;not null"`
  RawText            string            `gorm:"size:10000;not null"`
  Timestamp          int64             `gorm:"not null;index"`
  RetweetCount       int64             `gorm:"not null"`
  LikeCount          int64             `gorm:"not null"`
  ReplyCount         int64             `gorm:"not null"`
  QuoteCount         int64             `gorm:"not null"`
  Liked              bool              `gorm:"not null"`
  Retweeted          bool              `gorm:"not null"`
  Source             string            `gorm:"size:255;not null"`
  PlaceName          string            `gorm:"size:255;not null"`
  Latitude           *float64
  Longitude          *float64
  LanguageCode       string            `gorm:"size:16;not null"`
  IsSensitive        bool              `gorm:"not null"`
  InReplyToStatusKey MicroBlogKey      `gorm:"size:255;not null"`
  InReplyToUserKey   MicroBlogKey      `gorm:"size:255;not null"`
  RetweetKey         MicroBlogKey      `gorm:"size:255;not null"`
  QuoteKey           MicroBlogKey      `gorm:"size:255;not null"`
  Url                string            `gorm:"size:1024;not null"`
  Extra              datatypes.JSONMap `gorm:"not null"`
  CreatedAt          time.Time         `gorm:"not null"`
  UpdatedAt          time.Time         `gorm:"not null"`
}

func (m *Status) TableName() string {
  return "twiderex_statuses"
}
