package models

import (
  "time"
)

type MediaType string

const (
  MediaTypePhoto       MediaType = "photo"
  MediaTypeVideo       MediaType = "video"
  MediaTypeAnimatedGif MediaType = "animated_gif"
  MediaTypeAudio       MediaType = "audio"
  MediaTypeOther       MediaType = "other"
)

type Media struct {
  ID          string       `gorm:"size:20;primaryKey"`
  BelongToKey MicroBlogKey `gorm:"size:255;not null;uniqueIndex:idx_twiderex_media_owner,priority:1"`
  Position    int          `gorm:"not null;uniqueIndex:idx_twiderex_media_owner,priority:2"`
  Url         string       `gorm:"size:2048;not null"`
  MediaUrl    string       `gorm:"size:2048;not null"`
  PreviewUrl  string       `gorm:"size:2048;not null"`
  PageUrl     string       `gorm:"size:2048;not null"`
  AltText     string       `gorm:"size:2048;not null"`
  Type        MediaType    `gorm:"size:20;not null"`
  Width       int          `gorm:"not null"`
  Height      int          `gorm:"not null"`
  CreatedAt   time.Time    `gorm:"not null"`
  UpdatedAt   time.Time    `gorm:"not null"`
}

func (m *Media) TableName() string {
  return "twiderex_media"
}
