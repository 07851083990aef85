package models

import (
  "time"
)

type User struct {
  ID                     string       `gorm:"size:20;primaryKey"`
  UserKey                MicroBlogKey `gorm:"size:255;not null;uniqueIndex"`
  UserID                 string       `gorm:"size:64;not null"`
  PlatformType           PlatformType `gorm:"not null"`
  Name                   string       `gorm:"size:255;not null"`
  ScreenName             string       `gorm:"size:255;not null;index"`
  Acct                   string       `gorm:"size:255;not null"`
  ProfileImage           string       `gorm:"size:1024;not null"`
  ProfileBackgroundImage string       `gorm:"size:1024;not null"`
  HtmlDescription        string       `gorm:"size:5000;not null"`
  RawDescription         string       `gorm:"size:5000;not null"`
  Website                string       `gorm:"size:1024;not null"`
  Location               string       `gorm:"size:255;not null"`
  FollowersCount         int64        `gorm:"not null"`
  FriendsCount           int64        `gorm:"not null"`
  ListedCount            int64        `gorm:"not null"`
  StatusesCount          int64        `gorm:"not null"`
  FavouritesCount        int64        `gorm:"not null"`
  Verified               bool         `gorm:"not null"`
  IsProtected            bool         `gorm:"not null"`
  CreatedAt              time.Time    `gorm:"not null"`
  UpdatedAt              time.Time    `gorm:"not null"`
}

func (m *User) TableName() string {
  return "twiderex_users"
}
