package models

import (
  "time"
)

type Account struct {
  ID           string       `gorm:"size:20;primaryKey"`
  AccountKey   MicroBlogKey `gorm:"size:255;not null;uniqueIndex"`
  Type         PlatformType `gorm:"not null"`
  Host         string       `gorm:"size:255;not null"`
  Credentials  string       `gorm:"size:4096;not null"`
  ScreenName   string       `gorm:"size:255;not null"`
  Name         string       `gorm:"size:255;not null"`
  ProfileImage string       `gorm:"size:1024;not null"`
  LastActive   int64        `gorm:"not null;index"`
  CreatedAt    time.Time    `gorm:"not null"`
  UpdatedAt    time.Time    `gorm:"not null"`
}

func (m *Account) TableName() string {
  return "twiderex_accounts"
}
