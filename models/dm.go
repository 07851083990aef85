package models

import (
  "time"

  "gorm.io/datatypes"
)

type DMConversationType string

const (
  DMConversationOneToOne DMConversationType = "one_to_one"
  DMConversationGroup    DMConversationType = "group"
)

type DMConversation struct {
  ID                  string             `gorm:"size:20;primaryKey"`
  AccountKey          MicroBlogKey       `gorm:"size:255;not null;uniqueIndex:idx_twiderex_dm_conversations_key,priority:1"`
  ConversationKey     MicroBlogKey       `gorm:"size:255;not null;uniqueIndex:idx_twiderex_dm_conversations_key,priority:2"`
  ConversationID      string             `gorm:"size:128;not null"`
  ConversationAvatar  string             `gorm:"size:1024;not null"`
  ConversationName    string             `gorm:"size:255;not null"`
  ConversationSubName string             `gorm:"size:255;not null"`
  ConversationType    DMConversationType `gorm:"size:20;not null"`
  RecipientKey        MicroBlogKey       `gorm:"size:255;not null"`
  CreatedAt           time.Time          `gorm:"not null"`
  UpdatedAt           time.Time          `gorm:"not null"`
}

func (m *DMConversation) TableName() string {
  return "twiderex_dm_conversations"
}

type DMEvent struct {
  ID                  string         `gorm:"size:20;primaryKey"`
  AccountKey          MicroBlogKey   `gorm:"size:255;not null;uniqueIndex:idx_twiderex_dm_events_key,priority:1"`
  MessageKey          MicroBlogKey   `gorm:"size:255;not null;uniqueIndex:idx_twiderex_dm_events_key,priority:2"`
  ConversationKey     MicroBlogKey   `gorm:"size:255;not null;index"`
  MessageID           string         `gorm:"size:64;not null"`
  SortID              int64          `gorm:"not null;index"`
  HtmlText            string         `gorm:"size:10000;not null"`
  OriginText          string         `gorm:"size:10000;not null"`
  CreatedTimestamp    int64          `gorm:"not null"`
  MessageType         string         `gorm:"size:64;not null"`
  SenderAccountKey    MicroBlogKey   `gorm:"size:255;not null"`
  RecipientAccountKey MicroBlogKey   `gorm:"size:255;not null"`
  SendStatus          int            `gorm:"not null"`
  Media               datatypes.JSON
  Urls                datatypes.JSON
  CreatedAt           time.Time      `gorm:"not null"`
  UpdatedAt           time.Time      `gorm:"not null"`
}

func (m *DMEvent) TableName() string {
  return "twiderex_dm_events"
}
