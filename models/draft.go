package models

import (
  "fmt"
  "time"

  "gorm.io/datatypes"
)

type ComposeType int

const (
  ComposeNew ComposeType = iota
  ComposeReply
  ComposeQuote
  ComposeThread
)

func (t ComposeType) String() string {
  switch t {
  case ComposeReply:
    return "reply"
  case ComposeQuote:
    return "quote"
  case ComposeThread:
    return "thread"
  }
  return "new"
}

func ParseComposeType(value string) (ComposeType, error) {
  for _, t := range []ComposeType{ComposeNew, ComposeReply, ComposeQuote, ComposeThread} {
    if t.String() == value {
      return t, nil
    }
  }
  return ComposeNew, fmt.Errorf("unknown compose type: %s", value)
}

type Draft struct {
  DraftID              string         `gorm:"size:64;primaryKey"`
  Content              string         `gorm:"size:10000;not null"`
  Media                datatypes.JSON
  ComposeType          ComposeType    `gorm:"not null"`
  StatusKey            string         `gorm:"size:255;not null"`
  ExcludedReplyUserIds datatypes.JSON
  Timestamp            int64          `gorm:"not null;index"`
  CreatedAt            time.Time      `gorm:"not null"`
  UpdatedAt            time.Time      `gorm:"not null"`
}

func (m *Draft) TableName() string {
  return "twiderex_drafts"
}
