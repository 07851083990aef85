package models

import (
  "time"
)

type PagingTimeline struct {
  ID         string       `gorm:"size:20;primaryKey"`
  AccountKey MicroBlogKey `gorm:"size:255;not null;uniqueIndex:idx_twiderex_paging_timelines_key,priority:1"`
  PagingKey  string       `gorm:"size:255;not null;uniqueIndex:idx_twiderex_paging_timelines_key,priority:2"`
  StatusKey  MicroBlogKey `gorm:"size:255;not null;uniqueIndex:idx_twiderex_paging_timelines_key,priority:3"`
  Timestamp  int64        `gorm:"not null"`
  SortID     int64        `gorm:"not null;index"`
  IsGap      bool         `gorm:"not null"`
  CreatedAt  time.Time    `gorm:"not null"`
  UpdatedAt  time.Time    `gorm:"not null"`
}

func (m *PagingTimeline) TableName() string {
  return "twiderex_paging_timelines"
}

type PagingCursor struct {
  ID         string       `gorm:"size:20;primaryKey"`
  AccountKey MicroBlogKey `gorm:"size:255;not null;uniqueIndex:idx_twiderex_paging_cursors_key,priority:1"`
  PagingKey  string       `gorm:"size:255;not null;uniqueIndex:idx_twiderex_paging_cursors_key,priority:2"`
  NextKey    string       `gorm:"size:1024;not null"`
  PrevKey    string       `gorm:"size:1024;not null"`
  CreatedAt  time.Time    `gorm:"not null"`
  UpdatedAt  time.Time    `gorm:"not null"`
}

func (m *PagingCursor) TableName() string {
  return "twiderex_paging_cursors"
}
