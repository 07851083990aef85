package ui

import (
  "twiderex.local/twiderex/models"
)

type Draft struct {
  DraftID              string               `json:"draft_id"`
  Content              string               `json:"content"`
  Media                []string             `json:"media"`
  CreatedAt            int64                `json:"created_at"`
  ComposeType          models.ComposeType   `json:"compose_type"`
  StatusKey            *models.MicroBlogKey `json:"status_key,omitempty"`
  ExcludedReplyUserIds []string             `json:"excluded_reply_user_ids,omitempty"`
}
