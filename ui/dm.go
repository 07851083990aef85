package ui

import (
  "twiderex.local/twiderex/models"
)

type DMConversation struct {
  AccountKey      models.MicroBlogKey       `json:"account_key"`
  ConversationKey models.MicroBlogKey       `json:"conversation_key"`
  ConversationID  string                    `json:"conversation_id"`
  Avatar          string                    `json:"avatar"`
  Name            string                    `json:"name"`
  SubName         string                    `json:"sub_name"`
  Type            models.DMConversationType `json:"type"`
  RecipientKey    models.MicroBlogKey       `json:"recipient_key"`
}

type DMEvent struct {
  AccountKey       models.MicroBlogKey `json:"account_key"`
  MessageKey       models.MicroBlogKey `json:"message_key"`
  ConversationKey  models.MicroBlogKey `json:"conversation_key"`
  SortID           int64               `json:"sort_id"`
  Content          string              `json:"content"`
  HumanizedTime    string              `json:"humanized_time"`
  CreatedTimestamp int64               `json:"created_timestamp"`
  MessageType      string              `json:"message_type"`
  SenderKey        models.MicroBlogKey `json:"sender_key"`
  RecipientKey     models.MicroBlogKey `json:"recipient_key"`
  SendStatus       int                 `json:"send_status"`
  Media            []Media             `json:"media,omitempty"`
  Urls             []models.UrlEntity  `json:"urls,omitempty"`
  Sender           *User               `json:"sender,omitempty"`
  IsInCome         bool                `json:"is_income"`
}

type DMConversationWithLatestMessage struct {
  Conversation DMConversation `json:"conversation"`
  Latest       DMEvent        `json:"latest"`
}
